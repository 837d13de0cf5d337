package sequence

import (
	"math"
	"testing"

	"github.com/dparikh/prepdrill/internal/topic"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreItem_DifficultyFitDominates(t *testing.T) {
	seen := map[string]struct{}{}

	// Medium item at level 6: perfect fit (3) + novelty (2) + late position (1).
	item := CandidateItem{ID: "q1", Tier: topic.TierMedium}
	if got := scoreItem(item, 6, seen, 5); !almostEqual(got, 6) {
		t.Errorf("score = %v, want 6", got)
	}

	// Same item at level 1: fit = 1-5/5 = 0.
	if got := scoreItem(item, 1, seen, 5); !almostEqual(got, 0+2+1) {
		t.Errorf("score = %v, want 3 (no difficulty fit)", got)
	}
}

func TestScoreItem_NoveltyPenalty(t *testing.T) {
	item := CandidateItem{ID: "q1", Tier: topic.TierMedium}
	fresh := scoreItem(item, 6, map[string]struct{}{}, 5)
	stale := scoreItem(item, 6, map[string]struct{}{"q1": {}}, 5)

	if !almostEqual(fresh-stale, 2) {
		t.Errorf("novelty delta = %v, want 2", fresh-stale)
	}
}

func TestScoreItem_PositionFit(t *testing.T) {
	easy := CandidateItem{ID: "e", Tier: topic.TierEasy}
	hard := CandidateItem{ID: "h", Tier: topic.TierHard}
	seen := map[string]struct{}{}

	// Early positions prefer easier items, later positions harder ones.
	cases := []struct {
		item     CandidateItem
		position int
		wantFit  float64
	}{
		{easy, 0, 1},
		{easy, 2, 1},
		{easy, 3, 0.5},
		{hard, 0, 0.5},
		{hard, 3, 1},
	}
	for _, tc := range cases {
		full := scoreItem(tc.item, tc.item.Tier.Value(), seen, tc.position)
		// Strip the difficulty (3, perfect fit) and novelty (2) parts.
		if got := full - 5; !almostEqual(got, tc.wantFit) {
			t.Errorf("positionFit(%s, pos %d) = %v, want %v", tc.item.ID, tc.position, got, tc.wantFit)
		}
	}
}

func TestPickBest_FirstWinsOnTie(t *testing.T) {
	pool := []CandidateItem{
		{ID: "a", Tier: topic.TierMedium},
		{ID: "b", Tier: topic.TierMedium},
		{ID: "c", Tier: topic.TierMedium},
	}
	idx, _ := pickBest(pool, 6, map[string]struct{}{}, 5)
	if idx != 0 {
		t.Errorf("tie pick = %d (%s), want 0 (a)", idx, pool[idx].ID)
	}
}

func TestPickBest_Empty(t *testing.T) {
	idx, _ := pickBest(nil, 6, map[string]struct{}{}, 0)
	if idx != -1 {
		t.Errorf("idx = %d, want -1 for empty pool", idx)
	}
}

func TestPickBest_PrefersNovelFit(t *testing.T) {
	pool := []CandidateItem{
		{ID: "seen-perfect", Tier: topic.TierMedium},
		{ID: "fresh-near", Tier: topic.TierHard},
	}
	seen := map[string]struct{}{"seen-perfect": {}}

	// At level 6, position 3: seen medium scores 3+0+0.5 = 3.5,
	// fresh hard scores 3*0.4+2+1 = 4.2.
	idx, score := pickBest(pool, 6, seen, 3)
	if pool[idx].ID != "fresh-near" {
		t.Errorf("picked %s, want fresh-near", pool[idx].ID)
	}
	if !almostEqual(score, 4.2) {
		t.Errorf("score = %v, want 4.2", score)
	}
}
