package sequence

import (
	"fmt"
	"sync"
	"testing"

	"github.com/dparikh/prepdrill/internal/proficiency"
	"github.com/dparikh/prepdrill/internal/topic"
)

func testEstimate(level float64) proficiency.Estimate {
	return proficiency.Estimate{Topic: "word-knowledge", Level: level, SampleSize: 10}
}

func makePool(tier topic.Tier, n int) []CandidateItem {
	pool := make([]CandidateItem, n)
	for i := range pool {
		pool[i] = CandidateItem{
			ID:    fmt.Sprintf("%s-%d", tier, i),
			Topic: "word-knowledge",
			Tier:  tier,
		}
	}
	return pool
}

func noSeen() map[string]struct{} { return map[string]struct{}{} }

func TestBuild_EmptyPool(t *testing.T) {
	b := NewBuilderWithSeed(1)
	seq := b.Build(testEstimate(5), nil, noSeen(), 5, true)

	if len(seq.Items) != 0 {
		t.Fatalf("len(Items) = %d, want 0", len(seq.Items))
	}
	if seq.Reason != ReasonNoQuestions {
		t.Errorf("Reason = %q, want %q", seq.Reason, ReasonNoQuestions)
	}
	if seq.PassID == "" {
		t.Error("PassID not assigned")
	}
}

func TestBuild_SmallPoolExhausts(t *testing.T) {
	// Fresh learner at the neutral level, three easy items, five requested:
	// all three come back and the reason stays empty.
	b := NewBuilderWithSeed(1)
	seq := b.Build(testEstimate(5), makePool(topic.TierEasy, 3), noSeen(), 5, true)

	if len(seq.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(seq.Items))
	}
	if seq.Reason != "" {
		t.Errorf("Reason = %q, want empty on the non-empty path", seq.Reason)
	}
	for _, it := range seq.Items {
		if it.Item.Tier != topic.TierEasy {
			t.Errorf("item %s tier = %s, want easy", it.Item.ID, it.Item.Tier)
		}
	}
}

func TestBuild_NoDuplicateIDs(t *testing.T) {
	pool := append(makePool(topic.TierEasy, 4), makePool(topic.TierMedium, 4)...)
	pool = append(pool, makePool(topic.TierHard, 4)...)

	for seed := int64(1); seed <= 5; seed++ {
		b := NewBuilderWithSeed(seed)
		seq := b.Build(testEstimate(6), pool, noSeen(), 12, true)

		seen := make(map[string]struct{})
		for _, it := range seq.Items {
			if _, dup := seen[it.Item.ID]; dup {
				t.Fatalf("seed %d: duplicate item %s", seed, it.Item.ID)
			}
			seen[it.Item.ID] = struct{}{}
		}
	}
}

func TestBuild_LengthBounded(t *testing.T) {
	pool := makePool(topic.TierMedium, 7)
	b := NewBuilderWithSeed(2)

	seq := b.Build(testEstimate(6), pool, noSeen(), 4, false)
	if len(seq.Items) != 4 {
		t.Errorf("len = %d, want maxItems 4", len(seq.Items))
	}

	seq = b.Build(testEstimate(6), pool, noSeen(), 20, false)
	if len(seq.Items) != 7 {
		t.Errorf("len = %d, want pool size 7", len(seq.Items))
	}
}

func TestBuild_StrongLearnerGetsHardItems(t *testing.T) {
	// Level 8 puts hard items (value 9) inside the target window with the
	// best difficulty fit, so the pass must include hard material.
	pool := append(makePool(topic.TierMedium, 5), makePool(topic.TierHard, 5)...)
	b := NewBuilderWithSeed(3)
	seq := b.Build(testEstimate(8), pool, noSeen(), 6, true)

	hard := 0
	for _, it := range seq.Items {
		if it.Item.Tier == topic.TierHard {
			hard++
		}
	}
	if hard == 0 {
		t.Error("no hard items in a strong learner's sequence")
	}
}

func TestBuild_WindowFallback(t *testing.T) {
	// Target 5, pool entirely hard (value 9, outside the ±2 window): the
	// relaxation must still fill the sequence rather than stop short.
	pool := makePool(topic.TierHard, 3)
	b := NewBuilderWithSeed(4)
	seq := b.Build(testEstimate(5), pool, noSeen(), 3, false)

	if len(seq.Items) != 3 {
		t.Errorf("len = %d, want 3 via window relaxation", len(seq.Items))
	}
}

func TestBuild_Deterministic(t *testing.T) {
	pool := append(makePool(topic.TierEasy, 5), makePool(topic.TierMedium, 5)...)

	a := NewBuilderWithSeed(42).Build(testEstimate(4), pool, noSeen(), 8, true)
	b := NewBuilderWithSeed(42).Build(testEstimate(4), pool, noSeen(), 8, true)

	if len(a.Items) != len(b.Items) {
		t.Fatalf("lengths differ: %d vs %d", len(a.Items), len(b.Items))
	}
	for i := range a.Items {
		if a.Items[i].Item.ID != b.Items[i].Item.ID {
			t.Errorf("position %d: %s vs %s", i, a.Items[i].Item.ID, b.Items[i].Item.ID)
		}
	}
}

func TestBuild_ConcurrentPasses(t *testing.T) {
	// One long-lived builder serves many learners at once; adaptive pacing
	// must stay confined to each pass.
	pool := append(makePool(topic.TierEasy, 6), makePool(topic.TierMedium, 6)...)
	b := NewBuilderWithSeed(9)

	var wg sync.WaitGroup
	results := make([]Sequence, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = b.Build(testEstimate(5), pool, noSeen(), 6, true)
		}(i)
	}
	wg.Wait()

	for i, seq := range results {
		if len(seq.Items) != 6 {
			t.Errorf("pass %d: len = %d, want 6", i, len(seq.Items))
		}
		if seq.PassID == "" {
			t.Errorf("pass %d: PassID not assigned", i)
		}
	}
}

func TestBuild_Annotations(t *testing.T) {
	pool := []CandidateItem{{ID: "m-0", Topic: "word-knowledge", Tier: topic.TierMedium}}
	seq := NewBuilderWithSeed(1).Build(testEstimate(5), pool, noSeen(), 1, false)

	if len(seq.Items) != 1 {
		t.Fatalf("len = %d, want 1", len(seq.Items))
	}
	it := seq.Items[0]

	// base 6, level 5: expected = 6 + 0.1*(6-5) = 6.1.
	if !almostEqual(it.ExpectedDifficulty, 6.1) {
		t.Errorf("ExpectedDifficulty = %v, want 6.1", it.ExpectedDifficulty)
	}
	if it.SelectionConfidence < 0 || it.SelectionConfidence > 1 {
		t.Errorf("SelectionConfidence = %v, outside [0,1]", it.SelectionConfidence)
	}
	if it.Rationale != RationaleOptimal {
		t.Errorf("Rationale = %q, want optimal at distance 1", it.Rationale)
	}
}

func TestBuild_RationaleBands(t *testing.T) {
	cases := []struct {
		level float64
		tier  topic.Tier
		want  Rationale
	}{
		{5, topic.TierMedium, RationaleOptimal},    // distance 1
		{3, topic.TierHard, RationaleChallenge},    // 9 vs 3
		{9, topic.TierEasy, RationaleConfidence},   // 3 vs 9
		{6.5, topic.TierMedium, RationaleOptimal},  // distance 0.5
	}
	for _, tc := range cases {
		pool := []CandidateItem{{ID: "x", Tier: tc.tier}}
		seq := NewBuilderWithSeed(1).Build(testEstimate(tc.level), pool, noSeen(), 1, false)
		if got := seq.Items[0].Rationale; got != tc.want {
			t.Errorf("level %v tier %s: rationale = %q, want %q", tc.level, tc.tier, got, tc.want)
		}
	}
}
