package sequence

import (
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dparikh/prepdrill/internal/proficiency"
)

// targetWindow is how far (in tier-value units) an item may sit from the
// current difficulty target and still be considered in the primary pass.
const targetWindow = 2.0

// Builder assembles an ordered practice sequence from a candidate pool.
// Each Build call is self-contained: difficulty pacing state and its random
// source are created at the start of the pass and discarded with it, so a
// single Builder is safe for concurrent passes.
type Builder struct {
	passSeed atomic.Uint64
}

// NewBuilder creates a Builder whose simulated-outcome pacing varies from
// run to run.
func NewBuilder() *Builder {
	return NewBuilderWithSeed(time.Now().UnixNano())
}

// NewBuilderWithSeed creates a Builder with a fixed pacing seed. The first
// pass draws from exactly this seed, making it reproducible; each later pass
// advances the seed by one.
func NewBuilderWithSeed(seed int64) *Builder {
	b := &Builder{}
	b.passSeed.Store(uint64(seed))
	return b
}

// Build produces up to maxItems sequenced items from the pool. An empty
// pool yields an empty sequence carrying ReasonNoQuestions; it never
// errors. When adaptive is true, a simulated outcome per emitted item
// drives the difficulty target up or down as the sequence grows.
//
// The output never repeats a candidate ID, and its length never exceeds
// the smaller of maxItems and the number of unique candidates.
func (b *Builder) Build(est proficiency.Estimate, pool []CandidateItem, recentlySeen map[string]struct{}, maxItems int, adaptive bool) Sequence {
	seq := Sequence{
		PassID: uuid.New().String(),
		Topic:  est.Topic,
		Level:  est.Level,
	}

	if len(pool) == 0 {
		seq.Reason = ReasonNoQuestions
		return seq
	}

	state := newDifficultyState(est.Level)
	rng := rand.New(rand.NewPCG(b.passSeed.Add(1)-1, 0))
	used := make(map[string]struct{}, maxItems)

	for position := 0; position < maxItems; position++ {
		unused := filterUnused(pool, used)
		if len(unused) == 0 {
			break
		}

		// Prefer items near the current target; if the window is empty,
		// relax to the whole remaining pool rather than stopping short.
		candidates := filterWithinWindow(unused, state.target)
		if len(candidates) == 0 {
			candidates = unused
		}

		idx, score := pickBest(candidates, est.Level, recentlySeen, position)
		item := candidates[idx]
		used[item.ID] = struct{}{}

		seq.Items = append(seq.Items, sequencedItem(item, est.Level, score))

		if adaptive {
			state.recordOutcome(state.predictOutcome(item, rng))
		}
	}

	return seq
}

func filterUnused(pool []CandidateItem, used map[string]struct{}) []CandidateItem {
	var out []CandidateItem
	for _, c := range pool {
		if _, ok := used[c.ID]; !ok {
			out = append(out, c)
		}
	}
	return out
}

func filterWithinWindow(pool []CandidateItem, target float64) []CandidateItem {
	var out []CandidateItem
	for _, c := range pool {
		d := c.Tier.Value() - target
		if d < 0 {
			d = -d
		}
		if d <= targetWindow {
			out = append(out, c)
		}
	}
	return out
}

// sequencedItem annotates a picked item with its expected difficulty,
// normalized confidence, and a selection rationale.
func sequencedItem(item CandidateItem, level, score float64) SequencedItem {
	base := item.Tier.Value()

	// Nudge the expectation away from the base value in proportion to how
	// far the item sits from the learner's level.
	expected := base + 0.1*(base-level)

	confidence := clamp(score/maxScore, 0, 1)

	distance := base - level
	if distance < 0 {
		distance = -distance
	}
	rationale := RationaleConfidence
	switch {
	case distance <= 1:
		rationale = RationaleOptimal
	case base > level:
		rationale = RationaleChallenge
	}

	return SequencedItem{
		Item:                item,
		ExpectedDifficulty:  expected,
		SelectionConfidence: confidence,
		Rationale:           rationale,
	}
}
