package sequence

import "math/rand/v2"

const (
	// raiseAfterCorrect is the consecutive predicted-correct count that
	// bumps the target up one point.
	raiseAfterCorrect = 3

	// lowerAfterIncorrect is the consecutive predicted-incorrect count
	// that drops the target one point.
	lowerAfterIncorrect = 2
)

// difficultyState tracks the working difficulty target while a sequence is
// built. It lives for exactly one build pass and is never shared across
// calls, so concurrent passes cannot bleed into each other.
type difficultyState struct {
	target          float64 // clamped to [1,10]
	correctStreak   int
	incorrectStreak int
}

func newDifficultyState(level float64) *difficultyState {
	return &difficultyState{target: clamp(level, 1, 10)}
}

// recordOutcome feeds one predicted outcome into the state machine. A streak
// of predicted-correct answers raises the target; a shorter streak of
// predicted-incorrect answers lowers it. Either outcome resets the opposite
// streak, and crossing a threshold resets its own.
func (s *difficultyState) recordOutcome(correct bool) {
	if correct {
		s.correctStreak++
		s.incorrectStreak = 0
		if s.correctStreak >= raiseAfterCorrect {
			s.target = clamp(s.target+1, 1, 10)
			s.correctStreak = 0
		}
		return
	}

	s.incorrectStreak++
	s.correctStreak = 0
	if s.incorrectStreak >= lowerAfterIncorrect {
		s.target = clamp(s.target-1, 1, 10)
		s.incorrectStreak = 0
	}
}

// predictOutcome simulates whether the learner would answer the item
// correctly. This is a pacing device for a single generation pass, not a
// prediction about the real learner: real answers only influence the *next*
// pass through the recorded history. Success probability decays as item
// difficulty moves above the current target, bounded to [0.1, 0.9] so
// neither outcome is ever certain.
func (s *difficultyState) predictOutcome(item CandidateItem, rng *rand.Rand) bool {
	p := 0.7 - 0.1*(item.Tier.Value()-s.target)
	if p < 0.1 {
		p = 0.1
	}
	if p > 0.9 {
		p = 0.9
	}
	return rng.Float64() < p
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
