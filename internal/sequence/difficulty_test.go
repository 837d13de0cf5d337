package sequence

import (
	"math/rand/v2"
	"testing"

	"github.com/dparikh/prepdrill/internal/topic"
)

func TestDifficultyState_RaiseAfterThreeCorrect(t *testing.T) {
	s := newDifficultyState(5)

	s.recordOutcome(true)
	s.recordOutcome(true)
	if s.target != 5 {
		t.Fatalf("target moved early: %v", s.target)
	}
	s.recordOutcome(true)
	if s.target != 6 {
		t.Errorf("target = %v, want 6 after three correct", s.target)
	}
	if s.correctStreak != 0 {
		t.Errorf("correctStreak = %d, want reset to 0", s.correctStreak)
	}
}

func TestDifficultyState_LowerAfterTwoIncorrect(t *testing.T) {
	s := newDifficultyState(5)

	s.recordOutcome(false)
	if s.target != 5 {
		t.Fatalf("target moved early: %v", s.target)
	}
	s.recordOutcome(false)
	if s.target != 4 {
		t.Errorf("target = %v, want 4 after two incorrect", s.target)
	}
	if s.incorrectStreak != 0 {
		t.Errorf("incorrectStreak = %d, want reset to 0", s.incorrectStreak)
	}
}

func TestDifficultyState_OppositeOutcomeResetsStreak(t *testing.T) {
	s := newDifficultyState(5)

	s.recordOutcome(true)
	s.recordOutcome(true)
	s.recordOutcome(false)
	if s.correctStreak != 0 {
		t.Errorf("correctStreak = %d after miss, want 0", s.correctStreak)
	}

	// Two more corrects must not trigger a raise; the streak restarted.
	s.recordOutcome(true)
	s.recordOutcome(true)
	if s.target != 5 {
		t.Errorf("target = %v, want unchanged 5", s.target)
	}
}

func TestDifficultyState_TargetClamped(t *testing.T) {
	s := newDifficultyState(10)
	for i := 0; i < 9; i++ {
		s.recordOutcome(true)
	}
	if s.target != 10 {
		t.Errorf("target = %v, want clamped at 10", s.target)
	}

	s = newDifficultyState(1)
	for i := 0; i < 8; i++ {
		s.recordOutcome(false)
	}
	if s.target != 1 {
		t.Errorf("target = %v, want clamped at 1", s.target)
	}
}

func TestDifficultyState_InitialTargetClamped(t *testing.T) {
	if got := newDifficultyState(15).target; got != 10 {
		t.Errorf("target = %v, want 10", got)
	}
	if got := newDifficultyState(-3).target; got != 1 {
		t.Errorf("target = %v, want 1", got)
	}
}

func TestPredictOutcome_ProbabilityBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 0))

	// Item far above target: success probability floors at 0.1, so over
	// many draws some successes and many failures must appear.
	s := newDifficultyState(1)
	hard := CandidateItem{ID: "h", Tier: topic.TierHard}
	successes := 0
	for i := 0; i < 2000; i++ {
		if s.predictOutcome(hard, rng) {
			successes++
		}
	}
	if successes == 0 || successes > 600 {
		t.Errorf("successes = %d out of 2000, want near 10%%", successes)
	}

	// Item far below target: probability caps at 0.9, so failures remain.
	s = newDifficultyState(10)
	easy := CandidateItem{ID: "e", Tier: topic.TierEasy}
	failures := 0
	for i := 0; i < 2000; i++ {
		if !s.predictOutcome(easy, rng) {
			failures++
		}
	}
	if failures == 0 || failures > 600 {
		t.Errorf("failures = %d out of 2000, want near 10%%", failures)
	}
}
