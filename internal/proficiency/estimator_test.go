package proficiency

import (
	"testing"
	"time"

	"github.com/dparikh/prepdrill/internal/topic"
)

func fixedClock() func() time.Time {
	t := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

// makeHistory builds n attempts with uniform correctness, tier, and time.
func makeHistory(n int, correct bool, tier topic.Tier, timeMs int) []Attempt {
	attempts := make([]Attempt, n)
	for i := range attempts {
		attempts[i] = Attempt{
			Topic:       "word-knowledge",
			Tier:        tier,
			Correct:     correct,
			TimeSpentMs: timeMs,
		}
	}
	return attempts
}

func TestEstimate_EmptyHistory(t *testing.T) {
	est := NewEstimatorAt(fixedClock()).Estimate("word-knowledge", nil)
	if est.Level != NeutralLevel {
		t.Errorf("Level = %v, want %v", est.Level, NeutralLevel)
	}
	if est.SampleSize != 0 {
		t.Errorf("SampleSize = %d, want 0", est.SampleSize)
	}
	if est.Topic != "word-knowledge" {
		t.Errorf("Topic = %q", est.Topic)
	}
}

func TestEstimate_AllCorrectMedium(t *testing.T) {
	// 20 correct medium answers at 30s each: accuracy 4, speed 2.5,
	// consistency 2 (zero variance across 4 groups), difficulty 1/3.
	history := makeHistory(20, true, topic.TierMedium, 30000)
	est := NewEstimatorAt(fixedClock()).Estimate("word-knowledge", history)

	if est.Level < 7 {
		t.Errorf("Level = %v, want >= 7 for a perfect window", est.Level)
	}
	if est.SampleSize != 20 {
		t.Errorf("SampleSize = %d, want 20", est.SampleSize)
	}
}

func TestEstimate_LevelAlwaysInRange(t *testing.T) {
	cases := []struct {
		name    string
		history []Attempt
	}{
		{"all wrong, very slow", makeHistory(20, false, topic.TierEasy, 10*60*1000)},
		{"all correct, instant", makeHistory(20, true, topic.TierHard, 0)},
		{"single attempt", makeHistory(1, true, topic.TierMedium, 1000)},
		{"negative time", makeHistory(20, true, topic.TierMedium, -5000)},
		{"huge time", makeHistory(20, false, topic.TierMedium, 1 << 30)},
	}

	e := NewEstimatorAt(fixedClock())
	for _, tc := range cases {
		est := e.Estimate("t", tc.history)
		if est.Level < 1 || est.Level > 10 {
			t.Errorf("%s: Level = %v, outside [1,10]", tc.name, est.Level)
		}
	}
}

func TestEstimate_WindowTruncation(t *testing.T) {
	// 40 attempts: the 20 most recent (all correct) should fully determine
	// the estimate; the older failures must not drag it down.
	recent := makeHistory(20, true, topic.TierMedium, 30000)
	old := makeHistory(20, false, topic.TierMedium, 30000)
	history := append(recent, old...)

	e := NewEstimatorAt(fixedClock())
	full := e.Estimate("t", history)
	windowOnly := e.Estimate("t", recent)

	if full.Level != windowOnly.Level {
		t.Errorf("Level = %v with stale tail, want %v", full.Level, windowOnly.Level)
	}
	if full.SampleSize != 20 {
		t.Errorf("SampleSize = %d, want 20", full.SampleSize)
	}
}

func TestSpeedComponent_ZeroBeyondThreeMinutes(t *testing.T) {
	slow := makeHistory(5, true, topic.TierEasy, 4*60*1000)
	if got := speedComponent(slow); got != 0 {
		t.Errorf("speedComponent(4min avg) = %v, want 0", got)
	}

	fast := makeHistory(5, true, topic.TierEasy, 0)
	if got := speedComponent(fast); got != 3 {
		t.Errorf("speedComponent(instant) = %v, want 3", got)
	}
}

func TestConsistencyComponent_NeutralForShortHistory(t *testing.T) {
	// Two groups only (10 attempts): not enough to trust variance.
	history := makeHistory(10, true, topic.TierEasy, 1000)
	if got := consistencyComponent(history); got != 1 {
		t.Errorf("consistencyComponent(10 attempts) = %v, want neutral 1", got)
	}
}

func TestConsistencyComponent_PenalizesStreakiness(t *testing.T) {
	// Alternating perfect and failed groups of 5.
	var history []Attempt
	history = append(history, makeHistory(5, true, topic.TierEasy, 1000)...)
	history = append(history, makeHistory(5, false, topic.TierEasy, 1000)...)
	history = append(history, makeHistory(5, true, topic.TierEasy, 1000)...)
	history = append(history, makeHistory(5, false, topic.TierEasy, 1000)...)

	// Group accuracies 1,0,1,0: variance 0.25, so 2-10*0.25 floors at 0.
	if got := consistencyComponent(history); got != 0 {
		t.Errorf("consistencyComponent(streaky) = %v, want 0", got)
	}

	steady := makeHistory(20, true, topic.TierEasy, 1000)
	if got := consistencyComponent(steady); got != 2 {
		t.Errorf("consistencyComponent(steady) = %v, want 2", got)
	}
}

func TestDifficultyComponent_AveragesAcrossTiers(t *testing.T) {
	// Perfect on all three tiers: full point.
	var history []Attempt
	history = append(history, makeHistory(3, true, topic.TierEasy, 1000)...)
	history = append(history, makeHistory(3, true, topic.TierMedium, 1000)...)
	history = append(history, makeHistory(3, true, topic.TierHard, 1000)...)
	if got := difficultyComponent(history); got != 1 {
		t.Errorf("difficultyComponent(all tiers perfect) = %v, want 1", got)
	}

	// Perfect on one tier only: unattempted tiers count as zero.
	oneTier := makeHistory(3, true, topic.TierMedium, 1000)
	want := 1.0 / 3
	if got := difficultyComponent(oneTier); got != want {
		t.Errorf("difficultyComponent(one tier) = %v, want %v", got, want)
	}
}
