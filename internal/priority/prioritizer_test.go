package priority

import (
	"testing"

	"github.com/dparikh/prepdrill/internal/proficiency"
	"github.com/dparikh/prepdrill/internal/topic"
)

func makeHistory(n, correct int) []proficiency.Attempt {
	attempts := make([]proficiency.Attempt, n)
	for i := range attempts {
		attempts[i] = proficiency.Attempt{
			Tier:        topic.TierMedium,
			Correct:     i < correct,
			TimeSpentMs: 30000,
		}
	}
	return attempts
}

func TestPrioritize_NeverAttemptedBeforeStrong(t *testing.T) {
	// Topic A never attempted, topic B at 90% over 50 attempts: A first.
	p := NewPrioritizer(proficiency.NewEstimator())
	got := p.Prioritize(
		[]string{"topic-b", "topic-a"},
		map[string][]proficiency.Attempt{
			"topic-b": makeHistory(50, 45),
		},
	)

	if got[0].Topic != "topic-a" {
		t.Errorf("first = %s, want topic-a (never attempted)", got[0].Topic)
	}
	if !got[0].NeedsWork {
		t.Error("never-attempted topic not flagged as needing work")
	}
	if got[1].NeedsWork {
		t.Error("90%-accuracy topic flagged as needing work")
	}
	if got[0].Rank != 1 || got[1].Rank != 2 {
		t.Errorf("ranks = %d,%d, want 1,2", got[0].Rank, got[1].Rank)
	}
}

func TestPrioritize_WeakerNeedsWorkFirst(t *testing.T) {
	p := NewPrioritizer(proficiency.NewEstimator())
	got := p.Prioritize(
		[]string{"mild", "severe"},
		map[string][]proficiency.Attempt{
			"mild":   makeHistory(20, 13), // 65%, barely under threshold
			"severe": makeHistory(20, 4),  // 20%
		},
	)

	if got[0].Topic != "severe" {
		t.Errorf("first = %s, want severe (largest accuracy gap)", got[0].Topic)
	}
}

func TestPrioritize_HealthyTopicsAscendingProficiency(t *testing.T) {
	p := NewPrioritizer(proficiency.NewEstimator())
	got := p.Prioritize(
		[]string{"stronger", "weaker"},
		map[string][]proficiency.Attempt{
			// Both above the needs-work threshold; slower answers give
			// "weaker" a lower proficiency level.
			"stronger": makeHistory(20, 18),
			"weaker": func() []proficiency.Attempt {
				h := makeHistory(20, 15)
				for i := range h {
					h[i].TimeSpentMs = 170000
				}
				return h
			}(),
		},
	)

	if got[0].Topic != "weaker" {
		t.Errorf("first = %s, want weaker (ascending proficiency)", got[0].Topic)
	}
	if got[0].NeedsWork || got[1].NeedsWork {
		t.Error("healthy topics flagged as needing work")
	}
}

func TestPrioritize_TiesKeepInputOrder(t *testing.T) {
	p := NewPrioritizer(proficiency.NewEstimator())
	// Three identical never-attempted topics: input order must survive.
	got := p.Prioritize([]string{"c", "a", "b"}, nil)

	want := []string{"c", "a", "b"}
	for i, w := range want {
		if got[i].Topic != w {
			t.Errorf("position %d = %s, want %s", i, got[i].Topic, w)
		}
	}
}

func TestPrioritize_Idempotent(t *testing.T) {
	p := NewPrioritizer(proficiency.NewEstimator())
	histories := map[string][]proficiency.Attempt{
		"x": makeHistory(20, 10),
		"y": makeHistory(20, 19),
	}
	topics := []string{"x", "y", "z"}

	first := p.Prioritize(topics, histories)
	second := p.Prioritize(topics, histories)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Topic != second[i].Topic || first[i].Rank != second[i].Rank {
			t.Errorf("position %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
