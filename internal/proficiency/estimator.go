package proficiency

import (
	"time"

	"github.com/dparikh/prepdrill/internal/topic"
)

const (
	// WindowSize is the number of most recent attempts the estimator looks at.
	WindowSize = 20

	// NeutralLevel anchors the very first sequence a new learner receives:
	// with no history at all, the estimate sits at the middle of the scale
	// rather than the bottom, so the opening batch mixes easy and medium.
	NeutralLevel = 5.0

	// consistencyGroupSize is the chunk size used to group attempts when
	// measuring accuracy variance.
	consistencyGroupSize = 5

	// minConsistencyGroups is the minimum number of groups required before
	// the variance signal is trusted; below it the component is neutral.
	minConsistencyGroups = 3
)

// Estimator converts an attempt history into a proficiency level on the
// 1-10 scale. It is a pure function over its input window and carries no
// state of its own.
type Estimator struct {
	now func() time.Time
}

// NewEstimator creates an Estimator using wall-clock time.
func NewEstimator() *Estimator {
	return &Estimator{now: time.Now}
}

// NewEstimatorAt creates an Estimator with an injected clock, for tests.
func NewEstimatorAt(now func() time.Time) *Estimator {
	return &Estimator{now: now}
}

// Estimate computes the proficiency estimate for one topic from its attempt
// history, ordered newest first. Histories longer than WindowSize are
// truncated to the most recent WindowSize attempts. An empty history is
// valid and yields the neutral default.
func (e *Estimator) Estimate(topicID string, history []Attempt) Estimate {
	if len(history) > WindowSize {
		history = history[:WindowSize]
	}

	est := Estimate{
		Topic:      topicID,
		SampleSize: len(history),
		ComputedAt: e.now(),
	}

	if len(history) == 0 {
		est.Level = NeutralLevel
		return est
	}

	level := accuracyComponent(history) +
		speedComponent(history) +
		consistencyComponent(history) +
		difficultyComponent(history)

	est.Level = clamp(level, 1, 10)
	return est
}

// accuracyComponent contributes up to 4 points: raw accuracy over the window.
func accuracyComponent(history []Attempt) float64 {
	correct := 0
	for _, a := range history {
		if a.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(history)) * 4
}

// speedComponent contributes up to 3 points, rewarding averages under three
// minutes and bottoming out at zero beyond that.
func speedComponent(history []Attempt) float64 {
	totalMs := 0
	for _, a := range history {
		totalMs += a.TimeSpentMs
	}
	avgSecs := float64(totalMs) / float64(len(history)) / 1000
	score := 3 - avgSecs/60
	if score < 0 {
		return 0
	}
	return score
}

// consistencyComponent contributes up to 2 points. The window is chunked
// into consecutive groups and the variance of per-group accuracy is
// penalized; steady performers score high, streaky ones low. Short
// histories that produce fewer than minConsistencyGroups groups get the
// neutral midpoint instead of an unreliable variance.
func consistencyComponent(history []Attempt) float64 {
	var groupAccs []float64
	for start := 0; start < len(history); start += consistencyGroupSize {
		end := start + consistencyGroupSize
		if end > len(history) {
			end = len(history)
		}
		group := history[start:end]
		correct := 0
		for _, a := range group {
			if a.Correct {
				correct++
			}
		}
		groupAccs = append(groupAccs, float64(correct)/float64(len(group)))
	}

	if len(groupAccs) < minConsistencyGroups {
		return 1
	}

	mean := 0.0
	for _, acc := range groupAccs {
		mean += acc
	}
	mean /= float64(len(groupAccs))

	variance := 0.0
	for _, acc := range groupAccs {
		d := acc - mean
		variance += d * d
	}
	variance /= float64(len(groupAccs))

	score := 2 - 10*variance
	if score < 0 {
		return 0
	}
	return score
}

// difficultyComponent contributes up to 1 point: the mean of per-tier
// accuracy across all three tiers, with unattempted tiers counting as zero.
// Only learners handling every tier well reach the full point.
func difficultyComponent(history []Attempt) float64 {
	total := make(map[topic.Tier]int)
	correct := make(map[topic.Tier]int)
	for _, a := range history {
		total[a.Tier]++
		if a.Correct {
			correct[a.Tier]++
		}
	}

	sum := 0.0
	tiers := topic.AllTiers()
	for _, t := range tiers {
		if total[t] == 0 {
			continue
		}
		sum += float64(correct[t]) / float64(total[t])
	}
	return sum / float64(len(tiers))
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
