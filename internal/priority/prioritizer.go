// Package priority orders topics for multi-topic study plans. It is the
// longer-horizon planning layer sitting above single-topic sequencing:
// topics the learner struggles with (or has never touched) come first, and
// within each band weaker proficiency outranks stronger.
package priority

import (
	"sort"

	"github.com/dparikh/prepdrill/internal/proficiency"
)

// needsWorkThreshold is the accuracy below which a topic is flagged as
// needing attention.
const needsWorkThreshold = 0.7

// TopicPriority is one entry in the prioritized topic list.
type TopicPriority struct {
	Topic       string
	Proficiency float64
	NeedsWork   bool
	Rank        int // 1-based position in priority order
}

// Prioritizer ranks topics by estimated need. It holds no state between
// calls; identical inputs always produce identical orderings.
type Prioritizer struct {
	estimator *proficiency.Estimator
}

// NewPrioritizer creates a Prioritizer backed by the given estimator.
func NewPrioritizer(estimator *proficiency.Estimator) *Prioritizer {
	return &Prioritizer{estimator: estimator}
}

// Prioritize ranks the given topics using their attempt histories. Topics
// missing from histories are treated as never attempted, which always flags
// them as needing work. Ties preserve the input topic order.
func (p *Prioritizer) Prioritize(topics []string, histories map[string][]proficiency.Attempt) []TopicPriority {
	entries := make([]TopicPriority, 0, len(topics))
	needs := make([]float64, 0, len(topics))

	for _, t := range topics {
		history := histories[t]
		est := p.estimator.Estimate(t, history)
		entries = append(entries, TopicPriority{
			Topic:       t,
			Proficiency: est.Level,
			NeedsWork:   needsWork(history),
		})
		needs = append(needs, need(history))
	}

	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		ea, eb := entries[idx[a]], entries[idx[b]]
		if ea.NeedsWork != eb.NeedsWork {
			return ea.NeedsWork
		}
		if ea.NeedsWork {
			if needs[idx[a]] != needs[idx[b]] {
				return needs[idx[a]] > needs[idx[b]]
			}
		}
		return ea.Proficiency < eb.Proficiency
	})

	out := make([]TopicPriority, len(idx))
	for rank, i := range idx {
		e := entries[i]
		e.Rank = rank + 1
		out[rank] = e
	}
	return out
}

// needsWork flags topics under the accuracy threshold. Never-attempted
// topics always need work.
func needsWork(history []proficiency.Attempt) bool {
	if len(history) == 0 {
		return true
	}
	return accuracy(history) < needsWorkThreshold
}

// need measures how far below the threshold a topic sits; unattempted
// topics get the maximum need so they sort ahead of merely weak ones.
func need(history []proficiency.Attempt) float64 {
	if len(history) == 0 {
		return 1
	}
	n := needsWorkThreshold - accuracy(history)
	if n < 0 {
		return 0
	}
	return n
}

func accuracy(history []proficiency.Attempt) float64 {
	correct := 0
	for _, a := range history {
		if a.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(history))
}
