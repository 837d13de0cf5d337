package sequence

// Scoring weights. Difficulty fit dominates, novelty keeps recently seen
// questions out of the way, and position fit applies the start-easier
// ramp-up policy.
const (
	difficultyFitWeight = 3
	noveltyWeight       = 2

	// maxScore is the ceiling the weighted sum can reach; confidence is
	// normalized against it.
	maxScore = 6.0

	// earlyPositionCount is how many opening positions prefer easier items.
	earlyPositionCount = 3

	// easyItemCutoff splits tier values into "easier" and "harder" halves
	// for position fit.
	easyItemCutoff = 4.0
)

// scoreItem ranks a candidate by fit to the learner's level, novelty against
// recently seen items, and appropriateness for its position in the sequence.
// The result lands roughly in [0, maxScore].
func scoreItem(item CandidateItem, level float64, recentlySeen map[string]struct{}, position int) float64 {
	value := item.Tier.Value()

	distance := value - level
	if distance < 0 {
		distance = -distance
	}
	difficultyFit := 1 - distance/5
	if difficultyFit < 0 {
		difficultyFit = 0
	}

	novelty := 1.0
	if _, seen := recentlySeen[item.ID]; seen {
		novelty = 0
	}

	positionFit := 0.5
	if (position < earlyPositionCount && value <= easyItemCutoff) ||
		(position >= earlyPositionCount && value > easyItemCutoff) {
		positionFit = 1
	}

	return difficultyFitWeight*difficultyFit + noveltyWeight*novelty + positionFit
}

// pickBest returns the index of the highest-scoring candidate along with its
// score. Ties keep the earliest candidate, so identical pools always produce
// identical picks. Returns -1 for an empty slice.
func pickBest(candidates []CandidateItem, level float64, recentlySeen map[string]struct{}, position int) (int, float64) {
	bestIdx := -1
	bestScore := 0.0
	for i, c := range candidates {
		s := scoreItem(c, level, recentlySeen, position)
		if bestIdx == -1 || s > bestScore {
			bestIdx = i
			bestScore = s
		}
	}
	return bestIdx, bestScore
}
