package sequence

import (
	"github.com/dparikh/prepdrill/internal/topic"
)

// CandidateItem is one eligible practice question supplied by the pool
// provider. It is immutable for the duration of one build pass; eligibility
// filtering (active flags, audience relevance) happens upstream.
type CandidateItem struct {
	ID    string
	Topic string
	Tier  topic.Tier
	Tags  []string
}

// Rationale explains why an item landed at its position in the sequence.
type Rationale string

const (
	// RationaleOptimal marks items sitting within one point of the
	// learner's estimated level.
	RationaleOptimal Rationale = "Optimal difficulty match"
	// RationaleChallenge marks items above the learner's level.
	RationaleChallenge Rationale = "Challenge question"
	// RationaleConfidence marks items below the learner's level.
	RationaleConfidence Rationale = "Confidence building question"
)

// SequencedItem is one position in the output sequence.
type SequencedItem struct {
	Item CandidateItem

	// ExpectedDifficulty is the item's tier value nudged toward or away
	// from the learner's level, on the 1-10 scale.
	ExpectedDifficulty float64

	// SelectionConfidence is the normalized selection score in [0,1].
	SelectionConfidence float64

	Rationale Rationale
}

// ReasonNoQuestions is the reason attached to an empty sequence when the
// candidate pool came back empty. An empty pool is a valid terminal state,
// not an error.
const ReasonNoQuestions = "No questions available"

// Sequence is the ordered output of one build pass.
type Sequence struct {
	// PassID uniquely identifies this generation pass.
	PassID string

	Topic string

	// Level is the proficiency estimate the pass was built against.
	Level float64

	Items []SequencedItem

	// Reason is set only when Items is empty, explaining why.
	Reason string
}
