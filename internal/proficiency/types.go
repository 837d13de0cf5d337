package proficiency

import (
	"time"

	"github.com/dparikh/prepdrill/internal/topic"
)

// Attempt is one recorded answer to a practice question. Attempts are
// created by the attempt-recording layer and are read-only here.
type Attempt struct {
	Topic       string
	Tier        topic.Tier
	Correct     bool
	TimeSpentMs int
	OccurredAt  time.Time
}

// Estimate is the derived proficiency for one topic. It is recomputed on
// demand from the attempt window and never persisted.
type Estimate struct {
	Topic      string
	Level      float64 // always within [1,10]
	SampleSize int
	ComputedAt time.Time
}
