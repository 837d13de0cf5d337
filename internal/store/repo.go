package store

import (
	"context"
	"time"
)

// AttemptEventData captures one answered question for appending.
type AttemptEventData struct {
	LearnerID string
	Topic     string
	Tier      string
	Correct   bool
	TimeMs    int
}

// AttemptRecord is one stored attempt as read back from the event log,
// newest first.
type AttemptRecord struct {
	Topic     string
	Tier      string
	Correct   bool
	TimeMs    int
	Timestamp time.Time
}

// SequenceEventData captures one completed generation pass for appending.
type SequenceEventData struct {
	PassID    string
	LearnerID string
	Topic     string
	Level     float64
	ItemIDs   []string
}

// TopicStats aggregates a learner's attempt history for one topic.
type TopicStats struct {
	Topic     string
	Attempts  int
	Correct   int
	AvgTimeMs int
}

// EventRepo provides append and query access to the attempt and sequence
// event logs.
type EventRepo interface {
	// AppendAttempt records one answered question.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// RecentAttempts returns up to limit attempts for the learner and
	// topic, newest first.
	RecentAttempts(ctx context.Context, learnerID, topic string, limit int) ([]AttemptRecord, error)

	// AppendSequence records one completed generation pass.
	AppendSequence(ctx context.Context, data SequenceEventData) error

	// RecentSequenceItemIDs returns item IDs served in the learner's most
	// recent passes for the topic, capped at limit IDs.
	RecentSequenceItemIDs(ctx context.Context, learnerID, topic string, limit int) ([]string, error)

	// LearnerTopicStats aggregates per-topic attempt counts, accuracy
	// inputs, and average answer time for one learner.
	LearnerTopicStats(ctx context.Context, learnerID string) ([]TopicStats, error)
}

// QuestionItemData is one question bank entry for seeding.
type QuestionItemData struct {
	ItemID string
	Topic  string
	Tier   string
	Tags   []string
	Active bool
}

// QuestionRecord is one active question bank entry as read back.
type QuestionRecord struct {
	ItemID string
	Topic  string
	Tier   string
	Tags   []string
}

// ItemRepo provides access to the local question bank.
type ItemRepo interface {
	// UpsertItems inserts or replaces question bank entries, returning the
	// number written.
	UpsertItems(ctx context.Context, items []QuestionItemData) (int, error)

	// Candidates returns up to limit active items for the topic within the
	// given tiers, in stable item-ID order.
	Candidates(ctx context.Context, topic string, tiers []string, limit int) ([]QuestionRecord, error)
}
