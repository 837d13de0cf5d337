package app

import (
	"context"

	"github.com/dparikh/prepdrill/internal/engine"
	"github.com/dparikh/prepdrill/internal/proficiency"
	"github.com/dparikh/prepdrill/internal/sequence"
	"github.com/dparikh/prepdrill/internal/store"
	"github.com/dparikh/prepdrill/internal/topic"
)

// attemptHistory adapts the event repo to the engine's history collaborator.
type attemptHistory struct {
	events store.EventRepo
}

func (h *attemptHistory) RecentAttempts(ctx context.Context, learnerID, topicID string, window int) ([]proficiency.Attempt, error) {
	records, err := h.events.RecentAttempts(ctx, learnerID, topicID, window)
	if err != nil {
		return nil, err
	}
	attempts := make([]proficiency.Attempt, 0, len(records))
	for _, r := range records {
		attempts = append(attempts, proficiency.Attempt{
			Topic:       r.Topic,
			Tier:        topic.Tier(r.Tier),
			Correct:     r.Correct,
			TimeSpentMs: r.TimeMs,
			OccurredAt:  r.Timestamp,
		})
	}
	return attempts, nil
}

func (h *attemptHistory) RecentItemIDs(ctx context.Context, learnerID, topicID string, limit int) (map[string]struct{}, error) {
	ids, err := h.events.RecentSequenceItemIDs(ctx, learnerID, topicID, limit)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return seen, nil
}

// candidatePool adapts the question bank to the engine's pool collaborator.
type candidatePool struct {
	items store.ItemRepo
}

func (p *candidatePool) Candidates(ctx context.Context, topicID string, tiers []topic.Tier, poolSize int) ([]sequence.CandidateItem, error) {
	tierNames := make([]string, 0, len(tiers))
	for _, t := range tiers {
		tierNames = append(tierNames, string(t))
	}
	records, err := p.items.Candidates(ctx, topicID, tierNames, poolSize)
	if err != nil {
		return nil, err
	}
	items := make([]sequence.CandidateItem, 0, len(records))
	for _, r := range records {
		items = append(items, sequence.CandidateItem{
			ID:    r.ItemID,
			Topic: r.Topic,
			Tier:  topic.Tier(r.Tier),
			Tags:  r.Tags,
		})
	}
	return items, nil
}

// sequenceRecorder appends completed passes to the event log.
type sequenceRecorder struct {
	events store.EventRepo
}

func (r *sequenceRecorder) RecordSequence(ctx context.Context, rec engine.SequenceRecord) error {
	return r.events.AppendSequence(ctx, store.SequenceEventData{
		PassID:    rec.PassID,
		LearnerID: rec.LearnerID,
		Topic:     rec.Topic,
		Level:     rec.Level,
		ItemIDs:   rec.ItemIDs,
	})
}
