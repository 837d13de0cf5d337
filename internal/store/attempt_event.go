package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/dparikh/prepdrill/ent"
	"github.com/dparikh/prepdrill/ent/attemptevent"
)

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetTopic(data.Topic).
		SetTier(data.Tier).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, learnerID, topic string, limit int) ([]AttemptRecord, error) {
	q := r.client.AttemptEvent.Query().
		Where(
			attemptevent.LearnerID(learnerID),
			attemptevent.Topic(topic),
		).
		Order(ent.Desc(attemptevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}

	records := make([]AttemptRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AttemptRecord{
			Topic:     e.Topic,
			Tier:      e.Tier,
			Correct:   e.Correct,
			TimeMs:    e.TimeMs,
			Timestamp: e.Timestamp,
		})
	}
	return records, nil
}

func (r *eventRepo) LearnerTopicStats(ctx context.Context, learnerID string) ([]TopicStats, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.LearnerID(learnerID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query learner attempts: %w", err)
	}

	byTopic := make(map[string]*TopicStats)
	totalMs := make(map[string]int)
	for _, e := range events {
		st, ok := byTopic[e.Topic]
		if !ok {
			st = &TopicStats{Topic: e.Topic}
			byTopic[e.Topic] = st
		}
		st.Attempts++
		if e.Correct {
			st.Correct++
		}
		totalMs[e.Topic] += e.TimeMs
	}

	stats := make([]TopicStats, 0, len(byTopic))
	for topic, st := range byTopic {
		if st.Attempts > 0 {
			st.AvgTimeMs = totalMs[topic] / st.Attempts
		}
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Topic < stats[j].Topic })
	return stats, nil
}
