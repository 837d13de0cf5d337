package store

import (
	"context"
	"fmt"

	"github.com/dparikh/prepdrill/ent"
	"github.com/dparikh/prepdrill/ent/sequenceevent"
)

func (r *eventRepo) AppendSequence(ctx context.Context, data SequenceEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SequenceEvent.Create().
		SetSequence(seqNum).
		SetPassID(data.PassID).
		SetLearnerID(data.LearnerID).
		SetTopic(data.Topic).
		SetLevel(data.Level).
		SetItemIds(data.ItemIDs).
		SetItemCount(len(data.ItemIDs)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save sequence event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSequenceItemIDs(ctx context.Context, learnerID, topic string, limit int) ([]string, error) {
	events, err := r.client.SequenceEvent.Query().
		Where(
			sequenceevent.LearnerID(learnerID),
			sequenceevent.Topic(topic),
		).
		Order(ent.Desc(sequenceevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sequences: %w", err)
	}

	var ids []string
	seen := make(map[string]struct{})
	for _, e := range events {
		for _, id := range e.ItemIds {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
			if limit > 0 && len(ids) >= limit {
				return ids, nil
			}
		}
	}
	return ids, nil
}
