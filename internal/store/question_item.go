package store

import (
	"context"
	"fmt"

	"github.com/dparikh/prepdrill/ent"
	"github.com/dparikh/prepdrill/ent/questionitem"
)

type itemRepo struct {
	client *ent.Client
}

func (r *itemRepo) UpsertItems(ctx context.Context, items []QuestionItemData) (int, error) {
	written := 0
	for _, item := range items {
		existing, err := r.client.QuestionItem.Query().
			Where(questionitem.ItemID(item.ItemID)).
			Only(ctx)
		switch {
		case err == nil:
			_, err = existing.Update().
				SetTopic(item.Topic).
				SetTier(item.Tier).
				SetTags(item.Tags).
				SetActive(item.Active).
				Save(ctx)
			if err != nil {
				return written, fmt.Errorf("update item %s: %w", item.ItemID, err)
			}
		case ent.IsNotFound(err):
			_, err = r.client.QuestionItem.Create().
				SetItemID(item.ItemID).
				SetTopic(item.Topic).
				SetTier(item.Tier).
				SetTags(item.Tags).
				SetActive(item.Active).
				Save(ctx)
			if err != nil {
				return written, fmt.Errorf("create item %s: %w", item.ItemID, err)
			}
		default:
			return written, fmt.Errorf("lookup item %s: %w", item.ItemID, err)
		}
		written++
	}
	return written, nil
}

func (r *itemRepo) Candidates(ctx context.Context, topic string, tiers []string, limit int) ([]QuestionRecord, error) {
	q := r.client.QuestionItem.Query().
		Where(
			questionitem.Topic(topic),
			questionitem.TierIn(tiers...),
			questionitem.Active(true),
		).
		Order(ent.Asc(questionitem.FieldItemID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	items, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}

	records := make([]QuestionRecord, 0, len(items))
	for _, it := range items {
		records = append(records, QuestionRecord{
			ItemID: it.ItemID,
			Topic:  it.Topic,
			Tier:   it.Tier,
			Tags:   it.Tags,
		})
	}
	return records, nil
}
