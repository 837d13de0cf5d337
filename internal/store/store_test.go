package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestAttemptAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			LearnerID: "l1",
			Topic:     "word-knowledge",
			Tier:      "medium",
			Correct:   i%2 == 0,
			TimeMs:    30000 + i,
		})
		if err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	records, err := repo.RecentAttempts(ctx, "l1", "word-knowledge", 3)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	// Newest first: the last append carried TimeMs 30004.
	if records[0].TimeMs != 30004 {
		t.Errorf("records[0].TimeMs = %d, want 30004", records[0].TimeMs)
	}

	// Other learners and topics stay isolated.
	records, err = repo.RecentAttempts(ctx, "l2", "word-knowledge", 10)
	if err != nil {
		t.Fatalf("recent attempts (l2): %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) for l2 = %d, want 0", len(records))
	}
}

func TestSequenceAppendAndRecentItemIDs(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSequence(ctx, SequenceEventData{
		PassID:    "pass-1",
		LearnerID: "l1",
		Topic:     "general-science",
		Level:     5.5,
		ItemIDs:   []string{"q1", "q2"},
	})
	if err != nil {
		t.Fatalf("append sequence: %v", err)
	}
	err = repo.AppendSequence(ctx, SequenceEventData{
		PassID:    "pass-2",
		LearnerID: "l1",
		Topic:     "general-science",
		Level:     5.8,
		ItemIDs:   []string{"q2", "q3"},
	})
	if err != nil {
		t.Fatalf("append sequence: %v", err)
	}

	ids, err := repo.RecentSequenceItemIDs(ctx, "l1", "general-science", 10)
	if err != nil {
		t.Fatalf("recent item ids: %v", err)
	}
	// Newest pass first, duplicates collapsed.
	want := []string{"q2", "q3", "q1"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestItemUpsertAndCandidates(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	items := []QuestionItemData{
		{ItemID: "q1", Topic: "general-science", Tier: "easy", Active: true},
		{ItemID: "q2", Topic: "general-science", Tier: "medium", Active: true},
		{ItemID: "q3", Topic: "general-science", Tier: "hard", Active: true},
		{ItemID: "q4", Topic: "general-science", Tier: "medium", Active: false},
		{ItemID: "q5", Topic: "word-knowledge", Tier: "medium", Active: true},
	}
	n, err := repo.UpsertItems(ctx, items)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if n != len(items) {
		t.Errorf("written = %d, want %d", n, len(items))
	}

	got, err := repo.Candidates(ctx, "general-science", []string{"easy", "medium"}, 10)
	if err != nil {
		t.Fatalf("candidates: %v", err)
	}
	// q3 is the wrong tier, q4 inactive, q5 the wrong topic.
	if len(got) != 2 {
		t.Fatalf("len(candidates) = %d, want 2", len(got))
	}
	if got[0].ItemID != "q1" || got[1].ItemID != "q2" {
		t.Errorf("candidates = %v, want q1,q2 in item-ID order", got)
	}

	// Upsert with the same ID replaces rather than duplicates.
	_, err = repo.UpsertItems(ctx, []QuestionItemData{
		{ItemID: "q2", Topic: "general-science", Tier: "hard", Active: true},
	})
	if err != nil {
		t.Fatalf("re-upsert: %v", err)
	}
	got, err = repo.Candidates(ctx, "general-science", []string{"hard"}, 10)
	if err != nil {
		t.Fatalf("candidates after re-upsert: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len(hard candidates) = %d, want 2 (q2 retiered + q3)", len(got))
	}
}

func TestLearnerTopicStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{LearnerID: "l1", Topic: "word-knowledge", Tier: "easy", Correct: true, TimeMs: 20000},
		{LearnerID: "l1", Topic: "word-knowledge", Tier: "easy", Correct: false, TimeMs: 40000},
		{LearnerID: "l1", Topic: "general-science", Tier: "medium", Correct: true, TimeMs: 60000},
	}
	for _, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.LearnerTopicStats(ctx, "l1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}
	// Sorted by topic name.
	if stats[0].Topic != "general-science" || stats[1].Topic != "word-knowledge" {
		t.Fatalf("stats order = %s,%s", stats[0].Topic, stats[1].Topic)
	}
	wk := stats[1]
	if wk.Attempts != 2 || wk.Correct != 1 || wk.AvgTimeMs != 30000 {
		t.Errorf("word-knowledge stats = %+v", wk)
	}
}
