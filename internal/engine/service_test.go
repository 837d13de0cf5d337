package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dparikh/prepdrill/internal/proficiency"
	"github.com/dparikh/prepdrill/internal/sequence"
	"github.com/dparikh/prepdrill/internal/topic"
)

// mockHistory implements AttemptHistory for testing.
type mockHistory struct {
	attempts map[string][]proficiency.Attempt
	seen     map[string]struct{}
	err      error
	calls    int
}

func (m *mockHistory) RecentAttempts(_ context.Context, _, topicID string, _ int) ([]proficiency.Attempt, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.attempts[topicID], nil
}

func (m *mockHistory) RecentItemIDs(_ context.Context, _, _ string, _ int) (map[string]struct{}, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.seen == nil {
		return map[string]struct{}{}, nil
	}
	return m.seen, nil
}

// mockPool implements CandidatePool for testing.
type mockPool struct {
	items     []sequence.CandidateItem
	err       error
	gotTiers  []topic.Tier
	gotSize   int
	callCount int
}

func (m *mockPool) Candidates(_ context.Context, _ string, tiers []topic.Tier, poolSize int) ([]sequence.CandidateItem, error) {
	m.callCount++
	m.gotTiers = tiers
	m.gotSize = poolSize
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

// mockRecorder implements SequenceRecorder for testing.
type mockRecorder struct {
	records []SequenceRecord
	err     error
}

func (m *mockRecorder) RecordSequence(_ context.Context, rec SequenceRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

func testCatalog() *topic.Catalog {
	return topic.NewCatalog([]topic.Topic{
		{ID: "word-knowledge"},
		{ID: "general-science"},
	})
}

func easyItems(n int) []sequence.CandidateItem {
	items := make([]sequence.CandidateItem, n)
	for i := range items {
		items[i] = sequence.CandidateItem{ID: fmt.Sprintf("q%d", i), Topic: "word-knowledge", Tier: topic.TierEasy}
	}
	return items
}

func newTestService(history *mockHistory, pool *mockPool, rec SequenceRecorder) *Service {
	return NewService(Options{
		Catalog:  testCatalog(),
		History:  history,
		Pool:     pool,
		Recorder: rec,
		Seed:     7,
	})
}

func TestBuildSequence_RejectsBadInput(t *testing.T) {
	history := &mockHistory{}
	pool := &mockPool{}
	svc := newTestService(history, pool, nil)
	ctx := context.Background()

	_, err := svc.BuildSequence(ctx, "l1", "word-knowledge", 0, true)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "maxItems", inputErr.Field)

	_, err = svc.BuildSequence(ctx, "l1", "no-such-topic", 5, true)
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "topic", inputErr.Field)

	// Rejection happens before any collaborator call.
	assert.Zero(t, history.calls)
	assert.Zero(t, pool.callCount)
}

func TestBuildSequence_EmptyHistoryNeutralPath(t *testing.T) {
	// Scenario: brand-new learner, three easy items available.
	history := &mockHistory{}
	pool := &mockPool{items: easyItems(3)}
	rec := &mockRecorder{}
	svc := newTestService(history, pool, rec)

	seq, err := svc.BuildSequence(context.Background(), "l1", "word-knowledge", 5, true)
	require.NoError(t, err)

	assert.Len(t, seq.Items, 3)
	assert.Empty(t, seq.Reason)
	assert.Equal(t, proficiency.NeutralLevel, seq.Level)

	// Neutral level 5 requests the easy+medium band, 2x the asked count.
	assert.Equal(t, []topic.Tier{topic.TierEasy, topic.TierMedium}, pool.gotTiers)
	assert.Equal(t, 10, pool.gotSize)

	// The pass lands in the audit trail with every served item.
	require.Len(t, rec.records, 1)
	assert.Equal(t, seq.PassID, rec.records[0].PassID)
	assert.Len(t, rec.records[0].ItemIDs, 3)
}

func TestBuildSequence_EmptyPoolIsNotAnError(t *testing.T) {
	svc := newTestService(&mockHistory{}, &mockPool{}, nil)

	seq, err := svc.BuildSequence(context.Background(), "l1", "word-knowledge", 5, true)
	require.NoError(t, err)
	assert.Empty(t, seq.Items)
	assert.Equal(t, sequence.ReasonNoQuestions, seq.Reason)
}

func TestBuildSequence_WrapsCollaboratorFailure(t *testing.T) {
	cause := errors.New("connection refused")

	_, err := newTestService(&mockHistory{err: cause}, &mockPool{}, nil).
		BuildSequence(context.Background(), "l1", "word-knowledge", 5, true)
	var collabErr *CollaboratorError
	require.ErrorAs(t, err, &collabErr)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to generate adaptive sequence")

	_, err = newTestService(&mockHistory{}, &mockPool{err: cause}, nil).
		BuildSequence(context.Background(), "l1", "word-knowledge", 5, true)
	require.ErrorAs(t, err, &collabErr)
	assert.Equal(t, "candidate pool", collabErr.Op)
}

func TestBuildSequence_NoRecorderConfigured(t *testing.T) {
	// The recorder is optional: a non-empty pass with none configured just
	// skips the audit step.
	svc := newTestService(&mockHistory{}, &mockPool{items: easyItems(2)}, nil)

	seq, err := svc.BuildSequence(context.Background(), "l1", "word-knowledge", 2, true)
	require.NoError(t, err)
	assert.Len(t, seq.Items, 2)
}

func TestBuildSequence_RecorderFailureDoesNotFailBuild(t *testing.T) {
	rec := &mockRecorder{err: errors.New("disk full")}
	svc := newTestService(&mockHistory{}, &mockPool{items: easyItems(2)}, rec)

	seq, err := svc.BuildSequence(context.Background(), "l1", "word-knowledge", 2, false)
	require.NoError(t, err)
	assert.Len(t, seq.Items, 2)
}

func TestBuildSequence_StrongLearnerTierBand(t *testing.T) {
	// 20 fast correct medium answers push the level above 6, which swaps
	// the request to the medium+hard band.
	attempts := make([]proficiency.Attempt, 20)
	for i := range attempts {
		attempts[i] = proficiency.Attempt{Tier: topic.TierMedium, Correct: true, TimeSpentMs: 30000}
	}
	history := &mockHistory{attempts: map[string][]proficiency.Attempt{"word-knowledge": attempts}}
	pool := &mockPool{items: []sequence.CandidateItem{
		{ID: "m1", Tier: topic.TierMedium},
		{ID: "h1", Tier: topic.TierHard},
		{ID: "h2", Tier: topic.TierHard},
	}}
	svc := newTestService(history, pool, nil)

	seq, err := svc.BuildSequence(context.Background(), "l1", "word-knowledge", 3, true)
	require.NoError(t, err)
	assert.Equal(t, []topic.Tier{topic.TierMedium, topic.TierHard}, pool.gotTiers)

	hard := 0
	for _, it := range seq.Items {
		if it.Item.Tier == topic.TierHard {
			hard++
		}
	}
	assert.Positive(t, hard, "strong learner should see hard items")
}

func TestPrioritizeTopics_DefaultsToCatalog(t *testing.T) {
	svc := newTestService(&mockHistory{}, &mockPool{}, nil)

	got, err := svc.PrioritizeTopics(context.Background(), "l1", nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, 2, got[1].Rank)
}

func TestPrioritizeTopics_RejectsUnknownTopic(t *testing.T) {
	svc := newTestService(&mockHistory{}, &mockPool{}, nil)

	_, err := svc.PrioritizeTopics(context.Background(), "l1", []string{"word-knowledge", "bogus"})
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
}

func TestPrioritizeTopics_NeverAttemptedFirst(t *testing.T) {
	// general-science has a strong record; word-knowledge was never tried.
	attempts := make([]proficiency.Attempt, 20)
	for i := range attempts {
		attempts[i] = proficiency.Attempt{Tier: topic.TierMedium, Correct: i != 0, TimeSpentMs: 30000}
	}
	history := &mockHistory{attempts: map[string][]proficiency.Attempt{"general-science": attempts}}
	svc := newTestService(history, &mockPool{}, nil)

	got, err := svc.PrioritizeTopics(context.Background(), "l1", []string{"general-science", "word-knowledge"})
	require.NoError(t, err)
	assert.Equal(t, "word-knowledge", got[0].Topic)
	assert.True(t, got[0].NeedsWork)
}
