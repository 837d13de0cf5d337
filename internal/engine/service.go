// Package engine is the entry point for adaptive sequencing and topic
// prioritization. It wires the proficiency estimator, sequence builder, and
// category prioritizer behind two operations and delegates all I/O to
// injected collaborators.
package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/dparikh/prepdrill/internal/priority"
	"github.com/dparikh/prepdrill/internal/proficiency"
	"github.com/dparikh/prepdrill/internal/sequence"
	"github.com/dparikh/prepdrill/internal/topic"
)

// AttemptHistory provides read-only access to a learner's past attempts.
// Implemented by the surrounding application.
type AttemptHistory interface {
	// RecentAttempts returns up to window attempts for the learner and
	// topic, newest first.
	RecentAttempts(ctx context.Context, learnerID, topicID string, window int) ([]proficiency.Attempt, error)

	// RecentItemIDs returns the IDs of items served to the learner in
	// recent sequences, used to keep fresh questions ahead of repeats.
	RecentItemIDs(ctx context.Context, learnerID, topicID string, limit int) (map[string]struct{}, error)
}

// CandidatePool supplies eligible practice items for a topic, already
// filtered for activity and audience relevance upstream.
type CandidatePool interface {
	Candidates(ctx context.Context, topicID string, tiers []topic.Tier, poolSize int) ([]sequence.CandidateItem, error)
}

// SequenceRecord summarizes one completed build pass for the audit trail.
type SequenceRecord struct {
	PassID    string
	LearnerID string
	Topic     string
	Level     float64
	ItemIDs   []string
}

// SequenceRecorder receives completed pass summaries. Optional; recording
// failures never fail the build.
type SequenceRecorder interface {
	RecordSequence(ctx context.Context, rec SequenceRecord) error
}

// Options configures a Service.
type Options struct {
	Catalog  *topic.Catalog
	History  AttemptHistory
	Pool     CandidatePool
	Recorder SequenceRecorder // optional
	Logger   *zap.Logger      // optional

	// HistoryWindow caps how many recent attempts feed the estimator.
	// Zero means proficiency.WindowSize.
	HistoryWindow int

	// PoolMultiplier scales the requested pool relative to maxItems.
	// Zero means 2.
	PoolMultiplier int

	// Seed pins the builder's pacing RNG. Zero seeds from the clock.
	Seed int64

	// RecentSeenLimit caps how many previously served item IDs feed the
	// novelty criterion. Zero means 50.
	RecentSeenLimit int
}

// Service exposes the two engine operations.
type Service struct {
	catalog     *topic.Catalog
	history     AttemptHistory
	pool        CandidatePool
	recorder    SequenceRecorder
	logger      *zap.Logger
	estimator   *proficiency.Estimator
	builder     *sequence.Builder
	prioritizer *priority.Prioritizer

	window     int
	poolFactor int
	seenLimit  int
}

// NewService creates a Service from the given options.
func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	window := opts.HistoryWindow
	if window <= 0 {
		window = proficiency.WindowSize
	}
	poolFactor := opts.PoolMultiplier
	if poolFactor <= 0 {
		poolFactor = 2
	}
	seenLimit := opts.RecentSeenLimit
	if seenLimit <= 0 {
		seenLimit = 50
	}

	var builder *sequence.Builder
	if opts.Seed != 0 {
		builder = sequence.NewBuilderWithSeed(opts.Seed)
	} else {
		builder = sequence.NewBuilder()
	}

	estimator := proficiency.NewEstimator()

	return &Service{
		catalog:     opts.Catalog,
		history:     opts.History,
		pool:        opts.Pool,
		recorder:    opts.Recorder,
		logger:      logger,
		estimator:   estimator,
		builder:     builder,
		prioritizer: priority.NewPrioritizer(estimator),
		window:      window,
		poolFactor:  poolFactor,
		seenLimit:   seenLimit,
	}
}

// BuildSequence produces an ordered batch of practice items for one learner
// and topic. Empty history and an empty candidate pool are both valid: the
// former anchors the estimate at the neutral level, the latter returns an
// empty sequence with a reason instead of an error.
func (s *Service) BuildSequence(ctx context.Context, learnerID, topicID string, maxItems int, adaptive bool) (sequence.Sequence, error) {
	if maxItems <= 0 {
		return sequence.Sequence{}, &InputError{Field: "maxItems", Reason: "must be positive"}
	}
	if !s.catalog.Contains(topicID) {
		return sequence.Sequence{}, &InputError{Field: "topic", Reason: "not in catalog"}
	}

	history, err := s.history.RecentAttempts(ctx, learnerID, topicID, s.window)
	if err != nil {
		return sequence.Sequence{}, &CollaboratorError{Op: "attempt history", Err: err}
	}

	est := s.estimator.Estimate(topicID, history)

	pool, err := s.pool.Candidates(ctx, topicID, topic.TiersForLevel(est.Level), s.poolFactor*maxItems)
	if err != nil {
		return sequence.Sequence{}, &CollaboratorError{Op: "candidate pool", Err: err}
	}

	recentlySeen, err := s.history.RecentItemIDs(ctx, learnerID, topicID, s.seenLimit)
	if err != nil {
		return sequence.Sequence{}, &CollaboratorError{Op: "attempt history", Err: err}
	}

	seq := s.builder.Build(est, pool, recentlySeen, maxItems, adaptive)

	s.logger.Debug("built sequence",
		zap.String("pass_id", seq.PassID),
		zap.String("learner_id", learnerID),
		zap.String("topic", topicID),
		zap.Float64("level", est.Level),
		zap.Int("items", len(seq.Items)),
		zap.Int("pool", len(pool)),
	)

	if s.recorder != nil && len(seq.Items) > 0 {
		rec := SequenceRecord{
			PassID:    seq.PassID,
			LearnerID: learnerID,
			Topic:     topicID,
			Level:     est.Level,
		}
		for _, it := range seq.Items {
			rec.ItemIDs = append(rec.ItemIDs, it.Item.ID)
		}
		if err := s.recorder.RecordSequence(ctx, rec); err != nil {
			s.logger.Warn("record sequence", zap.Error(err))
		}
	}

	return seq, nil
}

// PrioritizeTopics ranks the given topics for one learner, weakest and
// never-attempted first. With no topics given it ranks the whole catalog.
func (s *Service) PrioritizeTopics(ctx context.Context, learnerID string, topics []string) ([]priority.TopicPriority, error) {
	if len(topics) == 0 {
		topics = s.catalog.IDs()
	}
	for _, t := range topics {
		if !s.catalog.Contains(t) {
			return nil, &InputError{Field: "topic", Reason: "not in catalog"}
		}
	}

	histories := make(map[string][]proficiency.Attempt, len(topics))
	for _, t := range topics {
		h, err := s.history.RecentAttempts(ctx, learnerID, t, s.window)
		if err != nil {
			return nil, &CollaboratorError{Op: "attempt history", Err: err}
		}
		histories[t] = h
	}

	return s.prioritizer.Prioritize(topics, histories), nil
}

// Estimate exposes the proficiency estimate for a single topic, for display
// surfaces like the stats command.
func (s *Service) Estimate(ctx context.Context, learnerID, topicID string) (proficiency.Estimate, error) {
	if !s.catalog.Contains(topicID) {
		return proficiency.Estimate{}, &InputError{Field: "topic", Reason: "not in catalog"}
	}
	history, err := s.history.RecentAttempts(ctx, learnerID, topicID, s.window)
	if err != nil {
		return proficiency.Estimate{}, &CollaboratorError{Op: "attempt history", Err: err}
	}
	return s.estimator.Estimate(topicID, history), nil
}
