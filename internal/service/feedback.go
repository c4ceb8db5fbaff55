package service

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/leadcoach/leadcoach-api/internal/domain"
	"github.com/leadcoach/leadcoach-api/internal/repository"
)

// FeedbackService records scored messages and maintains the aggregated
// profile scores
type FeedbackService struct {
	feedbackRepo repository.FeedbackRepository
	profileRepo  repository.ProfileRepository
	analyzer     *Analyzer
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(
	feedbackRepo repository.FeedbackRepository,
	profileRepo repository.ProfileRepository,
	analyzer *Analyzer,
) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		profileRepo:  profileRepo,
		analyzer:     analyzer,
	}
}

// RecordScoredMessage analyzes the text, persists the scored message and
// recomputes the sender's aggregated profile scores
func (s *FeedbackService) RecordScoredMessage(ctx context.Context, userID, text string) (*domain.ScoredMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyMessage
	}

	msg := &domain.ScoredMessage{
		ID:          uuid.NewString(),
		UserID:      userID,
		MessageText: text,
		Scores:      s.analyzer.Analyze(text),
	}

	if err := s.feedbackRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	// Full-history recompute on every message, O(n).
	// Not transactional with the insert: a concurrent recompute may read a
	// momentarily stale set and is corrected by the next one.
	if err := s.RecomputeProfileScores(ctx, userID); err != nil {
		return nil, err
	}

	return msg, nil
}

// RecomputeProfileScores recalculates all four aggregated scores from the
// user's full message history and writes them onto the profile. With no
// messages all four are reset to zero rather than left stale.
func (s *FeedbackService) RecomputeProfileScores(ctx context.Context, userID string) error {
	messages, err := s.feedbackRepo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	var scores domain.Scores
	if len(messages) > 0 {
		var tone, empathy, clarity, confidence int
		for _, msg := range messages {
			tone += msg.Scores.Tone
			empathy += msg.Scores.Empathy
			clarity += msg.Scores.Clarity
			confidence += msg.Scores.Confidence
		}

		n := len(messages)
		scores = domain.Scores{
			Tone:       roundMean(tone, n),
			Empathy:    roundMean(empathy, n),
			Clarity:    roundMean(clarity, n),
			Confidence: roundMean(confidence, n),
		}
	}

	return s.profileRepo.UpdateScores(ctx, userID, scores)
}

// ListScoredMessages returns the user's feedback history, newest first
func (s *FeedbackService) ListScoredMessages(ctx context.Context, userID string) ([]*domain.ScoredMessage, error) {
	return s.feedbackRepo.ListByUser(ctx, userID)
}

// roundMean returns sum/n rounded half-up to the nearest integer
func roundMean(sum, n int) int {
	return int(math.Floor(float64(sum)/float64(n) + 0.5))
}
