// Package services exposes the request/response operations the HTTP surface
// consumes. The periodic loops live in runtime; services only handle
// client-triggered work.
package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"match-lab/ai"
	"match-lab/contract"
	"match-lab/domain"
	"match-lab/errors"
	"match-lab/moderation"
)

type QueueStatus struct {
	Waiting           bool    `json:"waiting"`
	Position          int     `json:"position"`
	EstimatedWaitTime float64 `json:"estimated_wait_time"`
	QueueSize         int     `json:"queue_size"`
}

// MatchmakingService validates and enqueues matching requests, answers
// status queries, and provisions room access for matched users.
type MatchmakingService struct {
	log             *slog.Logger
	queue           contract.IQueueRepository
	matches         contract.IMatchRepository
	extractor       contract.IHashtagExtractor
	moderator       *moderation.Moderator
	provisioner     contract.IRoomProvisioner
	waitPerPosition time.Duration
	validate        *validator.Validate
	now             func() time.Time
}

func NewMatchmakingService(
	log *slog.Logger,
	queue contract.IQueueRepository,
	matches contract.IMatchRepository,
	extractor contract.IHashtagExtractor,
	moderator *moderation.Moderator,
	provisioner contract.IRoomProvisioner,
	waitPerPosition time.Duration,
) *MatchmakingService {
	return &MatchmakingService{
		log:             log,
		queue:           queue,
		matches:         matches,
		extractor:       extractor,
		moderator:       moderator,
		provisioner:     provisioner,
		waitPerPosition: waitPerPosition,
		validate:        validator.New(),
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Enqueue validates the preferences, resolves the user's hashtags, and adds
// the user to the waiting queue. Re-enqueueing replaces the previous request
// and restarts the wait: a user who changes preferences starts over.
func (s *MatchmakingService) Enqueue(userID string, prefs domain.Preferences) (domain.QueueEntry, error) {
	if prefs.Version == 0 {
		prefs.Version = 1
	}
	if err := s.validate.Struct(prefs); err != nil {
		return domain.QueueEntry{}, fmt.Errorf("%w: %v", errors.ErrInvalidMessage, err)
	}

	tags := ai.NormalizeHashtags(prefs.Hashtags)
	if len(tags) == 0 && prefs.Interests != "" {
		derived, err := s.extractor.ComputeHashtags(prefs.Interests)
		if err != nil {
			s.log.Warn("Hashtag extraction produced nothing", "user_id", userID, "error", err)
		} else {
			tags = derived
		}
	}
	tags = s.moderator.FilterHashtags(tags)

	entry := domain.QueueEntry{
		UserID:      userID,
		Hashtags:    tags,
		EnqueuedAt:  s.now(),
		Preferences: prefs,
	}
	if err := s.queue.Enqueue(entry); err != nil {
		return domain.QueueEntry{}, fmt.Errorf("enqueue user %s: %w", userID, err)
	}
	s.log.Info("User enqueued", "user_id", userID, "hashtags", tags)
	return entry, nil
}

// Cancel removes the user's waiting entry; false means they were not waiting.
func (s *MatchmakingService) Cancel(userID string) (bool, error) {
	removed, err := s.queue.RemoveUser(userID)
	if err != nil {
		return false, fmt.Errorf("cancel wait for %s: %w", userID, err)
	}
	if removed {
		s.log.Info("User left the queue", "user_id", userID)
	}
	return removed, nil
}

// Status answers where the user stands in the queue right now.
func (s *MatchmakingService) Status(userID string) (QueueStatus, error) {
	position, err := s.queue.Position(userID)
	if err != nil {
		return QueueStatus{}, fmt.Errorf("queue position: %w", err)
	}
	size, err := s.queue.Size()
	if err != nil {
		return QueueStatus{}, fmt.Errorf("queue size: %w", err)
	}
	status := QueueStatus{
		Waiting:   position > 0,
		Position:  position,
		QueueSize: size,
	}
	if position > 0 {
		status.EstimatedWaitTime = (time.Duration(position) * s.waitPerPosition).Seconds()
	}
	return status, nil
}

func (s *MatchmakingService) MatchesFor(userID string) ([]domain.Match, error) {
	return s.matches.FindMatchesByUser(userID)
}

// MatchByID returns a match only to its participants.
func (s *MatchmakingService) MatchByID(matchID, userID string) (domain.Match, error) {
	match, err := s.matches.FindMatchByID(matchID)
	if err != nil {
		return domain.Match{}, err
	}
	if !match.HasParticipant(userID) {
		return domain.Match{}, errors.ErrNotParticipant
	}
	return match, nil
}

// RoomToken issues an opaque room access token for a matched participant.
func (s *MatchmakingService) RoomToken(matchID, userID string) (string, error) {
	match, err := s.MatchByID(matchID, userID)
	if err != nil {
		return "", err
	}
	if match.Status != domain.MatchMatched {
		return "", fmt.Errorf("%w: match is %s", errors.ErrInvalidTransition, match.Status)
	}
	token, err := s.provisioner.IssueRoomAccess(match.RoomID, userID)
	if err != nil {
		return "", fmt.Errorf("issue room access: %w", err)
	}
	return token, nil
}

// CancelMatch lets a participant end a pending or established match.
func (s *MatchmakingService) CancelMatch(matchID, userID string) (domain.Match, error) {
	if _, err := s.MatchByID(matchID, userID); err != nil {
		return domain.Match{}, err
	}
	return s.matches.UpdateStatus(matchID, domain.MatchCancelled)
}
