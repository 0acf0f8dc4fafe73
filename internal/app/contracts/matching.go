package contracts

import (
	"context"
	"handicare-service/internal/app/models"
)

type MeetingMatchRepository interface {
	InsertMatches(ctx context.Context, matches []models.MeetingMatch) error
	ListMatches(ctx context.Context) ([]models.MeetingMatch, error)
}

// MatchNotifier publishes one event per confirmed match so downstream
// consumers (alerting, guardian notification) can react.
type MatchNotifier interface {
	NotifyMatched(ctx context.Context, match models.MeetingMatch) error
}

type MatchingUsecase interface {
	// PerformMatching matches every nurse against their seniors' guardian
	// requests for the given wire date (YYYYMMDD).
	PerformMatching(ctx context.Context, targetDate string) ([]models.MeetingMatch, error)
	ListMatches(ctx context.Context) ([]models.MeetingMatch, error)
}
