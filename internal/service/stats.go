package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/harukit/recipelog/backend/internal/stats"
)

// recipeEventSource supplies the viewer's cooking-event timestamps, already
// filtered to rows they own.
type recipeEventSource interface {
	CookingEvents(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
}

// StatsService computes usage statistics for a user's cooking log. The clock
// is injected so tests can pin the reference date.
type StatsService struct {
	events recipeEventSource
	now    func() time.Time
}

// NewStatsService creates a new StatsService instance
func NewStatsService(events recipeEventSource) *StatsService {
	return &StatsService{
		events: events,
		now:    time.Now,
	}
}

// UsageStats holds the summary plus the calendar layout for the reference
// month, ready for a frontend to render as three metrics and a grid.
type UsageStats struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	stats.UsageSummary
	Weeks [][7]int `json:"weeks"`
}

// Usage summarizes the user's cooking events for the month of ref. A zero
// ref means "today".
func (s *StatsService) Usage(ctx context.Context, userID uuid.UUID, ref time.Time) (*UsageStats, error) {
	if ref.IsZero() {
		ref = s.now()
	}

	times, err := s.events.CookingEvents(ctx, userID)
	if err != nil {
		return nil, err
	}

	events := make([]stats.CookingEvent, len(times))
	for i, t := range times {
		events[i] = stats.CookingEvent{OccurredAt: t}
	}

	return &UsageStats{
		Year:         ref.Year(),
		Month:        int(ref.Month()),
		UsageSummary: stats.Summarize(events, ref),
		Weeks:        stats.MonthGrid(ref),
	}, nil
}
