package service

import (
	"context"
	"errors"
	"time"

	"github.com/gvpass/gvpass-go/internal/model"
)

// DefaultStatsWindow is used when no start time is given.
const DefaultStatsWindow = 24 * time.Hour

var ErrSinceInFuture = errors.New("since must not be in the future")

// StatsReader reads aggregated generation events.
type StatsReader interface {
	Summary(ctx context.Context, since time.Time) ([]model.ModeStats, error)
}

// StatsService handles usage statistics business logic.
type StatsService struct {
	repo StatsReader
	now  func() time.Time
}

// NewStatsService creates a new StatsService.
func NewStatsService(repo StatsReader) *StatsService {
	return &StatsService{repo: repo, now: time.Now}
}

// Summary returns per-mode statistics for events created since the given time,
// or within the last DefaultStatsWindow when since is nil.
func (s *StatsService) Summary(ctx context.Context, since *time.Time) (model.StatsResponse, error) {
	now := s.now().UTC()

	start := now.Add(-DefaultStatsWindow)
	if since != nil {
		if since.After(now) {
			return model.StatsResponse{}, ErrSinceInFuture
		}
		start = since.UTC()
	}

	modes, err := s.repo.Summary(ctx, start)
	if err != nil {
		return model.StatsResponse{}, err
	}
	if modes == nil {
		modes = []model.ModeStats{}
	}

	var total int64
	for _, m := range modes {
		total += m.Count
	}

	return model.StatsResponse{
		Since: start,
		Total: total,
		Modes: modes,
	}, nil
}
