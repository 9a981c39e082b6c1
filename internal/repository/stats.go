package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/gvpass/gvpass-go/internal/model"
)

const createEventsTable = `
	CREATE TABLE IF NOT EXISTS generation_events (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		mode       VARCHAR(16) NOT NULL,
		length     INT NOT NULL,
		categories TINYINT NOT NULL,
		score      TINYINT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_generation_events_created_at (created_at)
	)`

// StatsRepository handles persistence of generation events.
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository.
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Migrate creates the generation_events table if it does not exist.
func (r *StatsRepository) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createEventsTable)
	return err
}

// Record inserts a generation event and sets the generated ID on the event struct.
func (r *StatsRepository) Record(ctx context.Context, event *model.GenerationEvent) error {
	query := `INSERT INTO generation_events (mode, length, categories, score) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, event.Mode, event.Length, event.Categories, event.Score)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	event.ID = id
	return nil
}

// Summary aggregates generation events created at or after since, grouped by mode.
func (r *StatsRepository) Summary(ctx context.Context, since time.Time) ([]model.ModeStats, error) {
	query := `SELECT mode, COUNT(*), COALESCE(AVG(length), 0), COALESCE(AVG(score), 0)
		FROM generation_events WHERE created_at >= ? GROUP BY mode ORDER BY mode`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []model.ModeStats
	for rows.Next() {
		var s model.ModeStats
		if err := rows.Scan(&s.Mode, &s.Count, &s.AvgLength, &s.AvgScore); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}
