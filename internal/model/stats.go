package model

import "time"

// Generation modes recorded in usage statistics.
const (
	ModePassword = "password"
	ModeKey      = "key"
)

// GenerationEvent records that a secret was generated. It never holds the secret itself.
type GenerationEvent struct {
	ID         int64
	Mode       string
	Length     int
	Categories int
	Score      int
	CreatedAt  time.Time
}

// ModeStats aggregates generation events for a single mode.
type ModeStats struct {
	Mode      string  `json:"mode"`
	Count     int64   `json:"count"`
	AvgLength float64 `json:"avg_length"`
	AvgScore  float64 `json:"avg_score"`
}

// StatsResponse represents the usage statistics returned to operators.
type StatsResponse struct {
	Since time.Time   `json:"since"`
	Total int64       `json:"total"`
	Modes []ModeStats `json:"modes"`
}
