// Package domain holds DTOs for stats http and service contracts
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Windows are whole UTC days, both ends inclusive

// TimeRange defines a start and end day for queries
type TimeRange struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2026-10-01"`
	End   string `json:"end" validate:"required,datetime=2006-01-02" example:"2026-10-31"`
}

// PairsInput buckets conversions by source and target base
type PairsInput struct {
	Range TimeRange `json:"range"`
	// optional filters
	From int `json:"from,omitempty" validate:"omitempty,radix" example:"16"`
	To   int `json:"to,omitempty" validate:"omitempty,radix" example:"2"`
}

// PairRow is one (from, to) bucket
type PairRow struct {
	From        int   `json:"from" example:"16"`
	To          int   `json:"to" example:"2"`
	Conversions int64 `json:"conversions" example:"120"`
	Failures    int64 `json:"failures" example:"4"`
}

// ReasonsInput counts failures by reason
type ReasonsInput struct {
	Range TimeRange `json:"range"`
}

// ReasonRow is one failure reason bucket
type ReasonRow struct {
	Reason   string `json:"reason" example:"digit_out_of_range"`
	Failures int64  `json:"failures" example:"3"`
}

// Event is one conversion attempt on the usage stream
// Reason is empty when OK is true
type Event struct {
	TS     time.Time
	ID     uuid.UUID
	From   int
	To     int
	OK     bool
	Reason string
	Digits int
}
