package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Pairs(ctx context.Context, in PairsInput) ([]PairRow, error)
	Reasons(ctx context.Context, in ReasonsInput) ([]ReasonRow, error)
}

// EventSink receives conversion attempts from the convert module
type EventSink interface {
	Record(ctx context.Context, events ...Event) error
}
