package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Convert(ctx context.Context, in ConvertInput) (ConvertResult, error)
	ConvertAll(ctx context.Context, in AllInput) (AllResult, error)
	Batch(ctx context.Context, in BatchInput) (BatchResult, error)
	History(ctx context.Context, in HistoryInput) ([]HistoryEntry, error)
}
