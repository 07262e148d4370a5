package analyses

import "context"

// Repo persists analysis records.
type Repo interface {
	Create(ctx context.Context, record Record) error
	GetByID(ctx context.Context, id string) (Record, error)
}
