package storage

import (
	"context"

	"poolTags/internal/model"
)

// Sink receives finished contract tags.
type Sink interface {
	PutTagBatch(ctx context.Context, tags []model.Tag) error
}
