package tags

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"poolTags/internal/model"
)

const defaultPageSize = 1000

// Fetcher returns one page of pools created strictly after cursor, ordered
// ascending by creation timestamp.
type Fetcher func(ctx context.Context, cursor int64) ([]model.RawPool, error)

// RunConfig holds runtime settings for the tag runner.
type RunConfig struct {
	Network  string
	PageSize int
	// MaxPages aborts a run exceeding this many fetches, guarding against a
	// source that violates its cursor contract. Zero disables the guard.
	MaxPages int
}

// Runner drives the paged fetch-and-transform loop for one network.
type Runner struct {
	cfg         RunConfig
	fetch       Fetcher
	transformer *Transformer
	logger      *zap.Logger
}

// NewRunner builds a Runner with its dependencies.
func NewRunner(cfg RunConfig, fetch Fetcher, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	return &Runner{
		cfg:         cfg,
		fetch:       fetch,
		transformer: NewTransformer(cfg.Network, logger),
		logger:      logger,
	}
}

// Run executes the pagination loop: fetch a page, transform it, and advance
// the cursor past the last record until a short page signals exhaustion.
// Any fetch failure aborts the run with no partial result.
func (r *Runner) Run(ctx context.Context) ([]model.Tag, error) {
	if r.fetch == nil {
		return nil, fmt.Errorf("fetcher is nil")
	}

	var (
		cursor int64
		acc    []model.Tag
	)

	for page := 1; ; page++ {
		if r.cfg.MaxPages > 0 && page > r.cfg.MaxPages {
			return nil, fmt.Errorf("page limit %d exceeded at cursor %d", r.cfg.MaxPages, cursor)
		}

		pools, err := r.fetch(ctx, cursor)
		if err != nil {
			r.logger.Error("page fetch failed", zap.Int64("cursor", cursor), zap.Error(err))
			return nil, fmt.Errorf("fetch page at cursor %d: %w", cursor, err)
		}

		pageTags := r.transformer.BuildTags(pools)
		acc = append(acc, pageTags...)

		r.logger.Info("page complete",
			zap.Int64("cursor", cursor),
			zap.Int("pools", len(pools)),
			zap.Int("tags", len(pageTags)),
		)

		if len(pools) < r.cfg.PageSize {
			return acc, nil
		}

		next, err := pools[len(pools)-1].CreatedAt()
		if err != nil {
			r.logger.Error("cursor advance failed", zap.Int64("cursor", cursor), zap.Error(err))
			return nil, err
		}
		cursor = next
	}
}
