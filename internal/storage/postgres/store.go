package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"poolTags/internal/model"
)

// Store provides Postgres persistence for contract tags.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// PutTagBatch inserts or updates contract tags keyed by contract address.
func (s *Store) PutTagBatch(ctx context.Context, tags []model.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, tag := range tags {
		batch.Queue(`
			INSERT INTO contract_tags (
				contract_address, name_tag, project_name, website, note, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, now(), now())
			ON CONFLICT (contract_address)
			DO UPDATE SET
				name_tag = EXCLUDED.name_tag,
				project_name = EXCLUDED.project_name,
				website = EXCLUDED.website,
				note = EXCLUDED.note,
				updated_at = now()
		`,
			tag.ContractAddress,
			tag.NameTag,
			tag.ProjectName,
			tag.Website,
			tag.Note,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range tags {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
