package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lexnetio/lexnet/internal/models"
)

// SynsetStore handles synset persistence and lookup.
type SynsetStore struct {
	Base
}

// NewSynsetStore creates a SynsetStore with the given shared base.
func NewSynsetStore(base Base) *SynsetStore {
	return &SynsetStore{Base: base}
}

// GetSynset returns a synset by ID, or models.ErrSynsetNotFound.
func (s *SynsetStore) GetSynset(ctx context.Context, id string) (*models.Synset, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, `SELECT `+synsetColumns+` FROM synsets WHERE id = $1`, id)

	synset, err := scanSynset(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrSynsetNotFound
		}

		return nil, fmt.Errorf("scanning synset: %w", err)
	}

	return synset, nil
}

// CreateSynset inserts a new synset.
func (s *SynsetStore) CreateSynset(ctx context.Context, req models.CreateSynsetRequest) (*models.Synset, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, `
		INSERT INTO synsets (id, pos, gloss)
		VALUES ($1, $2, $3)
		RETURNING `+synsetColumns,
		req.ID, req.PartOfSpeech, req.Gloss,
	)

	synset, err := scanSynset(row.Scan)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("inserting synset: %w", err)
	}

	return synset, nil
}

// ListSynsets returns synsets with an optional part-of-speech filter.
// The boolean result reports whether more rows exist beyond the page.
func (s *SynsetStore) ListSynsets(ctx context.Context, pos string, limit, offset int) ([]models.Synset, bool, error) {
	if limit <= 0 {
		limit = 50
	}

	if limit > maxListLimit {
		limit = maxListLimit
	}

	if offset < 0 {
		offset = 0
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + synsetColumns + ` FROM synsets`
	args := make([]any, 0, 3)
	argIdx := 1

	if pos != "" {
		query += fmt.Sprintf(" WHERE pos = $%d", argIdx)
		args = append(args, pos)
		argIdx++
	}

	query += " ORDER BY id"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit+1, offset)

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("querying synsets: %w", err)
	}
	defer rows.Close()

	synsets := make([]models.Synset, 0, limit+1)

	for rows.Next() {
		synset, err := scanSynset(rows.Scan)
		if err != nil {
			return nil, false, fmt.Errorf("scanning synset row: %w", err)
		}

		synsets = append(synsets, *synset)
	}

	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating synsets: %w", err)
	}

	hasMore := len(synsets) > limit
	if hasMore {
		synsets = synsets[:limit]
	}

	return synsets, hasMore, nil
}
