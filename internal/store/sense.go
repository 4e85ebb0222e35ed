package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lexnetio/lexnet/internal/models"
)

// SenseStore handles sense lemma persistence and lookup.
type SenseStore struct {
	Base
}

// NewSenseStore creates a SenseStore with the given shared base.
func NewSenseStore(base Base) *SenseStore {
	return &SenseStore{Base: base}
}

// CreateSense inserts a new sense record.
func (s *SenseStore) CreateSense(ctx context.Context, req models.CreateSenseRequest) (*models.Sense, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, `
		INSERT INTO senses (synset_id, lang, lemma, frequency)
		VALUES ($1, $2, $3, $4)
		RETURNING `+senseColumns,
		req.SynsetID, req.Lang, req.Lemma, req.Frequency,
	)

	sense, err := scanSense(row.Scan)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, models.ErrDuplicateKey
			case "23503":
				return nil, models.ErrSynsetNotFound
			}
		}

		return nil, fmt.Errorf("inserting sense: %w", err)
	}

	return sense, nil
}

// Senses returns the sense lemmas of a synset. An empty lang returns
// senses in all languages.
func (s *SenseStore) Senses(ctx context.Context, synsetID, lang string) ([]models.Sense, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + senseColumns + ` FROM senses WHERE synset_id = $1`
	args := []any{synsetID}

	if lang != "" {
		query += ` AND lang = $2`
		args = append(args, lang)
	}

	query += ` ORDER BY lemma`

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying senses: %w", err)
	}
	defer rows.Close()

	senses := make([]models.Sense, 0, 8)

	for rows.Next() {
		sense, err := scanSense(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning sense row: %w", err)
		}

		senses = append(senses, *sense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating senses: %w", err)
	}

	return senses, nil
}
