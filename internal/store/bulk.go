package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexnetio/lexnet/internal/models"
)

// maxBulkBatchSize limits the number of rows per INSERT statement to avoid
// exceeding PostgreSQL's parameter limit (65535 params).
const maxBulkBatchSize = 1000

// BulkStore handles bulk upsert operations for graph imports.
type BulkStore struct {
	Base
}

// NewBulkStore creates a BulkStore with the given shared base.
func NewBulkStore(base Base) *BulkStore {
	return &BulkStore{Base: base}
}

// BulkUpsertSynsets inserts or updates multiple synsets in a single
// transaction using multi-row INSERT ... ON CONFLICT. Returns the number
// of upserted rows.
func (s *BulkStore) BulkUpsertSynsets(ctx context.Context, synsets []models.CreateSynsetRequest) (int, error) {
	if len(synsets) == 0 {
		return 0, nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("bulk upsert synsets: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	total := 0

	for i := 0; i < len(synsets); i += maxBulkBatchSize {
		end := min(i+maxBulkBatchSize, len(synsets))
		batch := synsets[i:end]

		valueParts := make([]string, 0, len(batch))
		args := make([]any, 0, len(batch)*3)

		for j, synset := range batch {
			base := j*3 + 1
			valueParts = append(valueParts, fmt.Sprintf("($%d, $%d, $%d)", base, base+1, base+2))
			args = append(args, synset.ID, synset.PartOfSpeech, synset.Gloss)
		}

		sql := `INSERT INTO synsets (id, pos, gloss)
			VALUES ` + strings.Join(valueParts, ", ") + `
			ON CONFLICT (id) DO UPDATE SET
				pos        = EXCLUDED.pos,
				gloss      = EXCLUDED.gloss,
				updated_at = now()`

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return 0, fmt.Errorf("bulk inserting synsets: %w", err)
		}

		total += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing synset bulk upsert: %w", err)
	}

	return total, nil
}

// BulkUpsertRelations inserts or updates multiple relations in a single transaction.
func (s *BulkStore) BulkUpsertRelations(ctx context.Context, relations []models.CreateRelationRequest) (int, error) {
	if len(relations) == 0 {
		return 0, nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("bulk upsert relations: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	total := 0

	for i := 0; i < len(relations); i += maxBulkBatchSize {
		end := min(i+maxBulkBatchSize, len(relations))
		batch := relations[i:end]

		valueParts := make([]string, 0, len(batch))
		args := make([]any, 0, len(batch)*4)

		for j, relation := range batch {
			base := j*4 + 1
			valueParts = append(valueParts, fmt.Sprintf("($%d, $%d, $%d, $%d)", base, base+1, base+2, base+3))
			args = append(args, relation.Source, relation.Target, relation.Name, string(relation.Kind))
		}

		sql := `INSERT INTO relations (source, target, name, kind)
			VALUES ` + strings.Join(valueParts, ", ") + `
			ON CONFLICT (source, target, name) DO UPDATE SET
				kind = EXCLUDED.kind`

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return 0, fmt.Errorf("bulk inserting relations: %w", err)
		}

		total += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing relation bulk upsert: %w", err)
	}

	return total, nil
}

// BulkUpsertSenses inserts or updates multiple senses in a single transaction.
func (s *BulkStore) BulkUpsertSenses(ctx context.Context, senses []models.CreateSenseRequest) (int, error) {
	if len(senses) == 0 {
		return 0, nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("bulk upsert senses: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	total := 0

	for i := 0; i < len(senses); i += maxBulkBatchSize {
		end := min(i+maxBulkBatchSize, len(senses))
		batch := senses[i:end]

		valueParts := make([]string, 0, len(batch))
		args := make([]any, 0, len(batch)*4)

		for j, sense := range batch {
			base := j*4 + 1
			valueParts = append(valueParts, fmt.Sprintf("($%d, $%d, $%d, $%d)", base, base+1, base+2, base+3))
			args = append(args, sense.SynsetID, sense.Lang, sense.Lemma, sense.Frequency)
		}

		sql := `INSERT INTO senses (synset_id, lang, lemma, frequency)
			VALUES ` + strings.Join(valueParts, ", ") + `
			ON CONFLICT (synset_id, lang, lemma) DO UPDATE SET
				frequency = EXCLUDED.frequency`

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return 0, fmt.Errorf("bulk inserting senses: %w", err)
		}

		total += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing sense bulk upsert: %w", err)
	}

	return total, nil
}
