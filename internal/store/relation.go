package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lexnetio/lexnet/internal/models"
)

// RelationStore handles typed edge persistence and enumeration.
type RelationStore struct {
	Base
}

// NewRelationStore creates a RelationStore with the given shared base.
func NewRelationStore(base Base) *RelationStore {
	return &RelationStore{Base: base}
}

// CreateRelation inserts a new relation.
func (s *RelationStore) CreateRelation(ctx context.Context, req models.CreateRelationRequest) (*models.Relation, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, `
		INSERT INTO relations (source, target, name, kind)
		VALUES ($1, $2, $3, $4)
		RETURNING `+relationColumns,
		req.Source, req.Target, req.Name, string(req.Kind),
	)

	relation, err := scanRelation(row.Scan)
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

		return nil, fmt.Errorf("inserting relation: %w", err)
	}

	return relation, nil
}

// buildRelationListQuery constructs the filtered SELECT query and arguments for ListRelations.
func buildRelationListQuery(source, target string, kind models.RelationKind, limit, offset int) (query string, args []any) {
	where := ""
	filterArgs := make([]any, 0, 3)
	argIdx := 1

	appendFilter := func(column string, value any) {
		if where == "" {
			where = " WHERE"
		} else {
			where += " AND"
		}
		where += fmt.Sprintf(" %s = $%d", column, argIdx)
		filterArgs = append(filterArgs, value)
		argIdx++
	}

	if source != "" {
		appendFilter("source", source)
	}

	if target != "" {
		appendFilter("target", target)
	}

	if kind != "" {
		appendFilter("kind", string(kind))
	}

	query = "SELECT " + relationColumns + " FROM relations" + where
	query += " ORDER BY source, kind, target"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = make([]any, 0, len(filterArgs)+2)
	args = append(args, filterArgs...)
	args = append(args, limit+1, offset)

	return query, args
}

// ListRelations returns relations with optional source, target, and kind filters.
func (s *RelationStore) ListRelations(
	ctx context.Context,
	source, target string,
	kind models.RelationKind,
	limit, offset int,
) ([]models.Relation, bool, error) {
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

	query, args := buildRelationListQuery(source, target, kind, limit, offset)

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("querying relations: %w", err)
	}
	defer rows.Close()

	relations := make([]models.Relation, 0, limit+1)

	for rows.Next() {
		relation, err := scanRelation(rows.Scan)
		if err != nil {
			return nil, false, fmt.Errorf("scanning relation row: %w", err)
		}

		relations = append(relations, *relation)
	}

	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating relations: %w", err)
	}

	hasMore := len(relations) > limit
	if hasMore {
		relations = relations[:limit]
	}

	return relations, hasMore, nil
}
