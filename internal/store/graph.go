package store

import (
	"context"
	"fmt"

	"github.com/lexnetio/lexnet/internal/egonet"
	"github.com/lexnetio/lexnet/internal/metrics"
	"github.com/lexnetio/lexnet/internal/models"
)

// GraphStore exposes the lexical graph to the ego-network walker and
// hosts server-side walks.
type GraphStore struct {
	Base
	synsets *SynsetStore
}

// NewGraphStore creates a GraphStore with the given shared base.
func NewGraphStore(base Base) *GraphStore {
	return &GraphStore{Base: base, synsets: NewSynsetStore(base)}
}

// Compile-time check: *GraphStore must satisfy egonet.Graph.
var _ egonet.Graph = (*GraphStore)(nil)

// Lookup resolves a synset by ID, failing with models.ErrSynsetNotFound
// for unknown identifiers.
func (s *GraphStore) Lookup(ctx context.Context, id string) (*models.Synset, error) {
	return s.synsets.GetSynset(ctx, id)
}

// Edges enumerates outgoing edges of a synset restricted to the given
// relation kinds. The ORDER BY fixes enumeration order so walks are
// deterministic for a fixed graph.
func (s *GraphStore) Edges(ctx context.Context, id string, kinds ...models.RelationKind) ([]egonet.Edge, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	kindStrs := make([]string, len(kinds))
	for i, k := range kinds {
		kindStrs[i] = string(k)
	}

	rows, err := s.Pool.Query(ctx, `
		SELECT kind, target FROM relations
		WHERE source = $1 AND kind = ANY($2)
		ORDER BY kind, target`,
		id, kindStrs,
	)
	if err != nil {
		return nil, fmt.Errorf("querying edges of %q: %w", id, err)
	}
	defer rows.Close()

	edges := make([]egonet.Edge, 0, 16)

	for rows.Next() {
		var kind, target string
		if err := rows.Scan(&kind, &target); err != nil {
			return nil, fmt.Errorf("scanning edge row: %w", err)
		}

		edges = append(edges, egonet.Edge{Kind: models.RelationKind(kind), Target: target})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating edges: %w", err)
	}

	return edges, nil
}

// Ego computes the bounded ego network of a synset by walking the graph.
func (s *GraphStore) Ego(ctx context.Context, id string, depth int) (map[string]int, error) {
	metrics.WalksTotal.Inc()

	neighbours, err := egonet.Walk(ctx, s, id, depth)
	if err != nil {
		metrics.WalkFailures.Inc()

		return nil, err
	}

	metrics.NeighboursFound.Add(float64(len(neighbours)))

	return neighbours, nil
}
