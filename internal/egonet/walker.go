// Package egonet extracts bounded ego networks from the lexical-semantic
// graph.
//
// A walk is a breadth-first traversal from one seed synset along broader
// (hypernym) and narrower (hyponym) relations, annotating every reachable
// synset with a signed distance: the magnitude is the hop count from the
// seed, the sign records whether the path left the seed through a broader
// (+) or narrower (-) edge. The sign is fixed by the first hop and
// inherited by everything discovered below it, regardless of the kinds of
// the edges traversed afterwards.
package egonet

import (
	"context"
	"fmt"

	"github.com/lexnetio/lexnet/internal/models"
)

// Edge is one outgoing typed edge as seen by the walker.
type Edge struct {
	Kind   models.RelationKind
	Target string
}

// Graph is the narrow graph-access capability the walker consumes.
// Implementations may be backed by the Postgres store or the REST client.
type Graph interface {
	// Lookup resolves a synset identifier, failing with
	// models.ErrSynsetNotFound when the identifier is unknown.
	Lookup(ctx context.Context, id string) (*models.Synset, error)

	// Edges enumerates outgoing edges of a synset restricted to the
	// given relation kinds. Enumeration order must be stable for a
	// fixed graph; the walker's tie-breaking depends on it.
	Edges(ctx context.Context, id string, kinds ...models.RelationKind) ([]Edge, error)
}

// Walk computes the ego network of seed up to depth hops.
//
// The returned map holds every reachable synset (the seed itself excluded)
// keyed by identifier, with its signed distance. First discovery wins: a
// synset reachable through both directions is attributed to whichever
// direction's path reaches it first in BFS order. An empty map means the
// seed has no broader/narrower edges within depth.
//
// Any failure from g aborts the whole walk; no partial result is returned.
func Walk(ctx context.Context, g Graph, seed string, depth int) (map[string]int, error) {
	if depth < 1 {
		return nil, fmt.Errorf("depth must be positive, got %d", depth)
	}

	if _, err := g.Lookup(ctx, seed); err != nil {
		return nil, fmt.Errorf("resolving seed %q: %w", seed, err)
	}

	// Signed distances double as the visited set. The seed's own entry
	// anchors the traversal at 0 and is removed before returning.
	dist := map[string]int{seed: 0}
	queue := []string{seed}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		step := dist[id]

		edges, err := g.Edges(ctx, id, models.KindBroader, models.KindNarrower)
		if err != nil {
			return nil, fmt.Errorf("enumerating edges of %q: %w", id, err)
		}

		for _, e := range edges {
			if _, seen := dist[e.Target]; seen {
				continue
			}

			if abs(step) >= depth {
				continue
			}

			// The direction is decided only on the first hop; after
			// that the parent's sign is inherited and only the
			// magnitude grows.
			var next int
			switch {
			case step == 0 && e.Kind == models.KindBroader:
				next = 1
			case step == 0:
				next = -1
			case step > 0:
				next = step + 1
			default:
				next = step - 1
			}

			dist[e.Target] = next
			queue = append(queue, e.Target)
		}
	}

	delete(dist, seed)

	return dist, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
