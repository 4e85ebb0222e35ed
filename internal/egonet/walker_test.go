package egonet_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lexnetio/lexnet/internal/egonet"
	"github.com/lexnetio/lexnet/internal/models"
)

// fakeGraph is an in-memory Graph with deterministic edge enumeration order.
type fakeGraph struct {
	edges map[string][]egonet.Edge

	// failEdgesOf makes Edges fail for one synset to simulate a
	// transient graph-access failure mid-walk.
	failEdgesOf string
}

func (g *fakeGraph) Lookup(_ context.Context, id string) (*models.Synset, error) {
	if _, ok := g.edges[id]; !ok {
		return nil, models.ErrSynsetNotFound
	}

	return &models.Synset{ID: id, PartOfSpeech: "n"}, nil
}

func (g *fakeGraph) Edges(_ context.Context, id string, kinds ...models.RelationKind) ([]egonet.Edge, error) {
	if id == g.failEdgesOf {
		return nil, fmt.Errorf("edge enumeration: %w", errors.New("connection reset"))
	}

	if _, ok := g.edges[id]; !ok {
		return nil, models.ErrSynsetNotFound
	}

	wanted := make(map[models.RelationKind]bool, len(kinds))
	for _, k := range kinds {
		wanted[k] = true
	}

	var out []egonet.Edge
	for _, e := range g.edges[id] {
		if wanted[e.Kind] {
			out = append(out, e)
		}
	}

	return out, nil
}

// graphOf builds a fake graph from an adjacency map. Targets are registered
// implicitly as leaves if not declared themselves.
func graphOf(adjacency map[string][]egonet.Edge) *fakeGraph {
	g := &fakeGraph{edges: make(map[string][]egonet.Edge)}
	for id, edges := range adjacency {
		g.edges[id] = edges
		for _, e := range edges {
			if _, ok := g.edges[e.Target]; !ok {
				g.edges[e.Target] = nil
			}
		}
	}
	return g
}

func broader(target string) egonet.Edge {
	return egonet.Edge{Kind: models.KindBroader, Target: target}
}

func narrower(target string) egonet.Edge {
	return egonet.Edge{Kind: models.KindNarrower, Target: target}
}

func wantDistances(t *testing.T, got map[string]int, want map[string]int) {
	t.Helper()

	if len(got) != len(want) {
		t.Errorf("result has %d entries, want %d: got %v", len(got), len(want), got)
	}

	for id, d := range want {
		if got[id] != d {
			t.Errorf("distance[%q] = %d, want %d", id, got[id], d)
		}
	}
}

func TestWalkSingleBroaderHop(t *testing.T) {
	g := graphOf(map[string][]egonet.Edge{
		"S": {broader("A")},
	})

	got, err := egonet.Walk(context.Background(), g, "S", 1)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	wantDistances(t, got, map[string]int{"A": 1})
}

func TestWalkNarrowerChain(t *testing.T) {
	g := graphOf(map[string][]egonet.Edge{
		"S": {narrower("B")},
		"B": {narrower("C")},
	})

	got, err := egonet.Walk(context.Background(), g, "S", 2)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	wantDistances(t, got, map[string]int{"B": -1, "C": -2})
}

func TestWalkCycleBackToSeed(t *testing.T) {
	g := graphOf(map[string][]egonet.Edge{
		"S": {broader("A")},
		"A": {narrower("S"), broader("D")},
	})

	got, err := egonet.Walk(context.Background(), g, "S", 2)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	// The cycle back to S is ignored: S is already visited and is never
	// reported as its own neighbour.
	wantDistances(t, got, map[string]int{"A": 1, "D": 2})
}

func TestWalkDepthBound(t *testing.T) {
	g := graphOf(map[string][]egonet.Edge{
		"S": {broader("A")},
		"A": {broader("E")},
	})

	got, err := egonet.Walk(context.Background(), g, "S", 1)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	wantDistances(t, got, map[string]int{"A": 1})
}

func TestWalkInvalidSeed(t *testing.T) {
	g := graphOf(map[string][]egonet.Edge{
		"S": {broader("A")},
	})

	_, err := egonet.Walk(context.Background(), g, "missing", 2)
	if !errors.Is(err, models.ErrSynsetNotFound) {
		t.Fatalf("Walk error = %v, want ErrSynsetNotFound", err)
	}
}

func TestWalkInvalidDepth(t *testing.T) {
	g := graphOf(map[string][]egonet.Edge{"S": nil})

	if _, err := egonet.Walk(context.Background(), g, "S", 0); err == nil {
		t.Fatal("Walk with depth 0 should fail")
	}
}

func TestWalkIsolatedSeed(t *testing.T) {
	g := graphOf(map[string][]egonet.Edge{"S": nil})

	for _, depth := range []int{1, 3, 10} {
		got, err := egonet.Walk(context.Background(), g, "S", depth)
		if err != nil {
			t.Fatalf("Walk depth %d: %v", depth, err)
		}

		if len(got) != 0 {
			t.Errorf("Walk depth %d = %v, want empty", depth, got)
		}
	}
}

func TestWalkSignFrozenAtFirstHop(t *testing.T) {
	// X is reached from the narrower side through a broader edge; the
	// sign is inherited from the parent, not re-derived from the edge.
	g := graphOf(map[string][]egonet.Edge{
		"S": {narrower("B")},
		"B": {broader("X")},
	})

	got, err := egonet.Walk(context.Background(), g, "S", 2)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	wantDistances(t, got, map[string]int{"B": -1, "X": -2})
}

func TestWalkFirstDiscoveryWins(t *testing.T) {
	// C is reachable at distance 2 through both directions; with A
	// enumerated before B it is attributed to the broader side.
	g := graphOf(map[string][]egonet.Edge{
		"S": {broader("A"), narrower("B")},
		"A": {broader("C")},
		"B": {narrower("C")},
	})

	got, err := egonet.Walk(context.Background(), g, "S", 2)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	wantDistances(t, got, map[string]int{"A": 1, "B": -1, "C": 2})
}

func TestWalkOtherEdgesInvisible(t *testing.T) {
	g := graphOf(map[string][]egonet.Edge{
		"S": {
			{Kind: models.KindOther, Target: "M"},
			broader("A"),
		},
	})

	got, err := egonet.Walk(context.Background(), g, "S", 3)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	wantDistances(t, got, map[string]int{"A": 1})
}

func TestWalkBoundsAndSeedExclusion(t *testing.T) {
	g := graphOf(map[string][]egonet.Edge{
		"S": {broader("A"), narrower("B")},
		"A": {broader("C")},
		"B": {narrower("D")},
		"C": {broader("E")},
	})

	const depth = 2

	got, err := egonet.Walk(context.Background(), g, "S", depth)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	if _, ok := got["S"]; ok {
		t.Error("seed must not appear in its own ego network")
	}

	for id, d := range got {
		if d == 0 {
			t.Errorf("distance[%q] = 0, zero is reserved for the seed", id)
		}
		if d > depth || d < -depth {
			t.Errorf("distance[%q] = %d, exceeds depth bound %d", id, d, depth)
		}
	}
}

func TestWalkMonotonicDepth(t *testing.T) {
	g := graphOf(map[string][]egonet.Edge{
		"S": {broader("A"), narrower("B")},
		"A": {broader("C"), narrower("S")},
		"B": {narrower("D")},
		"C": {broader("E")},
		"D": {narrower("F")},
	})

	prev := map[string]int{}

	for depth := 1; depth <= 4; depth++ {
		got, err := egonet.Walk(context.Background(), g, "S", depth)
		if err != nil {
			t.Fatalf("Walk depth %d: %v", depth, err)
		}

		for id, d := range prev {
			cur, ok := got[id]
			if !ok {
				t.Errorf("depth %d lost %q present at depth %d", depth, id, depth-1)
			}
			if cur != d {
				t.Errorf("depth %d distance[%q] = %d, was %d at depth %d", depth, id, cur, d, depth-1)
			}
		}

		prev = got
	}
}

func TestWalkDeterminism(t *testing.T) {
	g := graphOf(map[string][]egonet.Edge{
		"S": {broader("A"), narrower("B"), broader("C")},
		"A": {broader("D"), narrower("E")},
		"B": {narrower("D"), narrower("F")},
	})

	first, err := egonet.Walk(context.Background(), g, "S", 3)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	for i := 0; i < 10; i++ {
		again, err := egonet.Walk(context.Background(), g, "S", 3)
		if err != nil {
			t.Fatalf("Walk run %d: %v", i, err)
		}

		wantDistances(t, again, first)
	}
}

func TestWalkEdgeFailureAbortsWalk(t *testing.T) {
	g := graphOf(map[string][]egonet.Edge{
		"S": {broader("A")},
		"A": {broader("B")},
	})
	g.failEdgesOf = "A"

	got, err := egonet.Walk(context.Background(), g, "S", 3)
	if err == nil {
		t.Fatalf("Walk should surface the edge enumeration failure, got %v", got)
	}

	if got != nil {
		t.Errorf("failed walk must not return a partial result, got %v", got)
	}
}
