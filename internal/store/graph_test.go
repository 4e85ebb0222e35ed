package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lexnetio/lexnet/internal/models"
	"github.com/lexnetio/lexnet/internal/store"
)

func TestGraphEdgesKindFilter(t *testing.T) {
	base, prefix := setupTestBase(t)
	ss := store.NewSynsetStore(base)
	rs := store.NewRelationStore(base)
	gs := store.NewGraphStore(base)
	ctx := context.Background()

	createTestSynset(t, ss, prefix, "animal")
	createTestSynset(t, ss, prefix, "bird")
	createTestSynset(t, ss, prefix, "duck")
	createTestSynset(t, ss, prefix, "pond")

	createTestRelation(t, rs, prefix, "bird", "animal", "hypernym")
	createTestRelation(t, rs, prefix, "bird", "duck", "hyponym")
	createTestRelation(t, rs, prefix, "bird", "pond", "related")

	edges, err := gs.Edges(ctx, prefix+"bird", models.KindBroader, models.KindNarrower)
	if err != nil {
		t.Fatalf("Edges: %v", err)
	}

	if len(edges) != 2 {
		t.Fatalf("Edges = %v, want 2 edges (the 'related' one filtered out)", edges)
	}

	// ORDER BY kind, target: broader before narrower.
	if edges[0].Kind != models.KindBroader || edges[0].Target != prefix+"animal" {
		t.Errorf("edges[0] = %+v, want broader -> animal", edges[0])
	}

	if edges[1].Kind != models.KindNarrower || edges[1].Target != prefix+"duck" {
		t.Errorf("edges[1] = %+v, want narrower -> duck", edges[1])
	}
}

func TestGraphEgo(t *testing.T) {
	base, prefix := setupTestBase(t)
	ss := store.NewSynsetStore(base)
	rs := store.NewRelationStore(base)
	gs := store.NewGraphStore(base)
	ctx := context.Background()

	// bird -> animal (broader), bird -> duck -> mallard (narrower chain).
	for _, suffix := range []string{"animal", "bird", "duck", "mallard"} {
		createTestSynset(t, ss, prefix, suffix)
	}

	createTestRelation(t, rs, prefix, "bird", "animal", "hypernym")
	createTestRelation(t, rs, prefix, "bird", "duck", "hyponym")
	createTestRelation(t, rs, prefix, "duck", "mallard", "hyponym")

	got, err := gs.Ego(ctx, prefix+"bird", 2)
	if err != nil {
		t.Fatalf("Ego: %v", err)
	}

	want := map[string]int{
		prefix + "animal":  1,
		prefix + "duck":    -1,
		prefix + "mallard": -2,
	}

	if len(got) != len(want) {
		t.Errorf("Ego returned %d entries, want %d: %v", len(got), len(want), got)
	}

	for id, d := range want {
		if got[id] != d {
			t.Errorf("distance[%q] = %d, want %d", id, got[id], d)
		}
	}
}

func TestGraphEgoUnknownSeed(t *testing.T) {
	base, prefix := setupTestBase(t)
	gs := store.NewGraphStore(base)

	_, err := gs.Ego(context.Background(), prefix+"missing", 2)
	if !errors.Is(err, models.ErrSynsetNotFound) {
		t.Fatalf("Ego error = %v, want ErrSynsetNotFound", err)
	}
}
