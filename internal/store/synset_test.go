package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lexnetio/lexnet/internal/models"
	"github.com/lexnetio/lexnet/internal/store"
)

func TestSynsetRoundTrip(t *testing.T) {
	base, prefix := setupTestBase(t)
	ss := store.NewSynsetStore(base)
	ctx := context.Background()

	created := createTestSynset(t, ss, prefix, "waterfowl")

	got, err := ss.GetSynset(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetSynset: %v", err)
	}

	if got.ID != created.ID || got.PartOfSpeech != "n" {
		t.Errorf("GetSynset = %+v, want %+v", got, created)
	}
}

func TestSynsetNotFound(t *testing.T) {
	base, prefix := setupTestBase(t)
	ss := store.NewSynsetStore(base)

	_, err := ss.GetSynset(context.Background(), prefix+"nope")
	if !errors.Is(err, models.ErrSynsetNotFound) {
		t.Fatalf("GetSynset error = %v, want ErrSynsetNotFound", err)
	}
}

func TestSynsetDuplicate(t *testing.T) {
	base, prefix := setupTestBase(t)
	ss := store.NewSynsetStore(base)
	ctx := context.Background()

	createTestSynset(t, ss, prefix, "dup")

	_, err := ss.CreateSynset(ctx, models.CreateSynsetRequest{
		ID:           prefix + "dup",
		PartOfSpeech: "n",
	})
	if !errors.Is(err, models.ErrDuplicateKey) {
		t.Fatalf("CreateSynset error = %v, want ErrDuplicateKey", err)
	}
}

func TestBulkUpsertSynsets(t *testing.T) {
	base, prefix := setupTestBase(t)
	bs := store.NewBulkStore(base)
	ss := store.NewSynsetStore(base)
	ctx := context.Background()

	reqs := []models.CreateSynsetRequest{
		{ID: prefix + "a", PartOfSpeech: "n", Gloss: "first"},
		{ID: prefix + "b", PartOfSpeech: "v", Gloss: "second"},
	}

	n, err := bs.BulkUpsertSynsets(ctx, reqs)
	if err != nil {
		t.Fatalf("BulkUpsertSynsets: %v", err)
	}

	if n != 2 {
		t.Errorf("upserted = %d, want 2", n)
	}

	// Re-upsert with changed gloss overwrites.
	reqs[0].Gloss = "updated"
	if _, err := bs.BulkUpsertSynsets(ctx, reqs); err != nil {
		t.Fatalf("BulkUpsertSynsets (again): %v", err)
	}

	got, err := ss.GetSynset(ctx, prefix+"a")
	if err != nil {
		t.Fatalf("GetSynset: %v", err)
	}

	if got.Gloss != "updated" {
		t.Errorf("gloss = %q, want %q", got.Gloss, "updated")
	}
}
