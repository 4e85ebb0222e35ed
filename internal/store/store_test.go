package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lexnetio/lexnet/internal/dbpool"
	"github.com/lexnetio/lexnet/internal/models"
	"github.com/lexnetio/lexnet/internal/store"
)

// testEnv holds shared test infrastructure (single pool across all tests).
type testEnv struct {
	pool *dbpool.Pool
	log  *logrus.Logger
}

var sharedEnv *testEnv

func getTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if sharedEnv != nil {
		return sharedEnv
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	pool, err := dbpool.NewPool(ctx, dbURL)
	if err != nil {
		t.Fatalf("connecting to test DB: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	sharedEnv = &testEnv{
		pool: pool,
		log:  log,
	}

	return sharedEnv
}

// setupTestBase creates a Base and a unique ID prefix for this test's
// synsets, cleaned up (with cascading relations/senses) after the test.
func setupTestBase(t *testing.T) (store.Base, string) {
	t.Helper()

	env := getTestEnv(t)
	prefix := "test:" + uuid.New().String()[:8] + ":"

	t.Cleanup(func() {
		ctx := context.Background()
		if _, err := env.pool.Exec(ctx, "DELETE FROM synsets WHERE id LIKE $1", prefix+"%"); err != nil {
			t.Logf("cleaning up test synsets: %v", err)
		}
	})

	return store.Base{Pool: env.pool, Log: env.log}, prefix
}

// createTestSynset inserts a synset with the given suffix under the test prefix.
func createTestSynset(t *testing.T, s *store.SynsetStore, prefix, suffix string) *models.Synset {
	t.Helper()

	synset, err := s.CreateSynset(context.Background(), models.CreateSynsetRequest{
		ID:           prefix + suffix,
		PartOfSpeech: "n",
		Gloss:        "test synset " + suffix,
	})
	if err != nil {
		t.Fatalf("CreateSynset %s: %v", suffix, err)
	}

	return synset
}

// createTestRelation links two synsets under the test prefix.
func createTestRelation(t *testing.T, s *store.RelationStore, prefix, source, target, name string) {
	t.Helper()

	req := models.CreateRelationRequest{
		Source: prefix + source,
		Target: prefix + target,
		Name:   name,
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("validating relation %s -> %s: %v", source, target, err)
	}

	_, err := s.CreateRelation(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateRelation %s -> %s: %v", source, target, err)
	}
}
