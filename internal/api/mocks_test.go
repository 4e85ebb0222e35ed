package api_test

import (
	"context"

	"github.com/lexnetio/lexnet/internal/egonet"
	"github.com/lexnetio/lexnet/internal/models"
)

// mockSynsetRepo implements api.SynsetRepository with function fields.
type mockSynsetRepo struct {
	listFn   func(ctx context.Context, pos string, limit, offset int) ([]models.Synset, bool, error)
	getFn    func(ctx context.Context, id string) (*models.Synset, error)
	createFn func(ctx context.Context, req models.CreateSynsetRequest) (*models.Synset, error)
}

func (m *mockSynsetRepo) ListSynsets(ctx context.Context, pos string, limit, offset int) ([]models.Synset, bool, error) {
	return m.listFn(ctx, pos, limit, offset)
}

func (m *mockSynsetRepo) GetSynset(ctx context.Context, id string) (*models.Synset, error) {
	return m.getFn(ctx, id)
}

func (m *mockSynsetRepo) CreateSynset(ctx context.Context, req models.CreateSynsetRequest) (*models.Synset, error) {
	return m.createFn(ctx, req)
}

// mockRelationRepo implements api.RelationRepository with function fields.
type mockRelationRepo struct {
	listFn   func(ctx context.Context, source, target string, kind models.RelationKind, limit, offset int) ([]models.Relation, bool, error)
	createFn func(ctx context.Context, req models.CreateRelationRequest) (*models.Relation, error)
}

func (m *mockRelationRepo) ListRelations(ctx context.Context, source, target string, kind models.RelationKind, limit, offset int) ([]models.Relation, bool, error) {
	return m.listFn(ctx, source, target, kind, limit, offset)
}

func (m *mockRelationRepo) CreateRelation(ctx context.Context, req models.CreateRelationRequest) (*models.Relation, error) {
	return m.createFn(ctx, req)
}

// mockSenseRepo implements api.SenseRepository with function fields.
type mockSenseRepo struct {
	sensesFn func(ctx context.Context, synsetID, lang string) ([]models.Sense, error)
	createFn func(ctx context.Context, req models.CreateSenseRequest) (*models.Sense, error)
}

func (m *mockSenseRepo) Senses(ctx context.Context, synsetID, lang string) ([]models.Sense, error) {
	return m.sensesFn(ctx, synsetID, lang)
}

func (m *mockSenseRepo) CreateSense(ctx context.Context, req models.CreateSenseRequest) (*models.Sense, error) {
	return m.createFn(ctx, req)
}

// mockGraphRepo implements api.GraphRepository with function fields.
type mockGraphRepo struct {
	egoFn   func(ctx context.Context, id string, depth int) (map[string]int, error)
	edgesFn func(ctx context.Context, id string, kinds ...models.RelationKind) ([]egonet.Edge, error)
}

func (m *mockGraphRepo) Ego(ctx context.Context, id string, depth int) (map[string]int, error) {
	return m.egoFn(ctx, id, depth)
}

func (m *mockGraphRepo) Edges(ctx context.Context, id string, kinds ...models.RelationKind) ([]egonet.Edge, error) {
	return m.edgesFn(ctx, id, kinds...)
}

// mockBulkRepo implements api.BulkRepository with function fields.
type mockBulkRepo struct {
	synsetsFn   func(ctx context.Context, reqs []models.CreateSynsetRequest) (int, error)
	relationsFn func(ctx context.Context, reqs []models.CreateRelationRequest) (int, error)
	sensesFn    func(ctx context.Context, reqs []models.CreateSenseRequest) (int, error)
}

func (m *mockBulkRepo) BulkUpsertSynsets(ctx context.Context, reqs []models.CreateSynsetRequest) (int, error) {
	return m.synsetsFn(ctx, reqs)
}

func (m *mockBulkRepo) BulkUpsertRelations(ctx context.Context, reqs []models.CreateRelationRequest) (int, error) {
	return m.relationsFn(ctx, reqs)
}

func (m *mockBulkRepo) BulkUpsertSenses(ctx context.Context, reqs []models.CreateSenseRequest) (int, error) {
	return m.sensesFn(ctx, reqs)
}
