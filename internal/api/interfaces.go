package api

import (
	"context"
	"encoding/json"

	"github.com/lexnetio/lexnet/internal/egonet"
	"github.com/lexnetio/lexnet/internal/models"
)

// SynsetRepository defines synset operations used by SynsetHandler.
type SynsetRepository interface {
	ListSynsets(ctx context.Context, pos string, limit, offset int) ([]models.Synset, bool, error)
	GetSynset(ctx context.Context, id string) (*models.Synset, error)
	CreateSynset(ctx context.Context, req models.CreateSynsetRequest) (*models.Synset, error)
}

// RelationRepository defines relation operations used by RelationHandler.
type RelationRepository interface {
	ListRelations(ctx context.Context, source, target string, kind models.RelationKind, limit, offset int) ([]models.Relation, bool, error)
	CreateRelation(ctx context.Context, req models.CreateRelationRequest) (*models.Relation, error)
}

// SenseRepository defines sense operations used by SenseHandler.
type SenseRepository interface {
	Senses(ctx context.Context, synsetID, lang string) ([]models.Sense, error)
	CreateSense(ctx context.Context, req models.CreateSenseRequest) (*models.Sense, error)
}

// GraphRepository defines traversal operations used by GraphHandler.
type GraphRepository interface {
	Ego(ctx context.Context, id string, depth int) (map[string]int, error)
	Edges(ctx context.Context, id string, kinds ...models.RelationKind) ([]egonet.Edge, error)
}

// BulkRepository defines batch upsert operations used by BulkHandler.
type BulkRepository interface {
	BulkUpsertSynsets(ctx context.Context, reqs []models.CreateSynsetRequest) (int, error)
	BulkUpsertRelations(ctx context.Context, reqs []models.CreateRelationRequest) (int, error)
	BulkUpsertSenses(ctx context.Context, reqs []models.CreateSenseRequest) (int, error)
}

// Broadcaster publishes typed events to connected WebSocket clients.
type Broadcaster interface {
	BroadcastEvent(eventType string, data json.RawMessage)
}
