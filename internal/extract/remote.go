package extract

import (
	"context"
	"fmt"

	"github.com/lexnetio/lexnet/client"
	"github.com/lexnetio/lexnet/internal/egonet"
	"github.com/lexnetio/lexnet/internal/models"
)

// RemoteGraph adapts the HTTP client to the walker's Graph interface and
// to SenseSource, so extraction runs can target a running lexnetd instead
// of a local database.
type RemoteGraph struct {
	c *client.Client
}

// NewRemoteGraph wraps an API client for extraction use.
func NewRemoteGraph(c *client.Client) *RemoteGraph {
	return &RemoteGraph{c: c}
}

// Compile-time checks.
var (
	_ egonet.Graph = (*RemoteGraph)(nil)
	_ SenseSource  = (*RemoteGraph)(nil)
)

// Lookup resolves a synset via the API. A 404 maps onto
// models.ErrSynsetNotFound so walk semantics match the local store.
func (g *RemoteGraph) Lookup(ctx context.Context, id string) (*models.Synset, error) {
	synset, err := g.c.Synsets.Get(ctx, id)
	if err != nil {
		if client.IsNotFound(err) {
			return nil, models.ErrSynsetNotFound
		}

		return nil, fmt.Errorf("fetching synset %q: %w", id, err)
	}

	return &models.Synset{
		ID:           synset.ID,
		PartOfSpeech: synset.PartOfSpeech,
		Gloss:        synset.Gloss,
		CreatedAt:    synset.CreatedAt,
		UpdatedAt:    synset.UpdatedAt,
	}, nil
}

// Edges enumerates outgoing edges of a synset via the API.
func (g *RemoteGraph) Edges(ctx context.Context, id string, kinds ...models.RelationKind) ([]egonet.Edge, error) {
	kindStrs := make([]string, len(kinds))
	for i, k := range kinds {
		kindStrs[i] = string(k)
	}

	remote, err := g.c.Graph.Edges(ctx, id, kindStrs...)
	if err != nil {
		return nil, fmt.Errorf("fetching edges of %q: %w", id, err)
	}

	edges := make([]egonet.Edge, len(remote))
	for i, e := range remote {
		edges[i] = egonet.Edge{Kind: models.RelationKind(e.Kind), Target: e.Target}
	}

	return edges, nil
}

// Senses fetches the sense lemmas of a synset via the API.
func (g *RemoteGraph) Senses(ctx context.Context, synsetID, lang string) ([]models.Sense, error) {
	remote, err := g.c.Synsets.Senses(ctx, synsetID, lang)
	if err != nil {
		if client.IsNotFound(err) {
			return nil, models.ErrSynsetNotFound
		}

		return nil, fmt.Errorf("fetching senses of %q: %w", synsetID, err)
	}

	senses := make([]models.Sense, len(remote))
	for i, s := range remote {
		senses[i] = models.Sense{
			SynsetID:  s.SynsetID,
			Lang:      s.Lang,
			Lemma:     s.Lemma,
			Frequency: s.Frequency,
		}
	}

	return senses, nil
}
