package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// GraphService handles graph traversal operations.
type GraphService struct {
	c *Client
}

// Ego returns the bounded ego network of a synset: signed distances keyed
// by neighbour ID, positive for the broader direction and negative for the
// narrower one.
func (s *GraphService) Ego(ctx context.Context, id string, depth int) (*EgoResult, error) {
	params := url.Values{}
	if depth > 0 {
		params.Set("depth", strconv.Itoa(depth))
	}
	var resp EgoResult
	if err := s.c.get(ctx, "/api/v1/graph/ego/"+url.PathEscape(id), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Edges returns the outgoing edges of a synset. With no kinds, only
// taxonomic (broader/narrower) edges are returned.
func (s *GraphService) Edges(ctx context.Context, id string, kinds ...string) ([]Edge, error) {
	params := url.Values{}
	if len(kinds) > 0 {
		params.Set("kinds", strings.Join(kinds, ","))
	}
	var resp struct {
		Edges []Edge `json:"edges"`
	}
	if err := s.c.get(ctx, "/api/v1/graph/edges/"+url.PathEscape(id), params, &resp); err != nil {
		return nil, err
	}
	return resp.Edges, nil
}
