package client

import (
	"context"
	"net/url"
	"strconv"
)

// RelationService handles relation operations.
type RelationService struct {
	c *Client
}

// relationListResponse wraps the paginated relation list response.
type relationListResponse struct {
	Relations []Relation `json:"relations"`
	HasMore   bool       `json:"has_more"`
}

// List returns relations with optional filtering and pagination.
func (s *RelationService) List(ctx context.Context, opts *RelationListOptions) ([]Relation, bool, error) {
	params := url.Values{}
	if opts != nil {
		if opts.Source != "" {
			params.Set("source", opts.Source)
		}
		if opts.Target != "" {
			params.Set("target", opts.Target)
		}
		if opts.Kind != "" {
			params.Set("kind", opts.Kind)
		}
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Offset > 0 {
			params.Set("offset", strconv.Itoa(opts.Offset))
		}
	}
	var resp relationListResponse
	if err := s.c.get(ctx, "/api/v1/relations", params, &resp); err != nil {
		return nil, false, err
	}
	return resp.Relations, resp.HasMore, nil
}

// Create creates a new relation.
func (s *RelationService) Create(ctx context.Context, req *CreateRelationRequest) (*Relation, error) {
	var relation Relation
	if err := s.c.post(ctx, "/api/v1/relations", req, &relation); err != nil {
		return nil, err
	}
	return &relation, nil
}
