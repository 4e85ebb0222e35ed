package client

import (
	"context"
	"net/url"
	"strconv"
)

// SynsetService handles synset and sense operations.
type SynsetService struct {
	c *Client
}

// synsetListResponse wraps the paginated synset list response.
type synsetListResponse struct {
	Synsets []Synset `json:"synsets"`
	HasMore bool     `json:"has_more"`
}

// List returns synsets with optional filtering and pagination.
func (s *SynsetService) List(ctx context.Context, opts *SynsetListOptions) ([]Synset, bool, error) {
	params := url.Values{}
	if opts != nil {
		if opts.PartOfSpeech != "" {
			params.Set("pos", opts.PartOfSpeech)
		}
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Offset > 0 {
			params.Set("offset", strconv.Itoa(opts.Offset))
		}
	}
	var resp synsetListResponse
	if err := s.c.get(ctx, "/api/v1/synsets", params, &resp); err != nil {
		return nil, false, err
	}
	return resp.Synsets, resp.HasMore, nil
}

// Get returns a single synset by ID.
func (s *SynsetService) Get(ctx context.Context, id string) (*Synset, error) {
	var synset Synset
	if err := s.c.get(ctx, "/api/v1/synsets/"+url.PathEscape(id), nil, &synset); err != nil {
		return nil, err
	}
	return &synset, nil
}

// Create creates a new synset.
func (s *SynsetService) Create(ctx context.Context, req *CreateSynsetRequest) (*Synset, error) {
	var synset Synset
	if err := s.c.post(ctx, "/api/v1/synsets", req, &synset); err != nil {
		return nil, err
	}
	return &synset, nil
}

// Senses returns the sense lemmas of a synset, optionally restricted to one language.
func (s *SynsetService) Senses(ctx context.Context, id, lang string) ([]Sense, error) {
	params := url.Values{}
	if lang != "" {
		params.Set("lang", lang)
	}
	var resp struct {
		Senses []Sense `json:"senses"`
	}
	if err := s.c.get(ctx, "/api/v1/synsets/"+url.PathEscape(id)+"/senses", params, &resp); err != nil {
		return nil, err
	}
	return resp.Senses, nil
}

// CreateSense attaches a sense record to a synset.
func (s *SynsetService) CreateSense(ctx context.Context, id string, req *CreateSenseRequest) (*Sense, error) {
	var sense Sense
	if err := s.c.post(ctx, "/api/v1/synsets/"+url.PathEscape(id)+"/senses", req, &sense); err != nil {
		return nil, err
	}
	return &sense, nil
}
