package client

import "context"

// BulkService handles batch upsert operations.
type BulkService struct {
	c *Client
}

// bulkResponse wraps the upsert count returned by bulk endpoints.
type bulkResponse struct {
	Upserted int `json:"upserted"`
}

// UpsertSynsets inserts or updates synsets in one request (max 1000 items).
func (s *BulkService) UpsertSynsets(ctx context.Context, reqs []CreateSynsetRequest) (int, error) {
	var resp bulkResponse
	if err := s.c.post(ctx, "/api/v1/bulk/synsets", reqs, &resp); err != nil {
		return 0, err
	}
	return resp.Upserted, nil
}

// UpsertRelations inserts or updates relations in one request (max 1000 items).
func (s *BulkService) UpsertRelations(ctx context.Context, reqs []CreateRelationRequest) (int, error) {
	var resp bulkResponse
	if err := s.c.post(ctx, "/api/v1/bulk/relations", reqs, &resp); err != nil {
		return 0, err
	}
	return resp.Upserted, nil
}

// UpsertSenses inserts or updates sense records in one request (max 1000 items).
func (s *BulkService) UpsertSenses(ctx context.Context, reqs []CreateSenseRequest) (int, error) {
	var resp bulkResponse
	if err := s.c.post(ctx, "/api/v1/bulk/senses", reqs, &resp); err != nil {
		return 0, err
	}
	return resp.Upserted, nil
}
