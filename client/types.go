package client

import "time"

// Synset is a vertex in the lexical-semantic graph.
type Synset struct {
	ID           string    `json:"id"`
	PartOfSpeech string    `json:"pos"`
	Gloss        string    `json:"gloss,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Relation is a directed typed edge between two synsets.
type Relation struct {
	Source    string    `json:"source"`
	Target    string    `json:"target"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// Sense is a lexicalization of a synset in one language.
type Sense struct {
	SynsetID  string `json:"synset_id"`
	Lang      string `json:"lang"`
	Lemma     string `json:"lemma"`
	Frequency int    `json:"frequency"`
}

// Edge is a walker-shaped outgoing edge of a synset.
type Edge struct {
	Kind   string `json:"kind"`
	Target string `json:"target"`
}

// CreateSynsetRequest is the payload for creating a synset.
type CreateSynsetRequest struct {
	ID           string `json:"id"`
	PartOfSpeech string `json:"pos"`
	Gloss        string `json:"gloss,omitempty"`
}

// CreateRelationRequest is the payload for creating a relation.
// Kind may be left empty; the server derives it from Name.
type CreateRelationRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Name   string `json:"name"`
	Kind   string `json:"kind,omitempty"`
}

// CreateSenseRequest is the payload for loading a sense record.
type CreateSenseRequest struct {
	SynsetID  string `json:"synset_id"`
	Lang      string `json:"lang"`
	Lemma     string `json:"lemma"`
	Frequency int    `json:"frequency"`
}

// SynsetListOptions filters and paginates synset listings.
type SynsetListOptions struct {
	PartOfSpeech string
	Limit        int
	Offset       int
}

// RelationListOptions filters and paginates relation listings.
type RelationListOptions struct {
	Source string
	Target string
	Kind   string
	Limit  int
	Offset int
}

// EgoResult is the response of the ego-network endpoint: signed distances
// keyed by neighbour synset ID.
type EgoResult struct {
	Seed       string         `json:"seed"`
	Depth      int            `json:"depth"`
	Neighbours map[string]int `json:"neighbours"`
}

// HealthResponse is the liveness check payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Database      string  `json:"database"`
	Clients       int     `json:"websocket_clients"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
