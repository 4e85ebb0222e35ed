// Package models defines data types for the lexical-semantic graph.
package models

import "time"

// Synset represents a vertex in the lexical-semantic graph, identified
// by an opaque, externally supplied string token (e.g. "bn:00015267n").
type Synset struct {
	ID           string    `json:"id"`
	PartOfSpeech string    `json:"pos"`
	Gloss        string    `json:"gloss,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateSynsetRequest is the payload for creating a new synset.
type CreateSynsetRequest struct {
	ID           string `json:"id"`
	PartOfSpeech string `json:"pos"`
	Gloss        string `json:"gloss,omitempty"`
}

// Validate checks that required fields are present and within limits.
func (r *CreateSynsetRequest) Validate() error {
	if r.ID == "" {
		return ErrMissingID
	}

	if len(r.ID) > 255 {
		return ErrFieldTooLong("id", 255)
	}

	if r.PartOfSpeech == "" {
		return ErrMissingPOS
	}

	if len(r.PartOfSpeech) > 16 {
		return ErrFieldTooLong("pos", 16)
	}

	if len(r.Gloss) > 10000 {
		return ErrFieldTooLong("gloss", 10000)
	}

	return nil
}
