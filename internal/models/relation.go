package models

import "time"

// RelationKind classifies a directed typed edge by how it participates
// in ego-network walks. Only broader and narrower edges are walked;
// everything else is "other" and invisible to the walker.
type RelationKind string

// Relation kinds.
const (
	KindBroader  RelationKind = "broader"  // more general concept (hypernym)
	KindNarrower RelationKind = "narrower" // more specific concept (hyponym)
	KindOther    RelationKind = "other"
)

// Valid reports whether k is one of the known relation kinds.
func (k RelationKind) Valid() bool {
	switch k {
	case KindBroader, KindNarrower, KindOther:
		return true
	}

	return false
}

// ParseRelationKind maps a raw relation name onto a RelationKind.
// Hypernym-style names map to broader, hyponym-style names to narrower,
// everything else to other.
func ParseRelationKind(name string) RelationKind {
	switch name {
	case "hypernym", "instance_hypernym", "broader":
		return KindBroader
	case "hyponym", "instance_hyponym", "narrower":
		return KindNarrower
	default:
		return KindOther
	}
}

// Relation represents a directed typed edge between two synsets.
type Relation struct {
	Source    string       `json:"source"`
	Target    string       `json:"target"`
	Name      string       `json:"name"`
	Kind      RelationKind `json:"kind"`
	CreatedAt time.Time    `json:"created_at"`
}

// CreateRelationRequest is the payload for creating a new relation.
type CreateRelationRequest struct {
	Source string       `json:"source"`
	Target string       `json:"target"`
	Name   string       `json:"name"`
	Kind   RelationKind `json:"kind,omitempty"`
}

// Validate checks required fields and derives Kind from Name when absent.
func (r *CreateRelationRequest) Validate() error {
	if r.Source == "" {
		return ErrMissingSource
	}

	if len(r.Source) > 255 {
		return ErrFieldTooLong("source", 255)
	}

	if r.Target == "" {
		return ErrMissingTarget
	}

	if len(r.Target) > 255 {
		return ErrFieldTooLong("target", 255)
	}

	if r.Name == "" {
		return ErrMissingRelation
	}

	if len(r.Name) > 255 {
		return ErrFieldTooLong("name", 255)
	}

	if r.Kind == "" {
		r.Kind = ParseRelationKind(r.Name)
	}

	if !r.Kind.Valid() {
		return ErrInvalidKind
	}

	return nil
}
