package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrMissingID         = errors.New("id is required")
	ErrMissingPOS        = errors.New("pos is required")
	ErrMissingSource     = errors.New("source is required")
	ErrMissingTarget     = errors.New("target is required")
	ErrMissingRelation   = errors.New("relation name is required")
	ErrMissingLang       = errors.New("lang is required")
	ErrMissingLemma      = errors.New("lemma is required")
	ErrInvalidKind       = errors.New("invalid relation kind")
	ErrNegativeFrequency = errors.New("frequency must not be negative")
)

// ErrSynsetNotFound indicates a synset identifier does not resolve to a
// graph node. Walks over a missing seed fail with this error.
var ErrSynsetNotFound = errors.New("synset not found")

// ErrDuplicateKey indicates a unique constraint violation (maps to HTTP 409 Conflict).
var ErrDuplicateKey = errors.New("duplicate key")

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
