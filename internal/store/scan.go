package store

import (
	"github.com/lexnetio/lexnet/internal/models"
)

// synsetColumns lists the columns selected for synset queries.
const synsetColumns = `id, pos, gloss, created_at, updated_at`

// relationColumns lists the columns selected for relation queries.
const relationColumns = `source, target, name, kind, created_at`

// senseColumns lists the columns selected for sense queries.
const senseColumns = `synset_id, lang, lemma, frequency`

// scanSynset scans a single row into a models.Synset.
func scanSynset(scan func(dest ...any) error) (*models.Synset, error) {
	var s models.Synset

	err := scan(
		&s.ID,
		&s.PartOfSpeech,
		&s.Gloss,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// scanRelation scans a single row into a models.Relation.
func scanRelation(scan func(dest ...any) error) (*models.Relation, error) {
	var r models.Relation
	var kind string

	err := scan(
		&r.Source,
		&r.Target,
		&r.Name,
		&kind,
		&r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.Kind = models.RelationKind(kind)

	return &r, nil
}

// scanSense scans a single row into a models.Sense.
func scanSense(scan func(dest ...any) error) (*models.Sense, error) {
	var s models.Sense

	err := scan(
		&s.SynsetID,
		&s.Lang,
		&s.Lemma,
		&s.Frequency,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
