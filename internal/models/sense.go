package models

// Sense is a lexicalization of a synset in one language, with the
// corpus frequency reported by the source lexicon.
type Sense struct {
	SynsetID  string `json:"synset_id"`
	Lang      string `json:"lang"`
	Lemma     string `json:"lemma"`
	Frequency int    `json:"frequency"`
}

// CreateSenseRequest is the payload for loading a sense record.
type CreateSenseRequest struct {
	SynsetID  string `json:"synset_id"`
	Lang      string `json:"lang"`
	Lemma     string `json:"lemma"`
	Frequency int    `json:"frequency"`
}

// Validate checks that required fields are present and within limits.
func (r *CreateSenseRequest) Validate() error {
	if r.SynsetID == "" {
		return ErrMissingID
	}

	if len(r.SynsetID) > 255 {
		return ErrFieldTooLong("synset_id", 255)
	}

	if r.Lang == "" {
		return ErrMissingLang
	}

	if len(r.Lang) > 8 {
		return ErrFieldTooLong("lang", 8)
	}

	if r.Lemma == "" {
		return ErrMissingLemma
	}

	if len(r.Lemma) > 1000 {
		return ErrFieldTooLong("lemma", 1000)
	}

	if r.Frequency < 0 {
		return ErrNegativeFrequency
	}

	return nil
}
