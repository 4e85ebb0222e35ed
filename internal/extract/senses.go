package extract

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lexnetio/lexnet/internal/models"
)

// SenseSource looks up the sense lemmas of one synset in one language.
type SenseSource interface {
	Senses(ctx context.Context, synsetID, lang string) ([]models.Sense, error)
}

// Senses extracts "lemma:frequency" pairs per synset. Lemmas are compared
// case-insensitively with the first occurrence winning, and underscores
// are normalized to spaces. No graph traversal is involved.
type Senses struct {
	Source  SenseSource
	Lang    string
	Workers int
	Log     *logrus.Logger
}

// Run looks up every seed's senses and appends one CSV record per seed
// with a non-empty sense list. Per-seed failures are logged and counted
// without aborting the run.
func (s *Senses) Run(ctx context.Context, seeds []string, out io.Writer) (*Report, error) {
	if s.Lang == "" {
		return nil, fmt.Errorf("lang is required")
	}

	workers := s.Workers
	if workers < 1 {
		workers = defaultWorkers
	}

	s.Log.WithFields(logrus.Fields{
		"seeds":   len(seeds),
		"lang":    s.Lang,
		"workers": workers,
	}).Info("extracting senses")

	var (
		mu      sync.Mutex
		written atomic.Int64
		failed  atomic.Int64
	)

	w := csv.NewWriter(out)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, seed := range seeds {
		g.Go(func() error {
			senses, err := s.Source.Senses(ctx, seed, s.Lang)
			if err != nil {
				failed.Add(1)
				s.Log.WithError(err).WithField("synset", seed).Error("sense lookup failed")

				return nil
			}

			record := formatSenses(senses)
			if record == "" {
				return nil
			}

			s.Log.WithField("synset", seed).Info("extracted")

			mu.Lock()
			defer mu.Unlock()

			if err := w.Write([]string{seed, record}); err != nil {
				return fmt.Errorf("writing record for %q: %w", seed, err)
			}

			written.Add(1)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing output: %w", err)
	}

	report := &Report{
		Seeds:   len(seeds),
		Written: int(written.Load()),
		Failed:  int(failed.Load()),
	}

	s.Log.WithFields(logrus.Fields{
		"written": report.Written,
		"failed":  report.Failed,
	}).Info("senses extraction done")

	return report, nil
}

// formatSenses renders senses as "lemma:frequency,..." pairs. Underscores
// in lemmas become spaces. Lemmas are deduplicated case-insensitively
// (first value wins) and ordered case-insensitively.
func formatSenses(senses []models.Sense) string {
	type entry struct {
		lemma     string
		frequency int
	}

	byKey := make(map[string]entry, len(senses))
	keys := make([]string, 0, len(senses))

	for _, sense := range senses {
		lemma := strings.ReplaceAll(sense.Lemma, "_", " ")

		key := strings.ToLower(lemma)
		if _, ok := byKey[key]; ok {
			continue
		}

		byKey[key] = entry{lemma: lemma, frequency: sense.Frequency}
		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, key := range keys {
		e := byKey[key]
		pairs[i] = e.lemma + ":" + strconv.Itoa(e.frequency)
	}

	return strings.Join(pairs, ",")
}
