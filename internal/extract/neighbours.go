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

	"github.com/lexnetio/lexnet/internal/egonet"
)

// defaultWorkers is the worker pool size used when none is configured.
const defaultWorkers = 4

// Report summarizes one extraction run.
type Report struct {
	Seeds   int `json:"seeds"`
	Written int `json:"written"`
	Failed  int `json:"failed"`
}

// Neighbours extracts the bounded ego network of each seed synset and
// writes one CSV record per seed with a non-empty neighbourhood:
// the seed identifier and comma-joined "neighbour:distance" pairs.
type Neighbours struct {
	Graph   egonet.Graph
	Depth   int
	Workers int
	Log     *logrus.Logger
}

// Run walks every seed and appends results to out. A failure on one seed
// is logged and counted but never aborts the remaining seeds; only a
// failure of the output sink itself fails the run.
func (n *Neighbours) Run(ctx context.Context, seeds []string, out io.Writer) (*Report, error) {
	if n.Depth < 1 {
		return nil, fmt.Errorf("depth must be positive, got %d", n.Depth)
	}

	workers := n.Workers
	if workers < 1 {
		workers = defaultWorkers
	}

	n.Log.WithFields(logrus.Fields{
		"seeds":   len(seeds),
		"depth":   n.Depth,
		"workers": workers,
	}).Info("extracting neighbours")

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
			neighbours, err := egonet.Walk(ctx, n.Graph, seed, n.Depth)
			if err != nil {
				failed.Add(1)
				n.Log.WithError(err).WithField("synset", seed).Error("walk failed")

				return nil // failure is isolated to this seed
			}

			n.Log.WithFields(logrus.Fields{
				"synset":     seed,
				"neighbours": len(neighbours),
			}).Info("processed")

			if len(neighbours) == 0 {
				return nil
			}

			mu.Lock()
			defer mu.Unlock()

			if err := w.Write([]string{seed, formatDistances(neighbours)}); err != nil {
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

	n.Log.WithFields(logrus.Fields{
		"written": report.Written,
		"failed":  report.Failed,
	}).Info("neighbours extraction done")

	return report, nil
}

// formatDistances renders a neighbourhood as "id:dist,id:dist,...".
// Pairs are sorted by identifier so output is reproducible.
func formatDistances(neighbours map[string]int) string {
	ids := make([]string, 0, len(neighbours))
	for id := range neighbours {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	pairs := make([]string, len(ids))
	for i, id := range ids {
		pairs[i] = id + ":" + strconv.Itoa(neighbours[id])
	}

	return strings.Join(pairs, ",")
}
