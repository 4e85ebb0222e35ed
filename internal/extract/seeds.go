// Package extract runs per-seed extraction jobs over the lexical graph and
// writes the results as CSV records.
//
// Jobs are independent per seed: each one is dispatched to a worker pool,
// failures are isolated to the seed that raised them, and the shared output
// writer is the only synchronized resource.
package extract

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadSeeds reads seed synset identifiers from r, one per line.
// Surrounding whitespace is trimmed and blank lines are skipped.
func ReadSeeds(r io.Reader) ([]string, error) {
	var seeds []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		seeds = append(seeds, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading seeds: %w", err)
	}

	return seeds, nil
}

// ReadSeedsFile reads seed synset identifiers from the named file.
func ReadSeedsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seeds file: %w", err)
	}
	defer f.Close()

	return ReadSeeds(f)
}
