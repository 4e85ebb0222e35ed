package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexnetio/lexnet/client"
)

// importBatchSize is the number of records sent per bulk request, matching
// the server-side bulk limit.
const importBatchSize = 1000

func newImportCmd() *cobra.Command {
	var (
		synsetsPath   string
		relationsPath string
		sensesPath    string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a lexicon from tab-separated files",
		Long: `Import synsets, relations, and senses from TSV files.

File formats (one record per line, tab-separated):
  synsets:   id  pos  gloss
  relations: source  target  name
  senses:    synset_id  lang  lemma  frequency

Synsets are imported before relations so foreign keys resolve.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if synsetsPath == "" && relationsPath == "" && sensesPath == "" {
				return fmt.Errorf("at least one of --synsets, --relations, --senses is required")
			}

			ctx := cmd.Context()

			if synsetsPath != "" {
				n, err := importSynsets(ctx, synsetsPath)
				if err != nil {
					return fmt.Errorf("importing synsets: %w", err)
				}
				fmt.Fprintf(os.Stderr, "Synsets: %d upserted\n", n)
			}

			if relationsPath != "" {
				n, err := importRelations(ctx, relationsPath)
				if err != nil {
					return fmt.Errorf("importing relations: %w", err)
				}
				fmt.Fprintf(os.Stderr, "Relations: %d upserted\n", n)
			}

			if sensesPath != "" {
				n, err := importSenses(ctx, sensesPath)
				if err != nil {
					return fmt.Errorf("importing senses: %w", err)
				}
				fmt.Fprintf(os.Stderr, "Senses: %d upserted\n", n)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&synsetsPath, "synsets", "", "Synsets TSV file")
	cmd.Flags().StringVar(&relationsPath, "relations", "", "Relations TSV file")
	cmd.Flags().StringVar(&sensesPath, "senses", "", "Senses TSV file")
	return cmd
}

// readTSV parses a tab-separated file line by line, skipping blank lines,
// and calls record for each one with its fields and line number.
func readTSV(path string, record func(fields []string, line int) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}

		if err := record(strings.Split(text, "\t"), line); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func importSynsets(ctx context.Context, path string) (int, error) {
	var (
		batch []client.CreateSynsetRequest
		total int
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := apiClient.Bulk.UpsertSynsets(ctx, batch)
		if err != nil {
			return err
		}
		total += n
		batch = batch[:0]
		return nil
	}

	err := readTSV(path, func(fields []string, line int) error {
		if len(fields) < 2 {
			return fmt.Errorf("line %d: expected at least 2 fields (id, pos)", line)
		}
		req := client.CreateSynsetRequest{ID: fields[0], PartOfSpeech: fields[1]}
		if len(fields) > 2 {
			req.Gloss = fields[2]
		}
		batch = append(batch, req)
		if len(batch) == importBatchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return total, err
	}

	return total, flush()
}

func importRelations(ctx context.Context, path string) (int, error) {
	var (
		batch []client.CreateRelationRequest
		total int
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := apiClient.Bulk.UpsertRelations(ctx, batch)
		if err != nil {
			return err
		}
		total += n
		batch = batch[:0]
		return nil
	}

	err := readTSV(path, func(fields []string, line int) error {
		if len(fields) < 3 {
			return fmt.Errorf("line %d: expected 3 fields (source, target, name)", line)
		}
		batch = append(batch, client.CreateRelationRequest{
			Source: fields[0],
			Target: fields[1],
			Name:   fields[2],
		})
		if len(batch) == importBatchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return total, err
	}

	return total, flush()
}

func importSenses(ctx context.Context, path string) (int, error) {
	var (
		batch []client.CreateSenseRequest
		total int
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := apiClient.Bulk.UpsertSenses(ctx, batch)
		if err != nil {
			return err
		}
		total += n
		batch = batch[:0]
		return nil
	}

	err := readTSV(path, func(fields []string, line int) error {
		if len(fields) < 4 {
			return fmt.Errorf("line %d: expected 4 fields (synset_id, lang, lemma, frequency)", line)
		}
		freq, err := strconv.Atoi(fields[3])
		if err != nil {
			return fmt.Errorf("line %d: invalid frequency %q", line, fields[3])
		}
		batch = append(batch, client.CreateSenseRequest{
			SynsetID:  fields[0],
			Lang:      fields[1],
			Lemma:     fields[2],
			Frequency: freq,
		})
		if len(batch) == importBatchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return total, err
	}

	return total, flush()
}
