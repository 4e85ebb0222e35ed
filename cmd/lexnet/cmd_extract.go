package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lexnetio/lexnet/internal/extract"
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Batch extraction jobs producing CSV output",
	}
	cmd.AddCommand(extractNeighboursCmd())
	cmd.AddCommand(extractSensesCmd())
	return cmd
}

// extractLogger builds a logger for extraction runs; progress goes to stderr
// so stdout stays clean for CSV output.
func extractLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if !verbose {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// openOutput returns the extraction output sink: the named file, or stdout
// when path is empty.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func extractNeighboursCmd() *cobra.Command {
	var (
		seedsPath string
		outPath   string
		depth     int
		workers   int
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "neighbours",
		Short: "Extract bounded ego networks for a list of seed synsets",
		Long: `Walk the taxonomic graph around each seed synset and write one CSV
record per seed: the seed ID and comma-joined "neighbour:distance" pairs,
positive distances in the broader direction and negative in the narrower one.
Seeds whose walk fails are skipped; seeds with no neighbours produce no record.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := extract.ReadSeedsFile(seedsPath)
			if err != nil {
				return err
			}

			out, closeOut, err := openOutput(outPath)
			if err != nil {
				return fmt.Errorf("opening output: %w", err)
			}
			defer closeOut()

			job := &extract.Neighbours{
				Graph:   extract.NewRemoteGraph(apiClient),
				Depth:   depth,
				Workers: workers,
				Log:     extractLogger(verbose),
			}

			report, err := job.Run(cmd.Context(), seeds, out)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Seeds: %d, written: %d, failed: %d\n",
				report.Seeds, report.Written, report.Failed)
			return nil
		},
	}

	cmd.Flags().StringVar(&seedsPath, "seeds", "", "File with one seed synset ID per line (required)")
	cmd.Flags().StringVar(&outPath, "output", "", "Output CSV file (default: stdout)")
	cmd.Flags().IntVar(&depth, "depth", 2, "Max walk depth")
	cmd.Flags().IntVar(&workers, "workers", 4, "Concurrent walks")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log per-seed progress")
	cmd.MarkFlagRequired("seeds") //nolint:errcheck
	return cmd
}

func extractSensesCmd() *cobra.Command {
	var (
		seedsPath string
		outPath   string
		lang      string
		workers   int
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "senses",
		Short: "Extract sense lemmas for a list of seed synsets",
		Long: `Look up the sense lemmas of each seed synset in one language and write
one CSV record per seed: the seed ID and comma-joined "lemma:frequency" pairs.
Lemmas are deduplicated case-insensitively (first occurrence wins) and
underscores are normalized to spaces.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := extract.ReadSeedsFile(seedsPath)
			if err != nil {
				return err
			}

			out, closeOut, err := openOutput(outPath)
			if err != nil {
				return fmt.Errorf("opening output: %w", err)
			}
			defer closeOut()

			job := &extract.Senses{
				Source:  extract.NewRemoteGraph(apiClient),
				Lang:    lang,
				Workers: workers,
				Log:     extractLogger(verbose),
			}

			report, err := job.Run(cmd.Context(), seeds, out)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Seeds: %d, written: %d, failed: %d\n",
				report.Seeds, report.Written, report.Failed)
			return nil
		},
	}

	cmd.Flags().StringVar(&seedsPath, "seeds", "", "File with one seed synset ID per line (required)")
	cmd.Flags().StringVar(&outPath, "output", "", "Output CSV file (default: stdout)")
	cmd.Flags().StringVar(&lang, "lang", "EN", "Language code for sense lookup")
	cmd.Flags().IntVar(&workers, "workers", 4, "Concurrent lookups")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log per-seed progress")
	cmd.MarkFlagRequired("seeds") //nolint:errcheck
	return cmd
}
