package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lexnetio/lexnet/client"
)

func newSynsetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "synset",
		Short: "Synset commands",
	}
	cmd.AddCommand(synsetCreateCmd())
	cmd.AddCommand(synsetGetCmd())
	cmd.AddCommand(synsetListCmd())
	cmd.AddCommand(synsetSensesCmd())
	return cmd
}

func synsetCreateCmd() *cobra.Command {
	var (
		pos   string
		gloss string
	)
	cmd := &cobra.Command{
		Use:   "create <id>",
		Short: "Create a synset",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			synset, err := apiClient.Synsets.Create(context.Background(), &client.CreateSynsetRequest{
				ID:           args[0],
				PartOfSpeech: pos,
				Gloss:        gloss,
			})
			if err != nil {
				fatal("create synset", err)
			}
			output(synset, synset.ID)
		},
	}
	cmd.Flags().StringVar(&pos, "pos", "", "Part of speech (required)")
	cmd.Flags().StringVar(&gloss, "gloss", "", "Gloss text")
	cmd.MarkFlagRequired("pos") //nolint:errcheck
	return cmd
}

func synsetGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a synset by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			synset, err := apiClient.Synsets.Get(context.Background(), args[0])
			if err != nil {
				fatal("get synset", err)
			}
			output(synset, synset.ID)
		},
	}
}

func synsetListCmd() *cobra.Command {
	var (
		pos    string
		limit  int
		offset int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List synsets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			synsets, hasMore, err := apiClient.Synsets.List(context.Background(), &client.SynsetListOptions{
				PartOfSpeech: pos,
				Limit:        limit,
				Offset:       offset,
			})
			if err != nil {
				fatal("list synsets", err)
			}

			if flagFmt == "table" {
				rows := make([][]string, len(synsets))
				for i, s := range synsets {
					rows[i] = []string{s.ID, s.PartOfSpeech, s.Gloss}
				}
				formatTable([]string{"ID", "POS", "GLOSS"}, rows)
				return
			}

			output(map[string]any{"synsets": synsets, "has_more": hasMore}, "")
		},
	}
	cmd.Flags().StringVar(&pos, "pos", "", "Filter by part of speech")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "Pagination offset")
	return cmd
}

func synsetSensesCmd() *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "senses <id>",
		Short: "List sense lemmas of a synset",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			senses, err := apiClient.Synsets.Senses(context.Background(), args[0], lang)
			if err != nil {
				fatal("senses", err)
			}
			output(map[string]any{"senses": senses}, "")
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "Filter by language code")
	return cmd
}
