package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Graph traversal commands",
	}
	cmd.AddCommand(graphEgoCmd())
	cmd.AddCommand(graphEdgesCmd())
	return cmd
}

func graphEgoCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "ego <id>",
		Short: "Compute the bounded ego network of a synset",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result, err := apiClient.Graph.Ego(context.Background(), args[0], depth)
			if err != nil {
				fatal("ego", err)
			}
			output(result, "")
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 2, "Max walk depth")
	return cmd
}

func graphEdgesCmd() *cobra.Command {
	var kinds []string
	cmd := &cobra.Command{
		Use:   "edges <id>",
		Short: "List outgoing edges of a synset",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			edges, err := apiClient.Graph.Edges(context.Background(), args[0], kinds...)
			if err != nil {
				fatal("edges", err)
			}
			output(map[string]any{"edges": edges}, "")
		},
	}
	cmd.Flags().StringSliceVar(&kinds, "kinds", nil, "Relation kinds to include (default: broader,narrower)")
	return cmd
}
