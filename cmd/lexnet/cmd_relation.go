package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lexnetio/lexnet/client"
)

func newRelationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relation",
		Short: "Relation commands",
	}
	cmd.AddCommand(relationCreateCmd())
	cmd.AddCommand(relationListCmd())
	return cmd
}

func relationCreateCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "create <source> <target>",
		Short: "Create a relation between two synsets",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			relation, err := apiClient.Relations.Create(context.Background(), &client.CreateRelationRequest{
				Source: args[0],
				Target: args[1],
				Name:   name,
			})
			if err != nil {
				fatal("create relation", err)
			}
			output(relation, relation.Source+" -> "+relation.Target)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Relation name, e.g. hypernym (required)")
	cmd.MarkFlagRequired("name") //nolint:errcheck
	return cmd
}

func relationListCmd() *cobra.Command {
	var (
		source string
		target string
		kind   string
		limit  int
		offset int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List relations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			relations, hasMore, err := apiClient.Relations.List(context.Background(), &client.RelationListOptions{
				Source: source,
				Target: target,
				Kind:   kind,
				Limit:  limit,
				Offset: offset,
			})
			if err != nil {
				fatal("list relations", err)
			}

			if flagFmt == "table" {
				rows := make([][]string, len(relations))
				for i, r := range relations {
					rows[i] = []string{r.Source, r.Target, r.Name, r.Kind}
				}
				formatTable([]string{"SOURCE", "TARGET", "NAME", "KIND"}, rows)
				return
			}

			output(map[string]any{"relations": relations, "has_more": hasMore}, "")
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "Filter by source synset")
	cmd.Flags().StringVar(&target, "target", "", "Filter by target synset")
	cmd.Flags().StringVar(&kind, "kind", "", "Filter by kind: broader|narrower|other")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "Pagination offset")
	return cmd
}
