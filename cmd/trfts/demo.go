package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"trfts/internal/engine"
)

func newDemoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [query]",
		Short: "Index a few Turkish titles and run a query against them",
		Long: `
demo indexes four short Turkish titles and looks up the query (default
"KiTap"). A small lexicon covering the demo words is consulted before the
configured engine.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := "KiTap"
			if len(args) == 1 {
				query = args[0]
			}
			and, _ := cmd.Flags().GetBool("and")

			an, release, err := a.buildAnalyzer(engine.DemoLexicon())
			if err != nil {
				return err
			}
			defer release()
			e := engine.NewFTSEngine(an)
			docs := engine.DemoDocuments()
			if err := e.BatchAdd(context.Background(), docs, 2); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range docs {
				title, _ := d.FetchField(engine.DemoField)
				fmt.Fprintf(out, "doc %d: %s\n", d.ID, title)
			}

			var qr engine.QueryResult
			if and {
				qr, err = e.QueryAnd(query, engine.DemoField)
			} else {
				qr, err = e.QueryOr(query, engine.DemoField)
			}
			fmt.Fprintf(out, "query %q -> terms [%s]\n", query, strings.Join(qr.Terms, " "))
			if errors.Is(err, engine.ErrNotFound) {
				fmt.Fprintln(out, "no match")
				return nil
			}
			if err != nil {
				return err
			}
			for _, d := range qr.Docs {
				title, _ := d.FetchField(engine.DemoField)
				fmt.Fprintf(out, "match doc %d: %s\n", d.ID, title)
			}
			return nil
		},
	}
	cmd.Flags().Bool("and", false, "Require every query term instead of any.")
	return cmd
}
