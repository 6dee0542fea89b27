package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"trfts/internal/types"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Print the index terms of text, or of stdin when no text is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			field, _ := cmd.Flags().GetString("field")
			an, release, err := a.buildAnalyzer()
			if err != nil {
				return err
			}
			defer release()

			var r io.Reader = cmd.InOrStdin()
			if len(args) > 0 {
				r = strings.NewReader(strings.Join(args, " "))
			} else if r == os.Stdin {
				// the stream closes what it reads; keep the process stdin open
				r = io.NopCloser(r)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "term\tstart\tend\tposinc\ttype")
			return an.Walk(field, r, func(tok *types.Token) error {
				_, err := fmt.Fprintf(out, "%s\t%d\t%d\t%d\t%s\n",
					tok.Term, tok.Start, tok.End, tok.PositionIncrement, tok.Type)
				return err
			})
		},
	}
	cmd.Flags().String("field", "body", "Field name passed to the analyzer.")
	return cmd
}
