package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordbag/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the corpus, lexicon resources, and output location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cmd.Context(), cfg)
			out := cmd.OutOrStdout()
			color := isTerminal(out)
			rows := make([][]string, 0, len(results))
			for _, r := range results {
				status := colorize("OK", ansiGreen, color)
				if !r.Passed {
					status = colorize("FAIL", ansiRed, color)
				}
				rows = append(rows, []string{r.Name, status, r.Detail})
			}
			printRows(out, []string{"Check", "Status", "Detail"}, rows, nil)

			failed := preflight.Failed(results)
			if len(failed) > 0 {
				return fmt.Errorf("%d of %d checks failed", len(failed), len(results))
			}
			return nil
		},
	}
}
