package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"wordbag/internal/pipeline"
)

type normalizeJSON struct {
	Path             string         `json:"path"`
	Tokens           int            `json:"tokens"`
	DroppedNonAlpha  int            `json:"dropped_non_alpha"`
	DroppedStopwords int            `json:"dropped_stopwords"`
	Kept             int            `json:"kept"`
	Distinct         int            `json:"distinct"`
	Counts           map[string]int `json:"counts"`
}

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Normalize a single document and print its token counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := strings.TrimSpace(args[0])
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}
			text := string(data)
			if !utf8.ValidString(text) {
				text = strings.ToValidUTF8(text, "�")
			}

			normalizer, err := pipeline.NewNormalizer(cfg.Lexicon)
			if err != nil {
				return err
			}
			counts, stats := normalizer.NormalizeStats(text)

			if asJSON {
				return writeJSON(cmd, normalizeJSON{
					Path:             path,
					Tokens:           stats.Tokens,
					DroppedNonAlpha:  stats.DroppedNonAlpha,
					DroppedStopwords: stats.DroppedStopwords,
					Kept:             stats.Kept,
					Distinct:         stats.Distinct,
					Counts:           counts,
				})
			}

			entries := counts.Top(limit)
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{entry.Token, strconv.Itoa(entry.Count)})
			}
			out := cmd.OutOrStdout()
			printRows(out, []string{"Token", "Count"}, rows, []columnAlignment{alignLeft, alignRight})
			fmt.Fprintf(cmd.ErrOrStderr(), "%d tokens, %d kept, %d distinct (%d non-alphabetic, %d stopwords dropped)\n",
				stats.Tokens, stats.Kept, stats.Distinct, stats.DroppedNonAlpha, stats.DroppedStopwords)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the most frequent tokens (0 shows all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print counts and statistics as JSON")
	return cmd
}
