package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"wordbag/internal/config"
	"wordbag/internal/pipeline"
	"wordbag/internal/preflight"
)

type buildFlags struct {
	corpusDir     string
	output        string
	format        string
	startYear     int
	endYear       int
	quarters      []int
	workers       int
	duplicates    string
	columnOrder   string
	metricsFile   string
	skipPreflight bool
	json          bool
}

type buildDocumentJSON struct {
	Period     string `json:"period"`
	Tokens     int    `json:"tokens"`
	Kept       int    `json:"kept"`
	Distinct   int    `json:"distinct"`
	NewTokens  int    `json:"new_tokens"`
	Vocabulary int    `json:"vocabulary"`
}

type buildJSON struct {
	RunID     string              `json:"run_id"`
	Output    string              `json:"output"`
	Format    string              `json:"format"`
	Rows      int                 `json:"rows"`
	Columns   int                 `json:"columns"`
	Bytes     int64               `json:"bytes"`
	SHA256    string              `json:"sha256"`
	ElapsedMS int64               `json:"elapsed_ms"`
	Documents []buildDocumentJSON `json:"documents"`
}

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the bag-of-words matrix from the configured corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg, err := applyBuildFlags(cmd, *base, flags)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if !flags.skipPreflight {
				if err := os.MkdirAll(filepath.Dir(cfg.Output.Path), 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
				if err := preflight.Error(preflight.RunAll(cmd.Context(), cfg)); err != nil {
					return err
				}
			}

			report, err := pipeline.Build(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			rows, cols := report.Matrix.Dims()
			if flags.json {
				payload := buildJSON{
					RunID:     report.RunID,
					Output:    report.Output.Path,
					Format:    string(report.Format),
					Rows:      rows,
					Columns:   cols,
					Bytes:     report.Output.Bytes,
					SHA256:    report.Output.SHA256,
					ElapsedMS: report.Elapsed.Milliseconds(),
					Documents: make([]buildDocumentJSON, 0, len(report.Documents)),
				}
				for _, doc := range report.Documents {
					payload.Documents = append(payload.Documents, buildDocumentJSON{
						Period:     doc.Period,
						Tokens:     doc.Stats.Tokens,
						Kept:       doc.Stats.Kept,
						Distinct:   doc.Stats.Distinct,
						NewTokens:  doc.NewTokens,
						Vocabulary: doc.Vocabulary,
					})
				}
				return writeJSON(cmd, payload)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Built %d periods x %d tokens (run %s)\n", rows, cols, report.RunID)
			fmt.Fprintf(out, "Wrote %s (%s, %d bytes)\n", report.Output.Path, report.Format, report.Output.Bytes)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.corpusDir, "corpus-dir", "", "Directory holding <period>.txt documents (overrides corpus.dir)")
	f.StringVarP(&flags.output, "output", "o", "", "Output path (overrides output.path)")
	f.StringVar(&flags.format, "format", "", "Output format: csv or sqlite")
	f.IntVar(&flags.startYear, "start-year", 0, "First year of the corpus")
	f.IntVar(&flags.endYear, "end-year", 0, "Last year of the corpus")
	f.IntSliceVar(&flags.quarters, "quarters", nil, "Quarters to include, e.g. 1,2,3,4")
	f.IntVarP(&flags.workers, "workers", "j", 0, "Documents normalized in parallel")
	f.StringVar(&flags.duplicates, "duplicates", "", "Duplicate period policy: error, overwrite, or sum")
	f.StringVar(&flags.columnOrder, "column-order", "", "Column order: first_seen or sorted")
	f.StringVar(&flags.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	f.BoolVar(&flags.skipPreflight, "skip-preflight", false, "Skip resource checks before building")
	f.BoolVar(&flags.json, "json", false, "Print the build report as JSON")
	return cmd
}

// applyBuildFlags overlays explicitly set flags on a copy of the loaded config.
func applyBuildFlags(cmd *cobra.Command, cfg config.Config, flags buildFlags) (*config.Config, error) {
	changed := cmd.Flags().Changed
	expand := func(dst *string, value, name string) error {
		expanded, err := config.ExpandPath(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("--%s: %w", name, err)
		}
		*dst = expanded
		return nil
	}

	if changed("corpus-dir") {
		if err := expand(&cfg.Corpus.Dir, flags.corpusDir, "corpus-dir"); err != nil {
			return nil, err
		}
	}
	if changed("output") {
		if err := expand(&cfg.Output.Path, flags.output, "output"); err != nil {
			return nil, err
		}
	}
	if changed("metrics-file") {
		if err := expand(&cfg.Metrics.Textfile, flags.metricsFile, "metrics-file"); err != nil {
			return nil, err
		}
	}
	if changed("format") {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(flags.format))
	}
	if changed("start-year") {
		cfg.Corpus.StartYear = flags.startYear
	}
	if changed("end-year") {
		cfg.Corpus.EndYear = flags.endYear
	}
	if changed("quarters") {
		cfg.Corpus.Quarters = append([]int(nil), flags.quarters...)
	}
	if changed("workers") {
		cfg.Normalize.Workers = flags.workers
	}
	if changed("duplicates") {
		cfg.Matrix.DuplicatePeriods = strings.ToLower(strings.TrimSpace(flags.duplicates))
	}
	if changed("column-order") {
		cfg.Matrix.ColumnOrder = strings.ToLower(strings.TrimSpace(flags.columnOrder))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
