package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"wordbag/internal/config"
	"wordbag/internal/corpus"
	"wordbag/internal/export"
	"wordbag/internal/fileutil"
	"wordbag/internal/logging"
	"wordbag/internal/matrix"
	"wordbag/internal/metrics"
)

// BuildReport summarizes a completed build.
type BuildReport struct {
	*Result
	Output fileutil.Written
	Format export.Format
}

// FromConfig wires a Pipeline from configuration.
func FromConfig(cfg *config.Config, logger *slog.Logger, run *metrics.Run) (*Pipeline, error) {
	duplicates, err := matrix.ParseDuplicatePolicy(cfg.Matrix.DuplicatePeriods)
	if err != nil {
		return nil, err
	}
	order, err := matrix.ParseColumnOrder(cfg.Matrix.ColumnOrder)
	if err != nil {
		return nil, err
	}
	normalizer, err := NewNormalizer(cfg.Lexicon)
	if err != nil {
		return nil, err
	}
	return New(normalizer, Options{
		Workers:     cfg.Normalize.Workers,
		Duplicates:  duplicates,
		ColumnOrder: order,
		IndexLabel:  cfg.Matrix.IndexLabel,
		Logger:      logger,
		Metrics:     run,
	})
}

// Build runs the configured corpus through the pipeline and writes the
// matrix to cfg.Output.Path. Nothing is written unless every document was
// processed.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*BuildReport, error) {
	if cfg == nil {
		return nil, fmt.Errorf("build: config is required")
	}
	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	periods, err := corpus.Periods(cfg.Corpus.StartYear, cfg.Corpus.EndYear, cfg.Corpus.Quarters)
	if err != nil {
		return nil, err
	}

	run := metrics.NewRun()
	p, err := FromConfig(cfg, logger, run)
	if err != nil {
		return nil, err
	}

	src := corpus.DirSource{Dir: cfg.Corpus.Dir, Pattern: cfg.Corpus.FilePattern}
	result, err := p.Run(ctx, src, periods)
	if err != nil {
		return nil, err
	}

	written, err := export.Write(ctx, format, cfg.Output.Path, result.Matrix)
	if err != nil {
		return nil, fmt.Errorf("write %s: %w", cfg.Output.Path, err)
	}
	run.MarkSuccess(time.Now())

	runLogger := logging.WithContext(logging.WithRunID(ctx, result.RunID), p.logger)
	if err := run.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		logging.WarnWithContext(runLogger, "metrics textfile not written", "metrics_write_failed",
			logging.String(logging.FieldErrorHint, "check metrics.textfile directory permissions"),
			logging.String(logging.FieldImpact, "matrix was written; metrics are stale"),
			logging.Error(err),
		)
	}
	runLogger.Info("matrix written",
		logging.String("path", written.Path),
		logging.String("format", string(format)),
		logging.Int("bytes", int(written.Bytes)),
		logging.String("sha256", written.SHA256),
	)

	return &BuildReport{Result: result, Output: written, Format: format}, nil
}
