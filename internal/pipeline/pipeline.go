package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"wordbag/internal/corpus"
	"wordbag/internal/logging"
	"wordbag/internal/matrix"
	"wordbag/internal/metrics"
	"wordbag/internal/normalize"
)

// Options configures a Pipeline.
type Options struct {
	Workers     int
	Duplicates  matrix.DuplicatePolicy
	ColumnOrder matrix.ColumnOrder
	IndexLabel  string
	Logger      *slog.Logger
	Metrics     *metrics.Run
}

// Pipeline normalizes documents and aggregates them into a matrix.
type Pipeline struct {
	normalizer *normalize.Normalizer
	opts       Options
	logger     *slog.Logger
}

// DocumentReport describes one merged document.
type DocumentReport struct {
	Period  string
	Stats   normalize.Stats
	Elapsed time.Duration
	// NewTokens counts columns this document introduced.
	NewTokens int
	// Vocabulary is the column count after the merge.
	Vocabulary int
}

// Result is the outcome of a successful run.
type Result struct {
	RunID     string
	Matrix    *matrix.Matrix
	Documents []DocumentReport
	Elapsed   time.Duration
}

// New returns a Pipeline around n.
func New(n *normalize.Normalizer, opts Options) (*Pipeline, error) {
	if n == nil {
		return nil, errors.New("pipeline: normalizer is required")
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.IndexLabel == "" {
		opts.IndexLabel = matrix.DefaultIndexLabel
	}
	return &Pipeline{
		normalizer: n,
		opts:       opts,
		logger:     logging.NewComponentLogger(opts.Logger, "pipeline"),
	}, nil
}

// Run reads and aggregates the document of every period, in order.
func (p *Pipeline) Run(ctx context.Context, src corpus.Source, periods []corpus.Period) (*Result, error) {
	if src == nil {
		return nil, errors.New("pipeline: source is required")
	}
	load := func(ctx context.Context, i int) (corpus.Document, error) {
		return src.Read(ctx, periods[i])
	}
	return p.run(ctx, len(periods), load)
}

// RunDocuments aggregates already loaded documents in slice order.
func (p *Pipeline) RunDocuments(ctx context.Context, docs []corpus.Document) (*Result, error) {
	load := func(ctx context.Context, i int) (corpus.Document, error) {
		if err := ctx.Err(); err != nil {
			return corpus.Document{}, err
		}
		return docs[i], nil
	}
	return p.run(ctx, len(docs), load)
}

type loader func(ctx context.Context, i int) (corpus.Document, error)

type outcome struct {
	doc     corpus.Document
	counts  normalize.WordCount
	stats   normalize.Stats
	elapsed time.Duration
	err     error
}

func (p *Pipeline) run(ctx context.Context, n int, load loader) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, p.logger)

	agg := matrix.NewAggregator(
		matrix.WithDuplicatePolicy(p.opts.Duplicates),
		matrix.WithLogger(logger),
	)
	logger.Info("build started",
		logging.Int("documents", n),
		logging.Int("workers", p.opts.Workers),
		logging.String("duplicates", p.opts.Duplicates.String()),
	)

	reports := make([]DocumentReport, 0, n)
	seen := make(map[string]struct{}, n)
	merge := func(out outcome) error {
		key := out.doc.Key()
		before := agg.VocabularySize()
		if _, dup := seen[key]; dup {
			p.opts.Metrics.ObserveDuplicate()
		}
		if err := agg.Add(key, out.counts); err != nil {
			return fmt.Errorf("merge %s: %w", key, err)
		}
		seen[key] = struct{}{}
		after := agg.VocabularySize()
		p.opts.Metrics.ObserveDocument(out.stats, out.elapsed)
		reports = append(reports, DocumentReport{
			Period:     key,
			Stats:      out.stats,
			Elapsed:    out.elapsed,
			NewTokens:  after - before,
			Vocabulary: after,
		})
		logger.Debug("document merged",
			logging.String(logging.FieldPeriod, key),
			logging.Int("tokens", out.stats.Tokens),
			logging.Int("kept", out.stats.Kept),
			logging.Int("distinct", out.stats.Distinct),
			logging.Int("new_tokens", after-before),
			logging.Int("vocabulary", after),
		)
		return nil
	}

	if err := p.process(ctx, n, load, merge); err != nil {
		hint := "check logs for details"
		switch {
		case errors.Is(err, corpus.ErrResourceMissing):
			hint = "check corpus.dir, corpus.file_pattern, and the year range"
		case errors.Is(err, matrix.ErrDuplicatePeriod):
			hint = "set matrix.duplicate_periods to overwrite or sum to merge repeated periods"
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			hint = "run was interrupted; no output was written"
		}
		logging.ErrorWithContext(logger, "build failed", "build_failed",
			logging.String(logging.FieldErrorHint, hint),
			logging.Error(err),
		)
		return nil, err
	}

	m := matrix.Finalize(agg,
		matrix.WithColumnOrder(p.opts.ColumnOrder),
		matrix.WithIndexLabel(p.opts.IndexLabel),
	)
	rows, cols := m.Dims()
	p.opts.Metrics.SetShape(rows, cols)

	elapsed := time.Since(start)
	logger.Info("bag of words built",
		logging.Int("rows", rows),
		logging.Int("columns", cols),
		logging.Duration("elapsed", elapsed),
	)
	return &Result{RunID: runID, Matrix: m, Documents: reports, Elapsed: elapsed}, nil
}

// process normalizes documents on a bounded pool of workers and hands the
// outcomes to merge in index order. The first error cancels outstanding work.
func (p *Pipeline) process(ctx context.Context, n int, load loader, merge func(outcome) error) error {
	if n == 0 {
		return ctx.Err()
	}
	workers := min(p.opts.Workers, n)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// One buffered slot per document so workers never block on the merger.
	slots := make([]chan outcome, n)
	for i := range slots {
		slots[i] = make(chan outcome, 1)
	}
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				slots[i] <- p.normalizeOne(ctx, i, load)
			}
		}()
	}
	go func() {
		defer close(jobs)
		for i := 0; i < n; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	err := func() error {
		for i := 0; i < n; i++ {
			var out outcome
			select {
			case out = <-slots[i]:
			case <-ctx.Done():
				return ctx.Err()
			}
			if out.err != nil {
				return out.err
			}
			if err := merge(out); err != nil {
				return err
			}
		}
		return nil
	}()
	cancel()
	wg.Wait()
	return err
}

func (p *Pipeline) normalizeOne(ctx context.Context, i int, load loader) outcome {
	if err := ctx.Err(); err != nil {
		return outcome{err: err}
	}
	doc, err := load(ctx, i)
	if err != nil {
		return outcome{err: err}
	}
	started := time.Now()
	counts, stats := p.normalizer.NormalizeStats(doc.Text)
	return outcome{doc: doc, counts: counts, stats: stats, elapsed: time.Since(started)}
}
