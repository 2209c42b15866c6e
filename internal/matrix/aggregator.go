package matrix

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"wordbag/internal/logging"
)

var (
	// ErrDuplicatePeriod reports a period key that was already aggregated.
	ErrDuplicatePeriod = errors.New("duplicate period")
	// ErrInvalidCount reports a negative token count.
	ErrInvalidCount = errors.New("invalid token count")
)

// Aggregator accumulates word-count tables into a sparse matrix. It is safe
// for concurrent use; each Add is applied atomically.
type Aggregator struct {
	mu     sync.Mutex
	policy DuplicatePolicy
	logger *slog.Logger

	rows     []string
	rowIndex map[string]int
	columns  []string
	// cells maps token -> row ordinal -> count. Zero counts are never stored.
	cells map[string]map[int]int
}

// AggregatorOption customizes an Aggregator.
type AggregatorOption func(*Aggregator)

// WithDuplicatePolicy sets the duplicate period policy.
func WithDuplicatePolicy(policy DuplicatePolicy) AggregatorOption {
	return func(a *Aggregator) {
		a.policy = policy
	}
}

// WithLogger sets the logger used to report duplicate periods.
func WithLogger(logger *slog.Logger) AggregatorOption {
	return func(a *Aggregator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAggregator returns an empty Aggregator.
func NewAggregator(opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		policy:   DuplicateError,
		logger:   logging.NewNop(),
		rowIndex: make(map[string]int),
		cells:    make(map[string]map[int]int),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Add outer-joins the counts of one document into the matrix. Tokens already
// known stay as columns; new tokens become new columns. On error the matrix
// is left unchanged.
func (a *Aggregator) Add(period string, counts map[string]int) error {
	tokens := make([]string, 0, len(counts))
	for token, count := range counts {
		if count < 0 {
			return fmt.Errorf("%w: %s has %d occurrences of %q", ErrInvalidCount, period, count, token)
		}
		if count == 0 {
			continue
		}
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	a.mu.Lock()
	defer a.mu.Unlock()

	row, exists := a.rowIndex[period]
	if exists {
		impact := "rows for this period are combined into one"
		if a.policy == DuplicateError {
			impact = "run aborted"
		}
		logging.WarnWithContext(a.logger, "duplicate period", "duplicate_period",
			logging.String(logging.FieldPeriod, period),
			logging.String("policy", a.policy.String()),
			logging.String(logging.FieldErrorHint, "check the corpus for two documents with the same period key"),
			logging.String(logging.FieldImpact, impact),
		)
		if a.policy == DuplicateError {
			return fmt.Errorf("%w: %s", ErrDuplicatePeriod, period)
		}
		if a.policy == DuplicateOverwrite {
			for _, column := range a.cells {
				delete(column, row)
			}
		}
	} else {
		row = len(a.rows)
		a.rows = append(a.rows, period)
		a.rowIndex[period] = row
	}

	for _, token := range tokens {
		column, known := a.cells[token]
		if !known {
			column = make(map[int]int)
			a.cells[token] = column
			a.columns = append(a.columns, token)
		}
		column[row] += counts[token]
	}
	return nil
}

// VocabularySize returns the number of distinct tokens seen so far.
func (a *Aggregator) VocabularySize() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.columns)
}

// Len returns the number of rows.
func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.rows)
}

// Rows returns the period keys in aggregation order.
func (a *Aggregator) Rows() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.rows...)
}

// Columns returns the vocabulary in order of first appearance.
func (a *Aggregator) Columns() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.columns...)
}

// count returns the stored count, or zero when absent.
func (a *Aggregator) count(period, token string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	row, ok := a.rowIndex[period]
	if !ok {
		return 0
	}
	return a.cells[token][row]
}
