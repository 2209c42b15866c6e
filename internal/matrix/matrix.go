package matrix

import (
	"fmt"
	"sort"
)

// DefaultIndexLabel names the period column of an exported matrix.
const DefaultIndexLabel = "quarter_statement"

// Matrix is the dense, immutable document-term matrix. Rows are periods and
// columns are tokens; every cell holds a count, zero where the token never
// occurred in that period.
type Matrix struct {
	label    string
	rows     []string
	columns  []string
	rowIndex map[string]int
	colIndex map[string]int
	values   [][]int
}

// FinalizeOption customizes Finalize.
type FinalizeOption func(*finalizeOptions)

type finalizeOptions struct {
	order ColumnOrder
	label string
}

// WithColumnOrder sets the column ordering.
func WithColumnOrder(order ColumnOrder) FinalizeOption {
	return func(o *finalizeOptions) {
		o.order = order
	}
}

// WithIndexLabel sets the header of the period column.
func WithIndexLabel(label string) FinalizeOption {
	return func(o *finalizeOptions) {
		if label != "" {
			o.label = label
		}
	}
}

// Finalize densifies the aggregate into a Matrix, filling absent cells with 0.
func Finalize(a *Aggregator, opts ...FinalizeOption) *Matrix {
	options := finalizeOptions{order: ColumnsFirstSeen, label: DefaultIndexLabel}
	for _, opt := range opts {
		opt(&options)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	columns := append([]string(nil), a.columns...)
	if options.order == ColumnsSorted {
		sort.Strings(columns)
	}

	values := make([][]int, len(a.rows))
	for i := range values {
		values[i] = make([]int, len(columns))
	}
	for j, token := range columns {
		for row, count := range a.cells[token] {
			values[row][j] = count
		}
	}

	return newMatrix(options.label, append([]string(nil), a.rows...), columns, values)
}

// NewMatrix builds a Matrix from dense values, validating its shape.
func NewMatrix(label string, rows, columns []string, values [][]int) (*Matrix, error) {
	if len(values) != len(rows) {
		return nil, fmt.Errorf("matrix has %d rows of values for %d periods", len(values), len(rows))
	}
	for i, row := range values {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %s has %d values for %d columns", rows[i], len(row), len(columns))
		}
	}
	seen := make(map[string]struct{}, len(rows))
	for _, period := range rows {
		if _, dup := seen[period]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePeriod, period)
		}
		seen[period] = struct{}{}
	}
	seen = make(map[string]struct{}, len(columns))
	for _, token := range columns {
		if _, dup := seen[token]; dup {
			return nil, fmt.Errorf("duplicate column %q", token)
		}
		seen[token] = struct{}{}
	}

	copied := make([][]int, len(values))
	for i, row := range values {
		copied[i] = append([]int(nil), row...)
	}
	if label == "" {
		label = DefaultIndexLabel
	}
	return newMatrix(label, append([]string(nil), rows...), append([]string(nil), columns...), copied), nil
}

func newMatrix(label string, rows, columns []string, values [][]int) *Matrix {
	m := &Matrix{
		label:    label,
		rows:     rows,
		columns:  columns,
		rowIndex: make(map[string]int, len(rows)),
		colIndex: make(map[string]int, len(columns)),
		values:   values,
	}
	for i, period := range rows {
		m.rowIndex[period] = i
	}
	for j, token := range columns {
		m.colIndex[token] = j
	}
	return m
}

// IndexLabel returns the header of the period column.
func (m *Matrix) IndexLabel() string { return m.label }

// Rows returns the period keys in row order.
func (m *Matrix) Rows() []string { return append([]string(nil), m.rows...) }

// Columns returns the tokens in column order.
func (m *Matrix) Columns() []string { return append([]string(nil), m.columns...) }

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (int, int) { return len(m.rows), len(m.columns) }

// At returns the cell at row i, column j.
func (m *Matrix) At(i, j int) int { return m.values[i][j] }

// Value returns the count of token in period. ok is false when either key is
// not part of the matrix.
func (m *Matrix) Value(period, token string) (int, bool) {
	i, ok := m.rowIndex[period]
	if !ok {
		return 0, false
	}
	j, ok := m.colIndex[token]
	if !ok {
		return 0, false
	}
	return m.values[i][j], true
}

// Row returns a copy of the counts of period in column order.
func (m *Matrix) Row(period string) ([]int, bool) {
	i, ok := m.rowIndex[period]
	if !ok {
		return nil, false
	}
	return append([]int(nil), m.values[i]...), true
}

// ColumnTotals returns the sum of each column across all rows.
func (m *Matrix) ColumnTotals() []int {
	totals := make([]int, len(m.columns))
	for _, row := range m.values {
		for j, v := range row {
			totals[j] += v
		}
	}
	return totals
}

// RowCounts returns the non-zero cells of period keyed by token.
func (m *Matrix) RowCounts(period string) (map[string]int, bool) {
	i, ok := m.rowIndex[period]
	if !ok {
		return nil, false
	}
	counts := make(map[string]int)
	for j, v := range m.values[i] {
		if v != 0 {
			counts[m.columns[j]] = v
		}
	}
	return counts, true
}
