package matrix

import "testing"

func TestFinalizeCompleteAndZeroFilled(t *testing.T) {
	docs := []struct {
		period string
		counts map[string]int
	}{
		{"1994Q1", map[string]int{"bank": 2, "loan": 1}},
		{"1994Q2", map[string]int{}},
		{"1994Q3", map[string]int{"fee": 4}},
		{"1994Q4", map[string]int{"bank": 1, "rate": 3}},
	}
	a := NewAggregator()
	for _, d := range docs {
		mustAdd(t, a, d.period, d.counts)
	}
	m := Finalize(a)

	rows, cols := m.Dims()
	if rows != len(docs) || cols != 4 {
		t.Fatalf("Dims() = (%d, %d), want (4, 4)", rows, cols)
	}
	for _, d := range docs {
		for _, token := range m.Columns() {
			got, ok := m.Value(d.period, token)
			if !ok {
				t.Fatalf("cell (%s, %s) missing", d.period, token)
			}
			if want := d.counts[token]; got != want {
				t.Fatalf("cell (%s, %s) = %d, want %d", d.period, token, got, want)
			}
		}
	}
}

func TestFinalizePreservesRowOrder(t *testing.T) {
	order := []string{"2002Q4", "1994Q1", "1998Q3"}
	a := NewAggregator()
	for _, period := range order {
		mustAdd(t, a, period, map[string]int{"bank": 1})
	}
	assertStrings(t, Finalize(a).Rows(), order)
}

func TestFinalizeSortedColumns(t *testing.T) {
	a := NewAggregator()
	mustAdd(t, a, "1994Q1", map[string]int{"zeta": 1})
	mustAdd(t, a, "1994Q2", map[string]int{"alpha": 2})

	m := Finalize(a, WithColumnOrder(ColumnsSorted), WithIndexLabel("period"))
	assertStrings(t, m.Columns(), []string{"alpha", "zeta"})
	assertRow(t, m, "1994Q1", []int{0, 1})
	assertRow(t, m, "1994Q2", []int{2, 0})
	if m.IndexLabel() != "period" {
		t.Fatalf("IndexLabel() = %q, want period", m.IndexLabel())
	}
}

func TestFinalizeDefaultLabel(t *testing.T) {
	m := Finalize(NewAggregator())
	if m.IndexLabel() != DefaultIndexLabel {
		t.Fatalf("IndexLabel() = %q, want %q", m.IndexLabel(), DefaultIndexLabel)
	}
	if rows, cols := m.Dims(); rows != 0 || cols != 0 {
		t.Fatalf("empty aggregate Dims() = (%d, %d)", rows, cols)
	}
}

func TestMatrixIsImmutable(t *testing.T) {
	a := NewAggregator()
	mustAdd(t, a, "1994Q1", map[string]int{"bank": 1})
	m := Finalize(a)

	row, _ := m.Row("1994Q1")
	row[0] = 99
	cols := m.Columns()
	cols[0] = "changed"

	if v, _ := m.Value("1994Q1", "bank"); v != 1 {
		t.Fatalf("matrix changed through Row copy: %d", v)
	}

	// Later aggregation does not leak into a finalized matrix.
	mustAdd(t, a, "1994Q2", map[string]int{"fee": 1})
	if rows, cols := m.Dims(); rows != 1 || cols != 1 {
		t.Fatalf("finalized matrix changed: (%d, %d)", rows, cols)
	}
}

func TestMatrixUnknownKeys(t *testing.T) {
	a := NewAggregator()
	mustAdd(t, a, "1994Q1", map[string]int{"bank": 1})
	m := Finalize(a)

	if _, ok := m.Value("1994Q2", "bank"); ok {
		t.Fatal("unknown period reported as present")
	}
	if _, ok := m.Value("1994Q1", "fee"); ok {
		t.Fatal("unknown token reported as present")
	}
	if _, ok := m.Row("1994Q2"); ok {
		t.Fatal("unknown row reported as present")
	}
}

func TestMatrixTotals(t *testing.T) {
	m, err := NewMatrix("", []string{"a", "b"}, []string{"x", "y", "z"}, [][]int{{1, 0, 2}, {3, 4, 0}})
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	totals := m.ColumnTotals()
	want := []int{4, 4, 2}
	for i := range want {
		if totals[i] != want[i] {
			t.Fatalf("ColumnTotals() = %v, want %v", totals, want)
		}
	}
	counts, _ := m.RowCounts("b")
	if len(counts) != 2 || counts["x"] != 3 || counts["y"] != 4 {
		t.Fatalf("RowCounts(b) = %v", counts)
	}
	if m.IndexLabel() != DefaultIndexLabel {
		t.Fatalf("IndexLabel() = %q", m.IndexLabel())
	}
}

func TestNewMatrixValidatesShape(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		columns []string
		values  [][]int
	}{
		{"row count", []string{"a"}, []string{"x"}, [][]int{{1}, {2}}},
		{"column count", []string{"a"}, []string{"x", "y"}, [][]int{{1}}},
		{"duplicate row", []string{"a", "a"}, []string{"x"}, [][]int{{1}, {2}}},
		{"duplicate column", []string{"a"}, []string{"x", "x"}, [][]int{{1, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMatrix("q", tt.rows, tt.columns, tt.values); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
