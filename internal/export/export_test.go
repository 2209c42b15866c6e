package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"wordbag/internal/fileutil"
	"wordbag/internal/matrix"
)

func sampleMatrix(t *testing.T) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewMatrix("quarter_statement",
		[]string{"1994Q1", "1994Q2", "1994Q3"},
		[]string{"bank", "rate", "growth"},
		[][]int{
			{2, 1, 0},
			{0, 0, 0},
			{1, 0, 3},
		})
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	return m
}

func TestWriteCSVLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleMatrix(t)); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	want := strings.Join([]string{
		"quarter_statement,bank,rate,growth",
		"1994Q1,2,1,0",
		"1994Q2,0,0,0",
		"1994Q3,1,0,3",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("unexpected csv:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteCSVEmptyMatrix(t *testing.T) {
	m, err := matrix.NewMatrix("", nil, nil, nil)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, m); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if buf.String() != "quarter_statement\n" {
		t.Fatalf("unexpected csv %q", buf.String())
	}
}

func TestCSVFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bag_of_words.csv")
	want := sampleMatrix(t)

	written, err := WriteCSVFile(path, want)
	if err != nil {
		t.Fatalf("WriteCSVFile: %v", err)
	}
	if written.Bytes == 0 || written.SHA256 == "" {
		t.Fatalf("unexpected write result %+v", written)
	}

	got, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	assertSameMatrix(t, got, want)
}

func TestDecodeCSVRejectsBadInput(t *testing.T) {
	tests := map[string]string{
		"empty":         "",
		"non integer":   "quarter_statement,bank\n1994Q1,two\n",
		"ragged":        "quarter_statement,bank\n1994Q1,1,2\n",
		"duplicate row": "quarter_statement,bank\n1994Q1,1\n1994Q1,2\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodeCSV(strings.NewReader(input)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bag_of_words.sqlite")
	want := sampleMatrix(t)

	if _, err := WriteSQLite(ctx, path, want); err != nil {
		t.Fatalf("WriteSQLite: %v", err)
	}
	got, err := ReadSQLite(ctx, path)
	if err != nil {
		t.Fatalf("ReadSQLite: %v", err)
	}
	assertSameMatrix(t, got, want)

	db, err := openDB(path)
	if err != nil {
		t.Fatalf("openDB: %v", err)
	}
	defer db.Close()
	var cells, zeros int
	if err := db.QueryRow("SELECT COUNT(*), SUM(count = 0) FROM bag_of_words").Scan(&cells, &zeros); err != nil {
		t.Fatalf("count cells: %v", err)
	}
	if cells != 9 || zeros != 5 {
		t.Fatalf("expected 9 dense cells with 5 zeros, got %d cells %d zeros", cells, zeros)
	}
}

func TestSQLiteOverwritesExisting(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.db")
	if err := os.WriteFile(path, []byte("not a database"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Write(ctx, FormatSQLite, path, sampleMatrix(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(ctx, DetectFormat(path), path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if r, c := got.Dims(); r != 3 || c != 3 {
		t.Fatalf("unexpected dims %dx%d", r, c)
	}
	assertNoTemp(t, filepath.Dir(path))
}

func TestWriteRespectsLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bag_of_words.csv")
	unlock, err := fileutil.Lock(path)
	if err != nil {
		t.Fatalf("Lock: %v", err)
	}
	defer unlock() //nolint:errcheck

	for _, format := range []Format{FormatCSV, FormatSQLite} {
		if _, err := Write(context.Background(), format, path, sampleMatrix(t)); !errors.Is(err, fileutil.ErrLocked) {
			t.Fatalf("%s: expected ErrLocked, got %v", format, err)
		}
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no output, stat err %v", err)
	}
	assertNoTemp(t, filepath.Dir(path))
}

func TestParseAndDetectFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatCSV, "CSV": FormatCSV, " sqlite ": FormatSQLite} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("parquet"); err == nil {
		t.Error("expected error for unknown format")
	}
	if DetectFormat("x/out.SQLITE3") != FormatSQLite || DetectFormat("out.csv") != FormatCSV {
		t.Error("unexpected DetectFormat result")
	}
}

func assertSameMatrix(t *testing.T, got, want *matrix.Matrix) {
	t.Helper()
	if got.IndexLabel() != want.IndexLabel() {
		t.Fatalf("label %q, want %q", got.IndexLabel(), want.IndexLabel())
	}
	if !slices.Equal(got.Rows(), want.Rows()) {
		t.Fatalf("rows %v, want %v", got.Rows(), want.Rows())
	}
	if !slices.Equal(got.Columns(), want.Columns()) {
		t.Fatalf("columns %v, want %v", got.Columns(), want.Columns())
	}
	rows, cols := want.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if got.At(i, j) != want.At(i, j) {
				t.Fatalf("cell (%d,%d) = %d, want %d", i, j, got.At(i, j), want.At(i, j))
			}
		}
	}
}

func assertNoTemp(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}
