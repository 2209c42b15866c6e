package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"wordbag/internal/fileutil"
	"wordbag/internal/matrix"
)

// WriteCSV encodes m as CSV: header row first, then one row per period.
func WriteCSV(w io.Writer, m *matrix.Matrix) error {
	rows, cols := m.Dims()
	cw := csv.NewWriter(w)

	record := make([]string, cols+1)
	record[0] = m.IndexLabel()
	copy(record[1:], m.Columns())
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	periods := m.Rows()
	for i := 0; i < rows; i++ {
		record[0] = periods[i]
		for j := 0; j < cols; j++ {
			record[j+1] = strconv.Itoa(m.At(i, j))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %s: %w", periods[i], err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteCSVFile atomically replaces path with the CSV encoding of m.
func WriteCSVFile(path string, m *matrix.Matrix) (fileutil.Written, error) {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return WriteCSV(w, m)
	})
}

// DecodeCSV parses a table produced by WriteCSV.
func DecodeCSV(r io.Reader) (*matrix.Matrix, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = false

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("decode csv: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("decode csv header: %w", err)
	}
	label := header[0]
	columns := header[1:]

	var (
		rows   []string
		values [][]int
	)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode csv: %w", err)
		}
		row := make([]int, len(columns))
		for j, cell := range record[1:] {
			v, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("decode csv: period %s token %s: %w", record[0], columns[j], err)
			}
			row[j] = v
		}
		rows = append(rows, record[0])
		values = append(values, row)
	}
	return matrix.NewMatrix(label, rows, columns, values)
}

// ReadCSV loads a CSV matrix from path.
func ReadCSV(path string) (*matrix.Matrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open matrix: %w", err)
	}
	defer file.Close()
	m, err := DecodeCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
