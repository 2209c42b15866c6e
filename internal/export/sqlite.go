package export

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"wordbag/internal/fileutil"
	"wordbag/internal/matrix"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is recorded in the metadata table. Bump it when schema.sql changes.
const schemaVersion = "1"

// ErrSchemaMismatch indicates a database written by an incompatible version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode = DELETE",
		"PRAGMA synchronous = FULL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	return db, nil
}

// WriteSQLite builds the database in a temp file beside path and moves it
// into place once committed.
func WriteSQLite(ctx context.Context, path string, m *matrix.Matrix) (fileutil.Written, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fileutil.Written{}, fmt.Errorf("create output directory: %w", err)
	}
	staged, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fileutil.Written{}, fmt.Errorf("create temp database: %w", err)
	}
	tmp := staged.Name()
	_ = staged.Close()
	defer func() { _ = os.Remove(tmp) }()

	if err := populate(ctx, tmp, m); err != nil {
		return fileutil.Written{}, err
	}
	if err := fileutil.ReplaceFile(tmp, path, 0o644); err != nil {
		return fileutil.Written{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fileutil.Written{}, fmt.Errorf("stat output: %w", err)
	}
	sum, err := fileutil.FileSHA256(path)
	if err != nil {
		return fileutil.Written{}, fmt.Errorf("hash output: %w", err)
	}
	return fileutil.Written{Path: path, Bytes: info.Size(), SHA256: sum}, nil
}

func populate(ctx context.Context, path string, m *matrix.Matrix) (err error) {
	db, err := openDB(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close sqlite db: %w", cerr)
		}
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	meta := [][2]string{
		{"schema_version", schemaVersion},
		{"index_label", m.IndexLabel()},
	}
	for _, kv := range meta {
		if _, err := tx.ExecContext(ctx, "INSERT INTO metadata (key, value) VALUES (?, ?)", kv[0], kv[1]); err != nil {
			return fmt.Errorf("insert metadata %s: %w", kv[0], err)
		}
	}

	periods := m.Rows()
	tokens := m.Columns()
	for i, period := range periods {
		if _, err := tx.ExecContext(ctx, "INSERT INTO periods (row_ordinal, period) VALUES (?, ?)", i, period); err != nil {
			return fmt.Errorf("insert period %s: %w", period, err)
		}
	}
	for j, token := range tokens {
		if _, err := tx.ExecContext(ctx, "INSERT INTO tokens (column_ordinal, token) VALUES (?, ?)", j, token); err != nil {
			return fmt.Errorf("insert token %q: %w", token, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO bag_of_words (row_ordinal, period, column_ordinal, token, count) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare cell insert: %w", err)
	}
	defer stmt.Close()
	for i, period := range periods {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j, token := range tokens {
			if _, err := stmt.ExecContext(ctx, i, period, j, token, m.At(i, j)); err != nil {
				return fmt.Errorf("insert cell %s/%q: %w", period, token, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

// ReadSQLite loads a matrix written by WriteSQLite.
func ReadSQLite(ctx context.Context, path string) (*matrix.Matrix, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open matrix: %w", err)
	}
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var version string
	if err := db.QueryRowContext(ctx, "SELECT value FROM metadata WHERE key = 'schema_version'").Scan(&version); err != nil {
		return nil, fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return nil, fmt.Errorf("%w: database has version %s, expected %s", ErrSchemaMismatch, version, schemaVersion)
	}
	var label string
	if err := db.QueryRowContext(ctx, "SELECT value FROM metadata WHERE key = 'index_label'").Scan(&label); err != nil {
		return nil, fmt.Errorf("read index label: %w", err)
	}

	periods, err := queryStrings(ctx, db, "SELECT period FROM periods ORDER BY row_ordinal")
	if err != nil {
		return nil, fmt.Errorf("read periods: %w", err)
	}
	tokens, err := queryStrings(ctx, db, "SELECT token FROM tokens ORDER BY column_ordinal")
	if err != nil {
		return nil, fmt.Errorf("read tokens: %w", err)
	}

	values := make([][]int, len(periods))
	for i := range values {
		values[i] = make([]int, len(tokens))
	}
	rows, err := db.QueryContext(ctx, "SELECT row_ordinal, column_ordinal, count FROM bag_of_words")
	if err != nil {
		return nil, fmt.Errorf("read cells: %w", err)
	}
	defer rows.Close()
	cells := 0
	for rows.Next() {
		var i, j, count int
		if err := rows.Scan(&i, &j, &count); err != nil {
			return nil, fmt.Errorf("scan cell: %w", err)
		}
		if i < 0 || i >= len(periods) || j < 0 || j >= len(tokens) {
			return nil, fmt.Errorf("cell (%d, %d) outside %dx%d matrix", i, j, len(periods), len(tokens))
		}
		values[i][j] = count
		cells++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read cells: %w", err)
	}
	if want := len(periods) * len(tokens); cells != want {
		return nil, fmt.Errorf("matrix is not dense: %d of %d cells present", cells, want)
	}
	return matrix.NewMatrix(label, periods, tokens, values)
}

func queryStrings(ctx context.Context, db *sql.DB, query string) ([]string, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
