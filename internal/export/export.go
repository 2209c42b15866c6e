package export

import (
	"context"
	"fmt"
	"strings"

	"wordbag/internal/fileutil"
	"wordbag/internal/matrix"
)

// Format selects the on-disk representation.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

// ParseFormat accepts the config spelling of a format.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatCSV, "":
		return FormatCSV, nil
	case FormatSQLite:
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("unknown output format %q", value)
	}
}

// Write publishes m at path in the requested format.
func Write(ctx context.Context, format Format, path string, m *matrix.Matrix) (fileutil.Written, error) {
	switch format {
	case FormatCSV, "":
		return WriteCSVFile(path, m)
	case FormatSQLite:
		return WriteSQLite(ctx, path, m)
	default:
		return fileutil.Written{}, fmt.Errorf("unknown output format %q", format)
	}
}

// Read loads a matrix written by Write.
func Read(ctx context.Context, format Format, path string) (*matrix.Matrix, error) {
	switch format {
	case FormatCSV, "":
		return ReadCSV(path)
	case FormatSQLite:
		return ReadSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// DetectFormat guesses the format of path from its extension.
func DetectFormat(path string) Format {
	lower := strings.ToLower(path)
	for _, ext := range []string{".sqlite", ".sqlite3", ".db"} {
		if strings.HasSuffix(lower, ext) {
			return FormatSQLite
		}
	}
	return FormatCSV
}
