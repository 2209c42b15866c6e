package corpus

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrResourceMissing reports a period whose document cannot be found.
var ErrResourceMissing = errors.New("document resource missing")

// PeriodPlaceholder is replaced by the period key in DirSource patterns.
const PeriodPlaceholder = "{period}"

// Document is the raw text of one period.
type Document struct {
	Period Period
	Text   string
}

// Key returns the period key of the document.
func (d Document) Key() string { return d.Period.Key() }

// Source resolves a period to its document.
type Source interface {
	Read(ctx context.Context, period Period) (Document, error)
}

// DirSource reads documents from files in Dir named by Pattern.
type DirSource struct {
	Dir     string
	Pattern string
}

// Path returns the file DirSource reads for period.
func (s DirSource) Path(period Period) string {
	pattern := s.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = PeriodPlaceholder + ".txt"
	}
	return filepath.Join(s.Dir, strings.ReplaceAll(pattern, PeriodPlaceholder, period.Key()))
}

// Read loads the document for period. Invalid UTF-8 is replaced rather than
// rejected so a stray byte does not abort a run.
func (s DirSource) Read(ctx context.Context, period Period) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	path := s.Path(period)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, fmt.Errorf("%w: period %s: %s", ErrResourceMissing, period.Key(), path)
		}
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	text := string(data)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "�")
	}
	return Document{Period: period, Text: text}, nil
}

// MapSource serves documents keyed by period key.
type MapSource map[string]string

// Read returns the stored text for period.
func (m MapSource) Read(ctx context.Context, period Period) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	text, ok := m[period.Key()]
	if !ok {
		return Document{}, fmt.Errorf("%w: period %s", ErrResourceMissing, period.Key())
	}
	return Document{Period: period, Text: text}, nil
}

// Missing returns the periods for which src has no document. Errors other
// than ErrResourceMissing are returned immediately.
func Missing(ctx context.Context, src Source, periods []Period) ([]Period, error) {
	var missing []Period
	for _, p := range periods {
		if _, err := src.Read(ctx, p); err != nil {
			if errors.Is(err, ErrResourceMissing) {
				missing = append(missing, p)
				continue
			}
			return nil, err
		}
	}
	return missing, nil
}
