package wordnet

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openFixture(t *testing.T) *Lemmatizer {
	t.Helper()
	l, err := Open("testdata")
	if err != nil {
		t.Fatalf("Open(testdata) returned error: %v", err)
	}
	return l
}

func TestOpenSkipsLicenseHeader(t *testing.T) {
	l := openFixture(t)
	if got := l.Size(); got != 15 {
		t.Fatalf("Size() = %d, want 15", got)
	}
}

func TestLemmatize(t *testing.T) {
	l := openFixture(t)

	tests := []struct {
		word string
		want string
	}{
		{"banks", "bank"},
		{"bank", "bank"},
		{"boxes", "box"},
		{"churches", "church"},
		{"women", "woman"},
		{"cities", "city"},
		{"leaves", "leaf"},
		{"glasses", "glass"},
		{"bus", "bus"},
		{"mice", "mouse"},
		{"aids", "aid"},
		{"bankss", "bank"},
		{"relat", "relat"},
		{"report", "report"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := l.Lemmatize(tt.word); got != tt.want {
				t.Errorf("Lemmatize(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestLemmatizeExceptionNotInIndex(t *testing.T) {
	l := openFixture(t)
	// geese maps to goose, which the fixture index does not list.
	if got := l.Lemmatize("geese"); got != "geese" {
		t.Fatalf("Lemmatize(geese) = %q, want geese", got)
	}
}

func TestOpenMissingDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "wordnet"))
	if !errors.Is(err, ErrDictionaryNotFound) {
		t.Fatalf("expected ErrDictionaryNotFound, got %v", err)
	}
}

func TestOpenMissingExceptionFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, IndexFile), []byte("bank n 1 0 1 0 00000001\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Open(dir)
	if !errors.Is(err, ErrDictionaryNotFound) {
		t.Fatalf("expected ErrDictionaryNotFound, got %v", err)
	}
}
