package stopwords

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnglishListSize(t *testing.T) {
	set := English()
	if got := set.Len(); got != 179 {
		t.Fatalf("English().Len() = %d, want 179", got)
	}
}

func TestEnglishContains(t *testing.T) {
	set := English()

	tests := []struct {
		word string
		want bool
	}{
		{"the", true},
		{"and", true},
		{"don't", true},
		{"wouldn't", true},
		{"bank", false},
		{"growth", false},
		{"The", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := set.Contains(tt.word); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestLoadNormalizesEntries(t *testing.T) {
	input := "# finance terms\n  Bank \n\nFEE\nbank\n"
	set, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}
	want := []string{"bank", "fee"}
	got := set.Words()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Words() = %v, want %v", got, want)
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrListNotFound) {
		t.Fatalf("expected ErrListNotFound, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	if err := os.WriteFile(path, []byte("alpha\nbeta\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if !set.Contains("alpha") || !set.Contains("beta") || set.Contains("gamma") {
		t.Fatalf("unexpected membership: %v", set.Words())
	}
}

func TestNilSet(t *testing.T) {
	var set *Set
	if set.Contains("the") {
		t.Fatal("nil set should contain nothing")
	}
	if set.Len() != 0 {
		t.Fatal("nil set should be empty")
	}
}
