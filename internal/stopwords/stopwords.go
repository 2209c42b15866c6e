package stopwords

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

//go:embed english.txt
var englishList string

// ErrListNotFound reports that a configured stopword list could not be read.
var ErrListNotFound = errors.New("stopword list not found")

// Set is a read-only collection of lowercase stopwords. It is safe for
// concurrent use once constructed.
type Set struct {
	words mapset.Set[string]
}

// English returns the embedded NLTK English stopword list.
func English() *Set {
	set, err := Load(strings.NewReader(englishList))
	if err != nil {
		// The embedded list is a compile-time asset.
		panic(fmt.Sprintf("stopwords: parse embedded list: %v", err))
	}
	return set
}

// Load reads one word per line. Blank lines and lines starting with '#' are
// skipped; entries are trimmed and lowercased.
func Load(r io.Reader) (*Set, error) {
	words := mapset.NewSet[string]()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words.Add(word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopwords: %w", err)
	}
	return &Set{words: words}, nil
}

// LoadFile reads a stopword list from path.
func LoadFile(path string) (*Set, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrListNotFound, path)
		}
		return nil, fmt.Errorf("open stopwords %s: %w", path, err)
	}
	defer file.Close()
	return Load(file)
}

// Contains reports whether word is a stopword.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	return s.words.Contains(word)
}

// Len returns the number of stopwords.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.words.Cardinality()
}

// Words returns the stopwords in sorted order.
func (s *Set) Words() []string {
	if s == nil {
		return nil
	}
	words := s.words.ToSlice()
	sort.Strings(words)
	return words
}
