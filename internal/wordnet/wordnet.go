package wordnet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	IndexFile     = "index.noun"
	ExceptionFile = "noun.exc"
)

// ErrDictionaryNotFound reports that the WordNet noun files are unavailable.
var ErrDictionaryNotFound = errors.New("wordnet dictionary not found")

type substitution struct {
	suffix      string
	replacement string
}

// nounRules are the morphy detachment rules for nouns, in lookup order.
var nounRules = []substitution{
	{"s", ""},
	{"ses", "s"},
	{"ves", "f"},
	{"xes", "x"},
	{"zes", "z"},
	{"ches", "ch"},
	{"shes", "sh"},
	{"men", "man"},
	{"ies", "y"},
}

// Lemmatizer maps inflected nouns to their WordNet lemma.
type Lemmatizer struct {
	lemmas     map[string]struct{}
	exceptions map[string][]string
}

// Open loads index.noun and noun.exc from dir.
func Open(dir string) (*Lemmatizer, error) {
	index, err := openDictionaryFile(dir, IndexFile)
	if err != nil {
		return nil, err
	}
	defer index.Close()

	exceptions, err := openDictionaryFile(dir, ExceptionFile)
	if err != nil {
		return nil, err
	}
	defer exceptions.Close()

	return New(index, exceptions)
}

func openDictionaryFile(dir, name string) (*os.File, error) {
	path := filepath.Join(dir, name)
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDictionaryNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return file, nil
}

// New builds a Lemmatizer from an index.noun stream and a noun.exc stream.
func New(index, exceptions io.Reader) (*Lemmatizer, error) {
	l := &Lemmatizer{
		lemmas:     make(map[string]struct{}),
		exceptions: make(map[string][]string),
	}
	if err := scanLines(index, func(fields []string) {
		l.lemmas[fields[0]] = struct{}{}
	}); err != nil {
		return nil, fmt.Errorf("read %s: %w", IndexFile, err)
	}
	if err := scanLines(exceptions, func(fields []string) {
		l.exceptions[fields[0]] = fields[1:]
	}); err != nil {
		return nil, fmt.Errorf("read %s: %w", ExceptionFile, err)
	}
	return l, nil
}

// scanLines skips the license header, whose lines start with a space.
func scanLines(r io.Reader, fn func(fields []string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == ' ' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		fn(fields)
	}
	return scanner.Err()
}

// Size returns the number of noun lemmas loaded.
func (l *Lemmatizer) Size() int {
	return len(l.lemmas)
}

// Lemmatize returns the shortest noun lemma for word, or word itself when
// WordNet has no candidate.
func (l *Lemmatizer) Lemmatize(word string) string {
	candidates := l.morphy(word)
	if len(candidates) == 0 {
		return word
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c) < len(best) {
			best = c
		}
	}
	return best
}

func (l *Lemmatizer) morphy(form string) []string {
	if bases, ok := l.exceptions[form]; ok {
		return l.known(append([]string{form}, bases...))
	}

	forms := detach([]string{form})
	if results := l.known(append([]string{form}, forms...)); len(results) > 0 {
		return results
	}
	for len(forms) > 0 {
		forms = detach(forms)
		if results := l.known(forms); len(results) > 0 {
			return results
		}
	}
	return nil
}

func detach(forms []string) []string {
	var out []string
	for _, form := range forms {
		for _, rule := range nounRules {
			if strings.HasSuffix(form, rule.suffix) {
				out = append(out, form[:len(form)-len(rule.suffix)]+rule.replacement)
			}
		}
	}
	return out
}

// known keeps forms present in the index, deduplicated, in input order.
func (l *Lemmatizer) known(forms []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(forms))
	for _, form := range forms {
		if _, ok := l.lemmas[form]; !ok {
			continue
		}
		if _, dup := seen[form]; dup {
			continue
		}
		seen[form] = struct{}{}
		out = append(out, form)
	}
	return out
}
