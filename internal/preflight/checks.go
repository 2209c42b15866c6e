package preflight

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"wordbag/internal/corpus"
	"wordbag/internal/stopwords"
	"wordbag/internal/wordnet"
)

// Access selects the permissions CheckDirectoryAccess requires.
type Access uint32

const (
	ReadOnly  Access = unix.R_OK | unix.X_OK
	ReadWrite Access = unix.R_OK | unix.W_OK | unix.X_OK
)

func (a Access) String() string {
	if a&unix.W_OK != 0 {
		return "read/write"
	}
	return "read"
}

// CheckDirectoryAccess verifies that the directory exists and grants access.
func CheckDirectoryAccess(name, path string, access Access) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, uint32(access)); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s ok)", path, access)}
}

// CheckOutputPath verifies that the output file can be created or replaced.
func CheckOutputPath(path string) Result {
	const name = "Output directory"
	dir := filepath.Dir(path)
	res := CheckDirectoryAccess(name, dir, ReadWrite)
	if !res.Passed {
		return res
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: output path is a directory)", path)}
	}
	return res
}

// CheckStopwords verifies the stopword list loads. An empty path selects the
// built-in English list.
func CheckStopwords(path string) Result {
	const name = "Stopwords"
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("built-in english (%d words)", stopwords.English().Len())}
	}
	set, err := stopwords.LoadFile(path)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d words)", path, set.Len())}
}

// CheckWordNet verifies the noun dictionary loads from dir.
func CheckWordNet(dir string) Result {
	const name = "WordNet"
	lemmatizer, err := wordnet.Open(dir)
	if err != nil {
		detail := err.Error()
		if errors.Is(err, wordnet.ErrDictionaryNotFound) {
			detail += " (install with: python -m nltk.downloader wordnet, or set WORDBAG_WORDNET_DIR)"
		}
		return Result{Name: name, Detail: detail}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d noun lemmas)", dir, lemmatizer.Size())}
}

// CheckCorpus verifies that every period has a document.
func CheckCorpus(ctx context.Context, src corpus.Source, periods []corpus.Period) Result {
	const name = "Corpus documents"
	missing, err := corpus.Missing(ctx, src, periods)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	if len(missing) > 0 {
		keys := corpus.Keys(missing)
		if len(keys) > 5 {
			keys = append(keys[:5], fmt.Sprintf("and %d more", len(missing)-5))
		}
		return Result{Name: name, Detail: fmt.Sprintf("%d of %d missing: %s", len(missing), len(periods), strings.Join(keys, ", "))}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d documents present", len(periods))}
}
