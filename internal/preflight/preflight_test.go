package preflight

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordbag/internal/config"
	"wordbag/internal/corpus"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir, ReadWrite)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "read/write ok") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"), ReadOnly)
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f, ReadOnly)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckOutputPath(t *testing.T) {
	dir := t.TempDir()
	if res := CheckOutputPath(filepath.Join(dir, "bag_of_words.csv")); !res.Passed {
		t.Fatalf("expected pass, got %s", res.Detail)
	}
	if res := CheckOutputPath(dir); res.Passed {
		t.Fatal("expected failure when output path is a directory")
	}
	if res := CheckOutputPath(filepath.Join(dir, "missing", "out.csv")); res.Passed {
		t.Fatal("expected failure for missing output directory")
	}
}

func TestCheckStopwords(t *testing.T) {
	if res := CheckStopwords(""); !res.Passed || !strings.Contains(res.Detail, "179") {
		t.Fatalf("built-in list: %+v", res)
	}
	path := filepath.Join(t.TempDir(), "stop.txt")
	if err := os.WriteFile(path, []byte("the\nand\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if res := CheckStopwords(path); !res.Passed || !strings.Contains(res.Detail, "2 words") {
		t.Fatalf("custom list: %+v", res)
	}
	if res := CheckStopwords(filepath.Join(t.TempDir(), "missing.txt")); res.Passed {
		t.Fatal("expected failure for missing list")
	}
}

func TestCheckWordNet(t *testing.T) {
	if res := CheckWordNet("../wordnet/testdata"); !res.Passed {
		t.Fatalf("expected fixture dictionary to load: %s", res.Detail)
	}
	res := CheckWordNet(t.TempDir())
	if res.Passed {
		t.Fatal("expected failure for empty dir")
	}
	if !strings.Contains(res.Detail, "WORDBAG_WORDNET_DIR") {
		t.Fatalf("expected install hint, got %q", res.Detail)
	}
}

func TestCheckCorpus(t *testing.T) {
	periods, _ := corpus.Periods(1994, 1995, []int{1, 2, 3, 4})
	src := corpus.MapSource{}
	for _, p := range periods[:2] {
		src[p.Key()] = "text"
	}
	res := CheckCorpus(context.Background(), src, periods)
	if res.Passed {
		t.Fatal("expected failure with missing documents")
	}
	if !strings.Contains(res.Detail, "6 of 8 missing") || !strings.Contains(res.Detail, "and 1 more") {
		t.Fatalf("unexpected detail %q", res.Detail)
	}

	for _, p := range periods {
		src[p.Key()] = "text"
	}
	if res := CheckCorpus(context.Background(), src, periods); !res.Passed {
		t.Fatalf("expected pass, got %s", res.Detail)
	}
}

func TestRunAll(t *testing.T) {
	corpusDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(corpusDir, "1994Q1.txt"), []byte("Banks reported."), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Corpus.Dir = corpusDir
	cfg.Corpus.StartYear, cfg.Corpus.EndYear = 1994, 1994
	cfg.Corpus.Quarters = []int{1}
	cfg.Lexicon.WordNetDir = "../wordnet/testdata"
	cfg.Output.Path = filepath.Join(t.TempDir(), "bag_of_words.csv")

	results := RunAll(context.Background(), &cfg)
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	if err := Error(results); err != nil {
		t.Fatalf("expected all checks to pass: %v", err)
	}

	cfg.Corpus.Quarters = []int{1, 2}
	results = RunAll(context.Background(), &cfg)
	failed := Failed(results)
	if len(failed) != 1 || failed[0].Name != "Corpus documents" {
		t.Fatalf("expected corpus failure, got %+v", failed)
	}
	if err := Error(results); err == nil || !strings.Contains(err.Error(), "1994Q2") {
		t.Fatalf("expected error naming missing period, got %v", err)
	}
	if RunAll(context.Background(), nil) != nil {
		t.Fatal("nil config should produce no results")
	}
}
