package preflight

import (
	"context"
	"fmt"
	"strings"

	"wordbag/internal/config"
	"wordbag/internal/corpus"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every preflight check for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Corpus directory", cfg.Corpus.Dir, ReadOnly),
	}

	periods, err := corpus.Periods(cfg.Corpus.StartYear, cfg.Corpus.EndYear, cfg.Corpus.Quarters)
	if err != nil {
		results = append(results, Result{Name: "Corpus documents", Detail: err.Error()})
	} else if results[0].Passed {
		src := corpus.DirSource{Dir: cfg.Corpus.Dir, Pattern: cfg.Corpus.FilePattern}
		results = append(results, CheckCorpus(ctx, src, periods))
	}

	results = append(results,
		CheckStopwords(cfg.Lexicon.StopwordsPath),
		CheckWordNet(cfg.Lexicon.WordNetDir),
		CheckOutputPath(cfg.Output.Path),
	)
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

// Error summarizes failed results as an error, or nil when all passed.
func Error(results []Result) error {
	failed := Failed(results)
	if len(failed) == 0 {
		return nil
	}
	parts := make([]string, 0, len(failed))
	for _, r := range failed {
		parts = append(parts, fmt.Sprintf("%s: %s", r.Name, r.Detail))
	}
	return fmt.Errorf("preflight failed: %s", strings.Join(parts, "; "))
}
