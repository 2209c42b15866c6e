package testsupport

import (
	"path/filepath"
	"runtime"
	"testing"

	"wordbag/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The corpus covers 1994Q1 through 1994Q4 and the WordNet dictionary points at
// the fixture shipped with the wordnet package.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Corpus.Dir = filepath.Join(base, "corpus")
	cfgVal.Corpus.StartYear = 1994
	cfgVal.Corpus.EndYear = 1994
	cfgVal.Corpus.Quarters = []int{1, 2, 3, 4}
	cfgVal.Lexicon.WordNetDir = WordNetFixtureDir(t)
	cfgVal.Output.Path = filepath.Join(base, "out", "bag_of_words.csv")
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	ensureDir(t, cfgVal.Corpus.Dir)
	ensureDir(t, filepath.Dir(cfgVal.Output.Path))
	return builder.cfg
}

// WordNetFixtureDir returns the directory of the small WordNet fixture.
func WordNetFixtureDir(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("locate testsupport source")
	}
	return filepath.Join(filepath.Dir(file), "..", "wordnet", "testdata")
}

// WithDocuments writes one corpus file per period key.
func WithDocuments(docs map[string]string) ConfigOption {
	return func(b *configBuilder) {
		WriteCorpus(b.t, b.cfg.Corpus.Dir, docs)
	}
}

// WithYears sets the corpus year range.
func WithYears(start, end int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Corpus.StartYear = start
		b.cfg.Corpus.EndYear = end
	}
}

// WithQuarters sets the corpus quarters.
func WithQuarters(quarters ...int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Corpus.Quarters = quarters
	}
}

// WithOutputFormat switches the output format and file extension.
func WithOutputFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = format
		if format == "sqlite" {
			b.cfg.Output.Path = filepath.Join(b.baseDir, "out", "bag_of_words.sqlite")
		}
	}
}

// WithWorkers sets the normalization worker count.
func WithWorkers(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Normalize.Workers = n
	}
}

// WithMetricsTextfile enables the metrics textfile under the temp base.
func WithMetricsTextfile() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Metrics.Textfile = filepath.Join(b.baseDir, "metrics", "wordbag.prom")
	}
}
