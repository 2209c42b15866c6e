package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeCorpus(); err != nil {
		return err
	}
	if err := c.normalizeLexicon(); err != nil {
		return err
	}
	c.normalizeMatrix()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	if err := c.normalizeMetrics(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeCorpus() error {
	var err error
	if strings.TrimSpace(c.Corpus.Dir) == "" {
		c.Corpus.Dir = defaultCorpusDir
	}
	if c.Corpus.Dir, err = expandPath(c.Corpus.Dir); err != nil {
		return fmt.Errorf("corpus.dir: %w", err)
	}
	c.Corpus.FilePattern = strings.TrimSpace(c.Corpus.FilePattern)
	if c.Corpus.FilePattern == "" {
		c.Corpus.FilePattern = defaultFilePattern
	}
	if len(c.Corpus.Quarters) == 0 {
		c.Corpus.Quarters = []int{1, 2, 3, 4}
	}
	quarters := slices.Clone(c.Corpus.Quarters)
	slices.Sort(quarters)
	c.Corpus.Quarters = slices.Compact(quarters)
	return nil
}

func (c *Config) normalizeLexicon() error {
	var err error
	if value, ok := os.LookupEnv("WORDBAG_WORDNET_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Lexicon.WordNetDir = value
	}
	if strings.TrimSpace(c.Lexicon.WordNetDir) == "" {
		c.Lexicon.WordNetDir = defaultWordNetDir()
	}
	if c.Lexicon.WordNetDir, err = expandPath(c.Lexicon.WordNetDir); err != nil {
		return fmt.Errorf("lexicon.wordnet_dir: %w", err)
	}
	if strings.TrimSpace(c.Lexicon.StopwordsPath) != "" {
		if c.Lexicon.StopwordsPath, err = expandPath(c.Lexicon.StopwordsPath); err != nil {
			return fmt.Errorf("lexicon.stopwords_path: %w", err)
		}
	} else {
		c.Lexicon.StopwordsPath = ""
	}
	c.Lexicon.Stemmer = strings.ToLower(strings.TrimSpace(c.Lexicon.Stemmer))
	if c.Lexicon.Stemmer == "" {
		c.Lexicon.Stemmer = defaultStemmer
	}
	return nil
}

func (c *Config) normalizeMatrix() {
	c.Matrix.IndexLabel = strings.TrimSpace(c.Matrix.IndexLabel)
	if c.Matrix.IndexLabel == "" {
		c.Matrix.IndexLabel = defaultIndexLabel
	}
	c.Matrix.ColumnOrder = strings.ToLower(strings.TrimSpace(c.Matrix.ColumnOrder))
	if c.Matrix.ColumnOrder == "" {
		c.Matrix.ColumnOrder = defaultColumnOrder
	}
	c.Matrix.DuplicatePeriods = strings.ToLower(strings.TrimSpace(c.Matrix.DuplicatePeriods))
	if c.Matrix.DuplicatePeriods == "" {
		c.Matrix.DuplicatePeriods = defaultDuplicates
	}
}

func (c *Config) normalizeOutput() error {
	var err error
	if strings.TrimSpace(c.Output.Path) == "" {
		c.Output.Path = defaultOutputPath
	}
	if c.Output.Path, err = expandPath(c.Output.Path); err != nil {
		return fmt.Errorf("output.path: %w", err)
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFmt
	}
	return nil
}

func (c *Config) normalizeMetrics() error {
	var err error
	if strings.TrimSpace(c.Metrics.Textfile) == "" {
		c.Metrics.Textfile = ""
		return nil
	}
	if c.Metrics.Textfile, err = expandPath(c.Metrics.Textfile); err != nil {
		return fmt.Errorf("metrics.textfile: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) == "" {
		c.Logging.File = ""
		return nil
	}
	var err error
	if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
