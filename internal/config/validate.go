package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCorpus(); err != nil {
		return err
	}
	if err := c.validateLexicon(); err != nil {
		return err
	}
	if err := c.validateNormalize(); err != nil {
		return err
	}
	if err := c.validateMatrix(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCorpus() error {
	if strings.TrimSpace(c.Corpus.Dir) == "" {
		return errors.New("corpus.dir must be set")
	}
	if !strings.Contains(c.Corpus.FilePattern, periodPlaceholder) {
		return fmt.Errorf("corpus.file_pattern must contain %s", periodPlaceholder)
	}
	if c.Corpus.StartYear <= 0 {
		return errors.New("corpus.start_year must be positive")
	}
	if c.Corpus.EndYear < c.Corpus.StartYear {
		return errors.New("corpus.end_year must not be before corpus.start_year")
	}
	if len(c.Corpus.Quarters) == 0 {
		return errors.New("corpus.quarters must list at least one quarter")
	}
	for _, q := range c.Corpus.Quarters {
		if q < 1 || q > 4 {
			return fmt.Errorf("corpus.quarters: %d is not a quarter (1-4)", q)
		}
	}
	return nil
}

func (c *Config) validateLexicon() error {
	if strings.TrimSpace(c.Lexicon.WordNetDir) == "" {
		return errors.New("lexicon.wordnet_dir must be set (or WORDBAG_WORDNET_DIR)")
	}
	switch c.Lexicon.Stemmer {
	case "nltk", "martin":
	default:
		return fmt.Errorf("lexicon.stemmer must be nltk or martin, got %q", c.Lexicon.Stemmer)
	}
	return nil
}

func (c *Config) validateNormalize() error {
	if c.Normalize.Workers < 1 {
		return errors.New("normalize.workers must be at least 1")
	}
	return nil
}

func (c *Config) validateMatrix() error {
	if strings.TrimSpace(c.Matrix.IndexLabel) == "" {
		return errors.New("matrix.index_label must be set")
	}
	switch c.Matrix.ColumnOrder {
	case "first_seen", "sorted":
	default:
		return fmt.Errorf("matrix.column_order must be first_seen or sorted, got %q", c.Matrix.ColumnOrder)
	}
	switch c.Matrix.DuplicatePeriods {
	case "error", "overwrite", "sum":
	default:
		return fmt.Errorf("matrix.duplicate_periods must be error, overwrite, or sum, got %q", c.Matrix.DuplicatePeriods)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if strings.TrimSpace(c.Output.Path) == "" {
		return errors.New("output.path must be set")
	}
	switch c.Output.Format {
	case "csv", "sqlite":
	default:
		return fmt.Errorf("output.format must be csv or sqlite, got %q", c.Output.Format)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
