package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Corpus describes where the quarterly statement documents live.
type Corpus struct {
	Dir string `toml:"dir"`
	// FilePattern names each document; {period} is replaced by the period key.
	FilePattern string `toml:"file_pattern"`
	StartYear   int    `toml:"start_year"`
	EndYear     int    `toml:"end_year"`
	Quarters    []int  `toml:"quarters"`
}

// Lexicon points at the linguistic resources used by normalization.
type Lexicon struct {
	// StopwordsPath overrides the embedded English list when set.
	StopwordsPath string `toml:"stopwords_path"`
	// WordNetDir holds index.noun and noun.exc.
	WordNetDir string `toml:"wordnet_dir"`
	// Stemmer selects the Porter rule set: nltk or martin.
	Stemmer string `toml:"stemmer"`
}

// Normalize controls document normalization.
type Normalize struct {
	Workers int `toml:"workers"`
}

// Matrix controls how document counts are merged into the output table.
type Matrix struct {
	IndexLabel       string `toml:"index_label"`
	ColumnOrder      string `toml:"column_order"`
	DuplicatePeriods string `toml:"duplicate_periods"`
}

// Output controls the written table.
type Output struct {
	Path   string `toml:"path"`
	Format string `toml:"format"`
}

// Metrics controls the Prometheus textfile written after a run.
type Metrics struct {
	Textfile string `toml:"textfile"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Config encapsulates all configuration values for wordbag.
//
// Configuration sections by subsystem:
//   - Corpus: document directory, naming pattern, and period range
//   - Lexicon: stopword list and WordNet dictionary location
//   - Normalize: worker count
//   - Matrix: index label, column order, duplicate period policy
//   - Output: table path and format
//   - Metrics: optional Prometheus textfile
//   - Logging: log format, level, and file
type Config struct {
	Corpus    Corpus    `toml:"corpus"`
	Lexicon   Lexicon   `toml:"lexicon"`
	Normalize Normalize `toml:"normalize"`
	Matrix    Matrix    `toml:"matrix"`
	Output    Output    `toml:"output"`
	Metrics   Metrics   `toml:"metrics"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// defaultWordNetDir follows the NLTK data lookup: $NLTK_DATA first, then the
// per-user nltk_data directory.
func defaultWordNetDir() string {
	if base, ok := os.LookupEnv("NLTK_DATA"); ok {
		for _, entry := range filepath.SplitList(base) {
			if entry = strings.TrimSpace(entry); entry != "" {
				return filepath.Join(entry, "corpora", "wordnet")
			}
		}
	}
	return "~/nltk_data/corpora/wordnet"
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
