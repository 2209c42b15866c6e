package config

const (
	defaultConfigPath  = "~/.config/wordbag/config.toml"
	projectConfigName  = "wordbag.toml"
	periodPlaceholder  = "{period}"
	defaultCorpusDir   = "."
	defaultFilePattern = periodPlaceholder + ".txt"
	defaultStartYear   = 1994
	defaultEndYear     = 2002
	defaultWorkers     = 1
	defaultStemmer     = "nltk"
	defaultIndexLabel  = "quarter_statement"
	defaultColumnOrder = "first_seen"
	defaultDuplicates  = "error"
	defaultOutputPath  = "bag_of_words.csv"
	defaultOutputFmt   = "csv"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Corpus: Corpus{
			Dir:         defaultCorpusDir,
			FilePattern: defaultFilePattern,
			StartYear:   defaultStartYear,
			EndYear:     defaultEndYear,
			Quarters:    []int{1, 2, 3, 4},
		},
		Lexicon: Lexicon{
			WordNetDir: defaultWordNetDir(),
			Stemmer:    defaultStemmer,
		},
		Normalize: Normalize{
			Workers: defaultWorkers,
		},
		Matrix: Matrix{
			IndexLabel:       defaultIndexLabel,
			ColumnOrder:      defaultColumnOrder,
			DuplicatePeriods: defaultDuplicates,
		},
		Output: Output{
			Path:   defaultOutputPath,
			Format: defaultOutputFmt,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
