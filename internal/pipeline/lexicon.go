package pipeline

import (
	"fmt"
	"strings"

	"wordbag/internal/config"
	"wordbag/internal/normalize"
	"wordbag/internal/stemmer"
	"wordbag/internal/stopwords"
	"wordbag/internal/wordnet"
)

// NewNormalizer loads the stopword list and WordNet dictionary named by lex
// and returns the Normalizer shared by every document of a run.
func NewNormalizer(lex config.Lexicon) (*normalize.Normalizer, error) {
	stop := stopwords.English()
	if path := strings.TrimSpace(lex.StopwordsPath); path != "" {
		custom, err := stopwords.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load stopwords: %w", err)
		}
		stop = custom
	}

	lemmatizer, err := wordnet.Open(lex.WordNetDir)
	if err != nil {
		return nil, fmt.Errorf("load wordnet: %w", err)
	}

	mode, err := stemmer.ParseMode(lex.Stemmer)
	if err != nil {
		return nil, err
	}
	return normalize.New(stop, stemmer.New(mode), lemmatizer)
}
