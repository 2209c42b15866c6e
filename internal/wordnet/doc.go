// Package wordnet lemmatizes nouns against the WordNet database.
//
// It reads the same two files the NLTK corpus reader uses for nouns:
// index.noun (every noun lemma WordNet knows) and noun.exc (irregular
// inflections such as "mice mouse"). Lemmatize runs the WordNet morphy
// algorithm: irregular forms are looked up first, otherwise detachment rules
// strip inflectional suffixes until a form found in the index appears. The
// shortest candidate wins; unknown words are returned unchanged.
//
// The dictionary is loaded once and never mutated, so a single Lemmatizer can
// be shared by concurrent normalizers.
package wordnet
