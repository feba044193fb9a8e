// Package normalize filters tagged tokens and reduces the survivors to lemmas
// or stems.
package normalize

import (
	"strings"
	"unicode/utf8"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/kljensen/snowball"

	"go-tweetlab/errs"
	"go-tweetlab/types"
)

// Strategy names the way surviving tokens are reduced.
type Strategy string

const (
	Lemmatize Strategy = "lemmatize"
	Stem      Strategy = "stem"
)

// ParseStrategy accepts "lemmatize" or "stem". Anything else is a
// configuration error; an empty name means lemmatize.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case "", Lemmatize:
		return Lemmatize, nil
	case Stem:
		return Stem, nil
	default:
		return "", errs.Configuration("unknown normalization method %q (want %q or %q)", name, Lemmatize, Stem)
	}
}

// Normalizer maps a lowercased word to its reduced form.
type Normalizer interface {
	Normalize(word string) string
}

// Lemmatizer maps words to their dictionary base form.
type Lemmatizer struct {
	lem *golem.Lemmatizer
}

// NewLemmatizer loads the English lemma dictionary.
func NewLemmatizer() (*Lemmatizer, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, errs.WrapConfiguration(err, "loading English lemma dictionary")
	}
	return &Lemmatizer{lem: lem}, nil
}

// Normalize implements Normalizer. Unknown words come back unchanged.
func (l *Lemmatizer) Normalize(word string) string {
	return l.lem.Lemma(word)
}

// Stemmer truncates words with the English (Porter2) snowball stemmer.
type Stemmer struct{}

// Normalize implements Normalizer.
func (Stemmer) Normalize(word string) string {
	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil {
		return word
	}
	return stemmed
}

// Func adapts a plain function to the Normalizer interface.
type Func func(word string) string

// Normalize implements Normalizer.
func (f Func) Normalize(word string) string { return f(word) }

// New builds the Normalizer for strategy.
func New(strategy Strategy) (Normalizer, error) {
	switch strategy {
	case Lemmatize:
		return NewLemmatizer()
	case Stem:
		return Stemmer{}, nil
	default:
		return nil, errs.Configuration("unknown normalization method %q", strategy)
	}
}

// Keep reports whether a tagged token survives filtering: it is not in the
// remove set, is not part of a named entity and is longer than two characters.
func Keep(t types.TaggedToken, remove *RemoveSet) bool {
	return !remove.Contains(t.Token) &&
		t.Entity == types.EntityOutside &&
		utf8.RuneCountInString(t.Token) > 2
}

// Filter returns the tokens that Keep accepts, in their original order.
func Filter(tagged []types.TaggedToken, remove *RemoveSet) []types.TaggedToken {
	kept := make([]types.TaggedToken, 0, len(tagged))
	for _, t := range tagged {
		if Keep(t, remove) {
			kept = append(kept, t)
		}
	}
	return kept
}

// Word lowercases token and reduces it with n.
func Word(n Normalizer, token string) string {
	return n.Normalize(strings.ToLower(token))
}
