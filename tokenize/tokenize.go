// Package tokenize adapts word tokenizers to the pipeline.
package tokenize

import (
	"strings"

	"github.com/jdkato/prose/tokenize"
)

// Tokenizer turns cleaned text into an ordered sequence of tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Treebank splits text into sentences with the punkt model, then each sentence
// following Penn Treebank conventions: punctuation and contractions ("n't",
// "'s") become their own tokens. No word is dropped; empty strings are never
// returned.
type Treebank struct{}

// NewTreebank returns a Treebank tokenizer.
func NewTreebank() *Treebank {
	return &Treebank{}
}

// Tokenize implements Tokenizer.
func (t *Treebank) Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	words := tokenize.TextToWords(text)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// Func adapts a plain function to the Tokenizer interface.
type Func func(text string) []string

// Tokenize implements Tokenizer.
func (f Func) Tokenize(text string) []string { return f(text) }
