package normalize

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

// Punctuation is the ASCII punctuation set, one removal entry per character.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

//go:embed stopwords_english.txt
var builtinStopwords string

// RemoveSet holds the tokens the filter discards: stopwords and punctuation.
// Matching is case-sensitive against the token as tokenized.
type RemoveSet struct {
	words map[string]struct{}
}

// NewRemoveSet creates a set holding words.
func NewRemoveSet(words ...string) *RemoveSet {
	r := &RemoveSet{words: make(map[string]struct{}, len(words))}
	r.Add(words...)
	return r
}

// DefaultRemoveSet is the English stopword list plus every punctuation character.
func DefaultRemoveSet() *RemoveSet {
	r := NewRemoveSet()
	// the embedded list is well formed
	_ = r.Load(strings.NewReader(builtinStopwords))
	r.AddPunctuation()
	return r
}

// Add inserts words into the set.
func (r *RemoveSet) Add(words ...string) {
	for _, w := range words {
		r.words[w] = struct{}{}
	}
}

// AddPunctuation inserts each punctuation character as its own entry.
func (r *RemoveSet) AddPunctuation() {
	for _, c := range Punctuation {
		r.words[string(c)] = struct{}{}
	}
}

// Contains reports whether token is in the set.
func (r *RemoveSet) Contains(token string) bool {
	_, ok := r.words[token]
	return ok
}

// Len returns the number of entries.
func (r *RemoveSet) Len() int { return len(r.words) }

// Load adds one word per line. Lines starting with # are comments.
func (r *RemoveSet) Load(rd io.Reader) error {
	scanner := bufio.NewScanner(rd)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r.words[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading stopwords at line %d: %w", lineNum, err)
	}
	return nil
}

// LoadFromFile adds the words of a stopword file.
func (r *RemoveSet) LoadFromFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open stopword file %s: %w", filename, err)
	}
	defer file.Close()
	return r.Load(file)
}
