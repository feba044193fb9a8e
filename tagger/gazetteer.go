package tagger

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go-tweetlab/errs"
	"go-tweetlab/types"
)

type gazetteerEntry struct {
	words []string
	label string
}

// GazetteerTagger is an offline entity tagger that looks tokens up in a list of
// known names. The longest matching name wins; matching is case-sensitive.
type GazetteerTagger struct {
	byFirst map[string][]gazetteerEntry
	count   int
}

// NewGazetteerTagger returns an empty gazetteer. Every token tags as O until
// names are added.
func NewGazetteerTagger() *GazetteerTagger {
	return &GazetteerTagger{byFirst: make(map[string][]gazetteerEntry)}
}

// Add registers a name (one or more space-separated words) under label.
func (g *GazetteerTagger) Add(label, name string) error {
	switch label {
	case types.EntityPerson, types.EntityOrganization, types.EntityLocation:
	default:
		return errs.Configuration("unknown gazetteer label %q for %q", label, name)
	}
	words := strings.Fields(name)
	if len(words) == 0 {
		return errs.Configuration("empty gazetteer name for label %s", label)
	}

	entries := append(g.byFirst[words[0]], gazetteerEntry{words: words, label: label})
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].words) > len(entries[j].words)
	})
	g.byFirst[words[0]] = entries
	g.count++
	return nil
}

// Len returns the number of names loaded.
func (g *GazetteerTagger) Len() int { return g.count }

// Load reads "LABEL<TAB>name" lines. Empty lines and lines starting with # are skipped.
func (g *GazetteerTagger) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		label, name, ok := strings.Cut(line, "\t")
		if !ok {
			return errs.Configuration("gazetteer line %d: expected LABEL<TAB>name, got %q", lineNum, line)
		}
		if err := g.Add(strings.TrimSpace(label), name); err != nil {
			return fmt.Errorf("gazetteer line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading gazetteer at line %d: %w", lineNum, err)
	}
	return nil
}

// LoadGazetteerFile builds a GazetteerTagger from a file on disk.
func LoadGazetteerFile(filename string) (*GazetteerTagger, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errs.WrapConfiguration(err, "failed to open gazetteer file %s", filename)
	}
	defer file.Close()

	g := NewGazetteerTagger()
	if err := g.Load(file); err != nil {
		return nil, err
	}
	return g, nil
}

// TagEntities implements EntityTagger.
func (g *GazetteerTagger) TagEntities(ctx context.Context, tokens []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tags := outside(len(tokens))
	for i := 0; i < len(tokens); {
		matched := 0
		for _, entry := range g.byFirst[tokens[i]] {
			if hasPrefix(tokens[i:], entry.words) {
				for j := range entry.words {
					tags[i+j] = entry.label
				}
				matched = len(entry.words)
				break
			}
		}
		if matched == 0 {
			matched = 1
		}
		i += matched
	}
	return tags, nil
}

func hasPrefix(tokens, words []string) bool {
	if len(words) > len(tokens) {
		return false
	}
	for i, w := range words {
		if tokens[i] != w {
			return false
		}
	}
	return true
}
