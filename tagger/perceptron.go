package tagger

import (
	"context"
	"sync"

	"github.com/jdkato/prose/tag"
)

// PerceptronTagger tags tokens with Penn Treebank tags using prose's averaged
// perceptron model.
type PerceptronTagger struct {
	mu     sync.Mutex
	tagger *tag.PerceptronTagger
}

// NewPerceptronTagger loads the bundled English model.
func NewPerceptronTagger() *PerceptronTagger {
	return &PerceptronTagger{tagger: tag.NewPerceptronTagger()}
}

// TagPOS implements POSTagger.
func (p *PerceptronTagger) TagPOS(ctx context.Context, tokens []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return []string{}, nil
	}

	p.mu.Lock()
	tagged := p.tagger.Tag(tokens)
	p.mu.Unlock()

	tags := make([]string, len(tagged))
	for i, t := range tagged {
		tags[i] = t.Tag
	}
	return tags, nil
}
