// Package pipeline runs tweet text through cleaning, tokenizing, tagging,
// filtering and normalization, and buckets the result by part of speech.
package pipeline

import (
	"context"

	"go-tweetlab/errs"
	"go-tweetlab/normalize"
	"go-tweetlab/tagger"
	"go-tweetlab/textclean"
	"go-tweetlab/tokenize"
	"go-tweetlab/types"
)

// Tagger is what the pipeline needs from a tagger.DualTagger.
type Tagger interface {
	Tag(ctx context.Context, tokens []string) ([]types.TaggedToken, error)
}

// Pipeline holds the injected collaborators. It keeps no state between calls.
type Pipeline struct {
	tokenizer  tokenize.Tokenizer
	tagger     Tagger
	remove     *normalize.RemoveSet
	normalizer normalize.Normalizer
}

// New checks that every collaborator is present.
func New(tok tokenize.Tokenizer, tg Tagger, remove *normalize.RemoveSet, n normalize.Normalizer) (*Pipeline, error) {
	switch {
	case tok == nil:
		return nil, errs.Configuration("pipeline: no tokenizer")
	case tg == nil:
		return nil, errs.Configuration("pipeline: no tagger")
	case remove == nil:
		return nil, errs.Configuration("pipeline: no remove set")
	case n == nil:
		return nil, errs.Configuration("pipeline: no normalizer")
	}
	return &Pipeline{tokenizer: tok, tagger: tg, remove: remove, normalizer: n}, nil
}

// Collaborators bundles what FromConfig needs besides the config itself.
type Collaborators struct {
	Tokenizer tokenize.Tokenizer
	POS       tagger.POSTagger
	Entity    tagger.EntityTagger
}

// FromConfig builds a pipeline from a normalization config. Missing
// collaborators default to the Treebank tokenizer and the perceptron tagger;
// the entity tagger must be supplied.
func FromConfig(cfg normalize.Config, c Collaborators) (*Pipeline, error) {
	strategy, err := normalize.ParseStrategy(cfg.Method)
	if err != nil {
		return nil, err
	}
	n, err := normalize.New(strategy)
	if err != nil {
		return nil, err
	}
	remove, err := cfg.RemoveSet.Build()
	if err != nil {
		return nil, err
	}

	if c.Tokenizer == nil {
		c.Tokenizer = tokenize.NewTreebank()
	}
	if c.POS == nil {
		c.POS = tagger.NewPerceptronTagger()
	}
	dual, err := tagger.NewDualTagger(c.POS, c.Entity)
	if err != nil {
		return nil, err
	}
	return New(c.Tokenizer, dual, remove, n)
}

// HandleSingleTweet processes text that already had links, hashtags and
// mentions removed: digit words are stripped, the rest is tokenized, compound
// tokens are split, tagged, filtered, lowercased and normalized.
func (p *Pipeline) HandleSingleTweet(ctx context.Context, text string) (*types.ProcessedTweet, error) {
	text = textclean.RemoveNumbers(text)
	tokens := textclean.SplitCompounds(p.tokenizer.Tokenize(text))

	tagged, err := p.tagger.Tag(ctx, tokens)
	if err != nil {
		return nil, err
	}

	kept := normalize.Filter(tagged, p.remove)
	words := make([]string, len(kept))
	tags := make([]string, len(kept))
	for i, t := range kept {
		words[i] = normalize.Word(p.normalizer, t.Token)
		tags[i] = t.POS
	}
	return Bucket(words, tags), nil
}

// Process cleans raw tweet text (links, hashtags, mentions) before
// HandleSingleTweet.
func (p *Pipeline) Process(ctx context.Context, rawText string) (*types.ProcessedTweet, error) {
	return p.HandleSingleTweet(ctx, textclean.CleanUpText(rawText))
}

// Bucket groups normalized words by their tags. words and tags are parallel.
func Bucket(words, tags []string) *types.ProcessedTweet {
	out := &types.ProcessedTweet{
		Tokens: words,
		Tags:   tags,
		ByType: make(types.Buckets),
	}
	for i, w := range words {
		out.ByType.Add(tags[i], w)
	}
	return out
}
