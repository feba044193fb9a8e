// Package tagger runs a part-of-speech tagger and a named-entity tagger over
// the same token sequence and pairs their outputs by index.
package tagger

import (
	"context"

	"go-tweetlab/errs"
	"go-tweetlab/types"
)

// POSTagger assigns one part-of-speech tag to each token.
type POSTagger interface {
	TagPOS(ctx context.Context, tokens []string) ([]string, error)
}

// EntityTagger assigns one of PERSON, ORGANIZATION, LOCATION or O to each token.
type EntityTagger interface {
	TagEntities(ctx context.Context, tokens []string) ([]string, error)
}

// DualTagger applies both taggers and checks that they stay aligned with the input.
type DualTagger struct {
	POS    POSTagger
	Entity EntityTagger
}

// NewDualTagger fails with a configuration error when either tagger is missing.
func NewDualTagger(pos POSTagger, entity EntityTagger) (*DualTagger, error) {
	if pos == nil {
		return nil, errs.Configuration("no part-of-speech tagger configured")
	}
	if entity == nil {
		return nil, errs.Configuration("no entity tagger configured")
	}
	return &DualTagger{POS: pos, Entity: entity}, nil
}

// Tag returns one TaggedToken per input token, in input order. Tagger errors are
// returned as is; a tagger returning the wrong number of tags is an external
// service error.
func (d *DualTagger) Tag(ctx context.Context, tokens []string) ([]types.TaggedToken, error) {
	posTags, err := d.POS.TagPOS(ctx, tokens)
	if err != nil {
		return nil, err
	}
	if len(posTags) != len(tokens) {
		return nil, errs.External("part-of-speech tagger returned %d tags for %d tokens", len(posTags), len(tokens))
	}

	entityTags, err := d.Entity.TagEntities(ctx, tokens)
	if err != nil {
		return nil, err
	}
	if len(entityTags) != len(tokens) {
		return nil, errs.External("entity tagger returned %d tags for %d tokens", len(entityTags), len(tokens))
	}

	tagged := make([]types.TaggedToken, len(tokens))
	for i, token := range tokens {
		tagged[i] = types.TaggedToken{
			Token:  token,
			POS:    posTags[i],
			Entity: entityTags[i],
		}
	}
	return tagged, nil
}

// outside returns n entity tags all set to O.
func outside(n int) []string {
	tags := make([]string, n)
	for i := range tags {
		tags[i] = types.EntityOutside
	}
	return tags
}
