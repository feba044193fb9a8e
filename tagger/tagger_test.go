package tagger

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go-tweetlab/errs"
	"go-tweetlab/types"
)

type staticPOS struct {
	tag string
	err error
	cut int
}

func (s staticPOS) TagPOS(_ context.Context, tokens []string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	tags := make([]string, len(tokens)-s.cut)
	for i := range tags {
		tags[i] = s.tag
	}
	return tags, nil
}

type staticEntity struct {
	err error
	cut int
}

func (s staticEntity) TagEntities(_ context.Context, tokens []string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return outside(len(tokens) - s.cut), nil
}

func TestDualTaggerAlignment(t *testing.T) {
	dual, err := NewDualTagger(staticPOS{tag: "NN"}, staticEntity{})
	if err != nil {
		t.Fatal(err)
	}

	inputs := [][]string{
		{},
		{"wall"},
		{"Build", "the", "wall", "!"},
		strings.Fields("a b c d e f g h i j k l m n o p"),
	}
	for _, tokens := range inputs {
		tagged, err := dual.Tag(context.Background(), tokens)
		if err != nil {
			t.Fatalf("Tag(%q) error = %v", tokens, err)
		}
		if len(tagged) != len(tokens) {
			t.Fatalf("Tag(%q) returned %d tagged tokens", tokens, len(tagged))
		}
		for i, tt := range tagged {
			if tt.Token != tokens[i] || tt.POS != "NN" || tt.Entity != types.EntityOutside {
				t.Errorf("tagged[%d] = %+v", i, tt)
			}
		}
	}
}

func TestDualTaggerPropagatesErrors(t *testing.T) {
	boom := errors.New("tagger crashed")

	dual, _ := NewDualTagger(staticPOS{err: boom}, staticEntity{})
	if _, err := dual.Tag(context.Background(), []string{"x"}); !errors.Is(err, boom) {
		t.Errorf("expected POS error, got %v", err)
	}

	dual, _ = NewDualTagger(staticPOS{tag: "NN"}, staticEntity{err: boom})
	if _, err := dual.Tag(context.Background(), []string{"x"}); !errors.Is(err, boom) {
		t.Errorf("expected entity error, got %v", err)
	}
}

func TestDualTaggerRejectsMisalignedOutput(t *testing.T) {
	dual, _ := NewDualTagger(staticPOS{tag: "NN", cut: 1}, staticEntity{})
	if _, err := dual.Tag(context.Background(), []string{"a", "b"}); !errs.IsExternal(err) {
		t.Errorf("expected external service error, got %v", err)
	}

	dual, _ = NewDualTagger(staticPOS{tag: "NN"}, staticEntity{cut: 1})
	if _, err := dual.Tag(context.Background(), []string{"a", "b"}); !errs.IsExternal(err) {
		t.Errorf("expected external service error, got %v", err)
	}
}

func TestNewDualTaggerRequiresBoth(t *testing.T) {
	if _, err := NewDualTagger(nil, staticEntity{}); !errs.IsConfiguration(err) {
		t.Errorf("expected configuration error, got %v", err)
	}
	if _, err := NewDualTagger(staticPOS{}, nil); !errs.IsConfiguration(err) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestPerceptronTaggerLength(t *testing.T) {
	p := NewPerceptronTagger()
	for _, text := range []string{"", "Crooked", "The fake news media is working overtime ."} {
		tokens := strings.Fields(text)
		tags, err := p.TagPOS(context.Background(), tokens)
		if err != nil {
			t.Fatal(err)
		}
		if len(tags) != len(tokens) {
			t.Errorf("TagPOS(%q) returned %d tags", tokens, len(tags))
		}
		for _, tag := range tags {
			if tag == "" {
				t.Errorf("empty tag in %q", tags)
			}
		}
	}
}

func TestPerceptronTaggerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewPerceptronTagger().TagPOS(ctx, []string{"x"}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
