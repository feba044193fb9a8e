package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go-tweetlab/normalize"
	"go-tweetlab/tagger"
	"go-tweetlab/tokenize"
	"go-tweetlab/types"
)

// pickyEntity fails for any token sequence containing "boom".
type pickyEntity struct{}

func (pickyEntity) TagEntities(_ context.Context, tokens []string) ([]string, error) {
	for _, t := range tokens {
		if t == "boom" {
			return nil, errors.New("cannot tag boom")
		}
	}
	tags := make([]string, len(tokens))
	for i := range tags {
		tags[i] = types.EntityOutside
	}
	return tags, nil
}

func TestProcessBatch(t *testing.T) {
	dual, _ := tagger.NewDualTagger(suffixPOS{}, pickyEntity{})
	p, err := New(tokenize.Func(strings.Fields), dual, normalize.DefaultRemoveSet(), identity())
	if err != nil {
		t.Fatal(err)
	}

	var tweets []types.Tweet
	for i := 0; i < 25; i++ {
		text := fmt.Sprintf("tweet number%d about trade #tag%d", i, i)
		if i == 7 {
			text = "this goes boom"
		}
		tweets = append(tweets, types.Tweet{ID: fmt.Sprint(1000 + i), Text: text})
	}

	results := p.ProcessBatch(context.Background(), tweets, 3)
	if len(results) != len(tweets) {
		t.Fatalf("got %d results for %d tweets", len(results), len(tweets))
	}
	for i, r := range results {
		if r.TweetID != tweets[i].ID {
			t.Fatalf("result %d has id %s, want %s", i, r.TweetID, tweets[i].ID)
		}
		if i == 7 {
			if r.Err == nil || r.Error == "" || r.Processed != nil {
				t.Errorf("expected failure for tweet 7, got %+v", r)
			}
			continue
		}
		if r.Err != nil {
			t.Errorf("tweet %d: %v", i, r.Err)
			continue
		}
		want := []string{"tweet", "trade"}
		if strings.Join(r.Processed.Tokens, " ") != strings.Join(want, " ") {
			t.Errorf("tweet %d tokens = %q, want %q", i, r.Processed.Tokens, want)
		}
	}
}

func TestProcessBatchCancelled(t *testing.T) {
	dual, _ := tagger.NewDualTagger(suffixPOS{}, pickyEntity{})
	p, _ := New(tokenize.Func(strings.Fields), dual, normalize.DefaultRemoveSet(), identity())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := p.ProcessBatch(ctx, []types.Tweet{{ID: "1", Text: "hello world"}, {ID: "2", Text: "again"}}, 0)
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("tweet %s: error = %v, want context.Canceled", r.TweetID, r.Err)
		}
	}
}

func TestProcessBatchEmpty(t *testing.T) {
	dual, _ := tagger.NewDualTagger(suffixPOS{}, pickyEntity{})
	p, _ := New(tokenize.Func(strings.Fields), dual, normalize.DefaultRemoveSet(), identity())
	if results := p.ProcessBatch(context.Background(), nil, 2); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
