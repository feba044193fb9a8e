package pipeline

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"go-tweetlab/errs"
	"go-tweetlab/normalize"
	"go-tweetlab/tagger"
	"go-tweetlab/tokenize"
	"go-tweetlab/types"
)

// suffixPOS tags words ending in "ing" as VBG, "ly" as RB and everything else NN.
type suffixPOS struct{}

func (suffixPOS) TagPOS(_ context.Context, tokens []string) ([]string, error) {
	tags := make([]string, len(tokens))
	for i, t := range tokens {
		switch {
		case strings.HasSuffix(t, "ing"):
			tags[i] = "VBG"
		case strings.HasSuffix(t, "ly"):
			tags[i] = "RB"
		default:
			tags[i] = "NN"
		}
	}
	return tags, nil
}

type failingEntity struct{ err error }

func (f failingEntity) TagEntities(context.Context, []string) ([]string, error) {
	return nil, f.err
}

func newGazetteer(t *testing.T) *tagger.GazetteerTagger {
	t.Helper()
	g := tagger.NewGazetteerTagger()
	if err := g.Load(strings.NewReader("PERSON\tHillary Clinton\nLOCATION\tNew York\n")); err != nil {
		t.Fatal(err)
	}
	return g
}

func newTestPipeline(t *testing.T, entity tagger.EntityTagger, n normalize.Normalizer) *Pipeline {
	t.Helper()
	dual, err := tagger.NewDualTagger(suffixPOS{}, entity)
	if err != nil {
		t.Fatal(err)
	}
	p, err := New(tokenize.Func(strings.Fields), dual, normalize.DefaultRemoveSet(), n)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func identity() normalize.Normalizer {
	return normalize.Func(func(w string) string { return w })
}

func TestProcessScenario(t *testing.T) {
	p := newTestPipeline(t, newGazetteer(t), identity())

	got, err := p.Process(context.Background(), "Check out #MAGA at https://example.com/x cc @potus 123abc")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.Tokens, []string{"check"}) {
		t.Errorf("Tokens = %q, want [check]", got.Tokens)
	}
	if !reflect.DeepEqual(got.ByType, types.Buckets{"NN": {"check"}}) {
		t.Errorf("ByType = %v", got.ByType)
	}
	for _, tok := range got.Tokens {
		if len(tok) <= 2 {
			t.Errorf("short token %q survived", tok)
		}
	}
}

func TestHandleSingleTweet(t *testing.T) {
	p := newTestPipeline(t, newGazetteer(t), identity())

	got, err := p.HandleSingleTweet(context.Background(),
		"Hillary Clinton is failing badly in New York with 33000 emails and long-term/short-term lies")
	if err != nil {
		t.Fatal(err)
	}
	wantTokens := []string{"failing", "badly", "emails", "long", "term", "short", "term", "lies"}
	if !reflect.DeepEqual(got.Tokens, wantTokens) {
		t.Errorf("Tokens = %q, want %q", got.Tokens, wantTokens)
	}
	wantBuckets := types.Buckets{
		"VBG": {"failing"},
		"RB":  {"badly"},
		"NN":  {"emails", "long", "term", "short", "term", "lies"},
	}
	if !reflect.DeepEqual(got.ByType, wantBuckets) {
		t.Errorf("ByType = %v, want %v", got.ByType, wantBuckets)
	}
	if _, ok := got.ByType.Get("DT"); ok {
		t.Error("tags without tokens must be absent")
	}
}

func TestHandleSingleTweetStem(t *testing.T) {
	dual, err := tagger.NewDualTagger(tagger.NewPerceptronTagger(), newGazetteer(t))
	if err != nil {
		t.Fatal(err)
	}
	p, err := New(tokenize.NewTreebank(), dual, normalize.DefaultRemoveSet(), normalize.Stemmer{})
	if err != nil {
		t.Fatal(err)
	}

	got, err := p.HandleSingleTweet(context.Background(), "Hillary Clinton's long-term plans are failing badly in New York!")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"long", "term", "plan", "fail", "bad"}
	if !reflect.DeepEqual(got.Tokens, want) {
		t.Errorf("Tokens = %q, want %q", got.Tokens, want)
	}
	assertRoundTrip(t, got)
}

func defaultPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := FromConfig(normalize.DefaultConfig(), Collaborators{Entity: newGazetteer(t)})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestProcessNothingLeft(t *testing.T) {
	p := defaultPipeline(t)
	for _, in := range []string{"", "   ", "#MAGA https://t.co/abc @potus", "2016"} {
		got, err := p.Process(context.Background(), in)
		if err != nil {
			t.Errorf("Process(%q): %v", in, err)
			continue
		}
		if len(got.Tokens) != 0 || len(got.ByType) != 0 {
			t.Errorf("Process(%q) = %+v, want empty output", in, got)
		}
	}
}

func TestProcessSplitsSentencePunctuation(t *testing.T) {
	got, err := defaultPipeline(t).Process(context.Background(), "Wow. Incredible.")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Tokens) != 2 {
		t.Fatalf("Tokens = %q, want two words", got.Tokens)
	}
	for _, tok := range got.Tokens {
		if strings.ContainsAny(tok, normalize.Punctuation) {
			t.Errorf("token %q kept punctuation", tok)
		}
	}
	assertRoundTrip(t, got)
}

func TestProcessPropagatesTaggerError(t *testing.T) {
	boom := errors.New("ner tagger unavailable")
	p := newTestPipeline(t, failingEntity{err: boom}, identity())
	if _, err := p.Process(context.Background(), "anything here"); !errors.Is(err, boom) {
		t.Errorf("expected tagger error, got %v", err)
	}
}

func TestNewRequiresCollaborators(t *testing.T) {
	dual, _ := tagger.NewDualTagger(suffixPOS{}, tagger.NewGazetteerTagger())
	remove := normalize.NewRemoveSet()
	tok := tokenize.Func(strings.Fields)

	cases := []struct {
		name string
		fn   func() (*Pipeline, error)
	}{
		{"tokenizer", func() (*Pipeline, error) { return New(nil, dual, remove, identity()) }},
		{"tagger", func() (*Pipeline, error) { return New(tok, nil, remove, identity()) }},
		{"remove set", func() (*Pipeline, error) { return New(tok, dual, nil, identity()) }},
		{"normalizer", func() (*Pipeline, error) { return New(tok, dual, remove, nil) }},
	}
	for _, c := range cases {
		if _, err := c.fn(); !errs.IsConfiguration(err) {
			t.Errorf("missing %s: error = %v, want configuration error", c.name, err)
		}
	}
}

func TestFromConfig(t *testing.T) {
	cfg := normalize.DefaultConfig()
	cfg.Method = "stem"
	p, err := FromConfig(cfg, Collaborators{POS: suffixPOS{}, Entity: tagger.NewGazetteerTagger()})
	if err != nil {
		t.Fatal(err)
	}
	got, err := p.HandleSingleTweet(context.Background(), "Winning deals")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.Tokens, []string{"win", "deal"}) {
		t.Errorf("Tokens = %q", got.Tokens)
	}

	cfg.Method = "chop"
	if _, err := FromConfig(cfg, Collaborators{Entity: tagger.NewGazetteerTagger()}); !errs.IsConfiguration(err) {
		t.Errorf("unknown method: error = %v, want configuration error", err)
	}

	cfg = normalize.DefaultConfig()
	if _, err := FromConfig(cfg, Collaborators{}); !errs.IsConfiguration(err) {
		t.Errorf("no entity tagger: error = %v, want configuration error", err)
	}
}

func TestBucketRoundTrip(t *testing.T) {
	words := []string{"wall", "build", "great", "wall", "quickly", "build"}
	tags := []string{"NN", "VB", "JJ", "NN", "RB", "VB"}
	out := Bucket(words, tags)
	assertRoundTrip(t, out)
	if out.ByType.Len() != len(words) {
		t.Errorf("bucket total %d, want %d", out.ByType.Len(), len(words))
	}
	if got := out.ByType.Tags(); !reflect.DeepEqual(got, []string{"JJ", "NN", "RB", "VB"}) {
		t.Errorf("Tags() = %q", got)
	}

	empty := Bucket([]string{}, []string{})
	if len(empty.ByType) != 0 || len(empty.Tokens) != 0 {
		t.Errorf("empty input produced %+v", empty)
	}
}

func assertRoundTrip(t *testing.T, out *types.ProcessedTweet) {
	t.Helper()
	if len(out.Tokens) != len(out.Tags) {
		t.Fatalf("%d tokens but %d tags", len(out.Tokens), len(out.Tags))
	}
	rebuilt := make(types.Buckets)
	for i, w := range out.Tokens {
		rebuilt.Add(out.Tags[i], w)
	}
	if !reflect.DeepEqual(rebuilt, out.ByType) {
		t.Errorf("regrouped %v, want %v", rebuilt, out.ByType)
	}
	for tag, tokens := range out.ByType {
		if len(tokens) == 0 {
			t.Errorf("empty bucket for %s", tag)
		}
	}
}
