package tagger

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go-tweetlab/errs"
)

const sampleGazetteer = `# people
PERSON	Hillary
PERSON	Hillary Clinton
ORGANIZATION	CNN
LOCATION	New York

LOCATION	New York City
`

func TestGazetteerTagger(t *testing.T) {
	g := NewGazetteerTagger()
	if err := g.Load(strings.NewReader(sampleGazetteer)); err != nil {
		t.Fatal(err)
	}
	if g.Len() != 5 {
		t.Errorf("Len() = %d, want 5", g.Len())
	}

	tests := []struct {
		text string
		want []string
	}{
		{"Hillary Clinton visited New York City", []string{"PERSON", "PERSON", "O", "LOCATION", "LOCATION", "LOCATION"}},
		{"Hillary loves CNN", []string{"PERSON", "O", "ORGANIZATION"}},
		{"new york is lowercase", []string{"O", "O", "O", "O"}},
		{"New", []string{"O"}},
	}
	for _, tt := range tests {
		got, err := g.TagEntities(context.Background(), strings.Fields(tt.text))
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("TagEntities(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestGazetteerRejectsBadLines(t *testing.T) {
	for _, content := range []string{"PERSON Hillary", "PLANET\tMars", "PERSON\t  "} {
		err := NewGazetteerTagger().Load(strings.NewReader(content))
		if !errs.IsConfiguration(err) {
			t.Errorf("Load(%q) error = %v, want configuration error", content, err)
		}
	}
}

func TestLoadGazetteerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gazetteer.tsv")
	if err := os.WriteFile(path, []byte(sampleGazetteer), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := LoadGazetteerFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 5 {
		t.Errorf("Len() = %d, want 5", g.Len())
	}

	if _, err := LoadGazetteerFile(filepath.Join(t.TempDir(), "missing.tsv")); !errs.IsConfiguration(err) {
		t.Errorf("expected configuration error for missing file, got %v", err)
	}
}
