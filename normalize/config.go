package normalize

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"go-tweetlab/errs"
)

// BuiltinStopwords selects the embedded English list in RemoveSetConfig.
const BuiltinStopwords = "builtin"

// Config is the pipeline's normalization configuration, usually read from YAML:
//
//	method: lemmatize
//	remove_set:
//	  stopwords_file: builtin
//	  include_punctuation: true
//	  extra: [rt, amp]
type Config struct {
	Method    string          `yaml:"method"`
	RemoveSet RemoveSetConfig `yaml:"remove_set"`
}

// RemoveSetConfig describes how to build a RemoveSet. StopwordsFile is required.
type RemoveSetConfig struct {
	StopwordsFile      string   `yaml:"stopwords_file"`
	IncludePunctuation *bool    `yaml:"include_punctuation"`
	Extra              []string `yaml:"extra"`
}

// DefaultConfig lemmatizes and removes English stopwords and punctuation.
func DefaultConfig() Config {
	return Config{
		Method:    string(Lemmatize),
		RemoveSet: RemoveSetConfig{StopwordsFile: BuiltinStopwords},
	}
}

// LoadConfig reads a YAML config. Relative stopword paths are resolved against
// the config file's directory.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.WrapConfiguration(err, "reading normalization config")
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errs.WrapConfiguration(err, "parsing normalization config %s", path)
	}

	sw := cfg.RemoveSet.StopwordsFile
	if sw != "" && sw != BuiltinStopwords && !filepath.IsAbs(sw) {
		cfg.RemoveSet.StopwordsFile = filepath.Join(filepath.Dir(path), sw)
	}
	return &cfg, nil
}

// Build creates the RemoveSet. Punctuation is included unless explicitly disabled.
func (c RemoveSetConfig) Build() (*RemoveSet, error) {
	if c.StopwordsFile == "" {
		return nil, errs.Configuration("remove_set.stopwords_file is required (use %q for the bundled list)", BuiltinStopwords)
	}

	r := NewRemoveSet()
	var err error
	if c.StopwordsFile == BuiltinStopwords {
		err = r.Load(strings.NewReader(builtinStopwords))
	} else {
		err = r.LoadFromFile(c.StopwordsFile)
	}
	if err != nil {
		return nil, errs.WrapConfiguration(err, "loading remove set")
	}
	if c.IncludePunctuation == nil || *c.IncludePunctuation {
		r.AddPunctuation()
	}
	r.Add(c.Extra...)
	return r, nil
}
