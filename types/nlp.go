package types

// Entity labels produced by an entity tagger. EntityOutside means the token is
// not part of any recognized named entity.
const (
	EntityPerson       = "PERSON"
	EntityOrganization = "ORGANIZATION"
	EntityLocation     = "LOCATION"
	EntityOutside      = "O"
)

// Entity represents a named entity detected in the text.
type Entity struct {
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Metadata map[string]string `json:"metadata"`
	Mentions []EntityMention   `json:"mentions"`
}

// EntityMention holds details about an entity mention.
type EntityMention struct {
	Content     string  `json:"content"`
	BeginOffset int32   `json:"begin_offset"`
	Probability float32 `json:"probability"`
	Proper      bool    `json:"proper"`
}

// TaggedToken is a token with its part-of-speech and entity tags.
type TaggedToken struct {
	Token  string `json:"token"`
	POS    string `json:"pos"`
	Entity string `json:"entity"`
}

// ProcessedTweet is the output of the tagging pipeline for one text.
// Grouping Tokens by tag (in order) gives exactly ByType.
type ProcessedTweet struct {
	Tokens []string `json:"tokens"`
	Tags   []string `json:"tags"`
	ByType Buckets  `json:"byType"`
}

// TextStats is the metadata summary of one tweet text.
type TextStats struct {
	Hashtags    []string `json:"hashtags"`
	Mentions    []string `json:"mentions"`
	AllCaps     float64  `json:"allCapsRatio"`
	IsQuote     bool     `json:"isQuote"`
	SourceLabel string   `json:"sourceLabel,omitempty"`
}
