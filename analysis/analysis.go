// Package analysis has the small text and metadata helpers used to explore an
// account's history: source labels, timestamps, quotes, hashtags, mentions
// and capitalization.
package analysis

import (
	"html"
	"math"
	"regexp"
	"strings"
	"time"

	"go-tweetlab/errs"
	"go-tweetlab/types"
)

var (
	hashtagPattern = regexp.MustCompile(`#\w*`)
	mentionPattern = regexp.MustCompile(`@\w*`)
	wordPattern    = regexp.MustCompile(`\b[A-Za-z]+\b`)
	capsPattern    = regexp.MustCompile(`\b[A-Z]+\b`)
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
)

// GiveSourceName returns the label at the index of the first source type
// equal to value.
func GiveSourceName(value string, sourceTypes, sourceNames []string) (string, bool) {
	for i, sourceType := range sourceTypes {
		if value == sourceType && i < len(sourceNames) {
			return sourceNames[i], true
		}
	}
	return "", false
}

// SourceLabeler maps raw source values to human readable labels.
type SourceLabeler struct {
	sourceTypes []string
	sourceNames []string
}

// NewSourceLabeler pairs sourceTypes[i] with sourceNames[i].
func NewSourceLabeler(sourceTypes, sourceNames []string) (*SourceLabeler, error) {
	if len(sourceTypes) != len(sourceNames) {
		return nil, errs.Configuration("%d source types but %d source names", len(sourceTypes), len(sourceNames))
	}
	return &SourceLabeler{
		sourceTypes: append([]string(nil), sourceTypes...),
		sourceNames: append([]string(nil), sourceNames...),
	}, nil
}

// DefaultSourceLabeler labels the iPhone and Android clients.
func DefaultSourceLabeler() *SourceLabeler {
	l, _ := NewSourceLabeler(
		[]string{"Twitter for iPhone", "Twitter for Android"},
		[]string{"iPhone", "Android"},
	)
	return l
}

// Names returns the labels in order.
func (l *SourceLabeler) Names() []string {
	return append([]string(nil), l.sourceNames...)
}

// Label looks up value. Anchor markup as sent by the API is stripped first.
func (l *SourceLabeler) Label(value string) (string, bool) {
	return GiveSourceName(StripSourceHTML(value), l.sourceTypes, l.sourceNames)
}

// StripSourceHTML turns `<a href="..." rel="nofollow">Twitter for iPhone</a>`
// into `Twitter for iPhone`. Plain values are only trimmed.
func StripSourceHTML(source string) string {
	return strings.TrimSpace(html.UnescapeString(tagPattern.ReplaceAllString(source, "")))
}

// GetTime parses a created_at value such as "Fri Oct 14 20:21:25 +0000 2016".
func GetTime(createdAt string) (time.Time, error) {
	t, err := time.Parse(types.CreatedAtLayout, createdAt)
	if err != nil {
		return time.Time{}, errs.WrapParse(err, "created_at %q", createdAt)
	}
	return t, nil
}

// IsQuote reports whether text starts and ends with a double quote, which is
// how the account retweeted by hand.
func IsQuote(text string) bool {
	return len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"'
}

// GetHashtags returns every hashtag in text, in order, duplicates kept.
func GetHashtags(text string) []string {
	return findAll(hashtagPattern, text)
}

// GetMentions returns every mention in text, in order, duplicates kept.
func GetMentions(text string) []string {
	return findAll(mentionPattern, text)
}

func findAll(re *regexp.Regexp, text string) []string {
	matches := re.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}

// PercentWordsAllCaps is the share of letter-only words written entirely in
// capitals, rounded to two decimals. Text without such words gives 0.
func PercentWordsAllCaps(text string) float64 {
	words := len(wordPattern.FindAllString(text, -1))
	if words == 0 {
		return 0
	}
	caps := len(capsPattern.FindAllString(text, -1))
	return math.Round(float64(caps)/float64(words)*100) / 100
}

// Stats summarizes text. l may be nil, in which case no label is set.
func Stats(text, source string, l *SourceLabeler) types.TextStats {
	stats := types.TextStats{
		Hashtags: GetHashtags(text),
		Mentions: GetMentions(text),
		AllCaps:  PercentWordsAllCaps(text),
		IsQuote:  IsQuote(text),
	}
	if l != nil {
		stats.SourceLabel, _ = l.Label(source)
	}
	return stats
}
