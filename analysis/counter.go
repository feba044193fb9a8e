package analysis

import (
	"sort"

	"go-tweetlab/types"
)

// Mask selects the tweets an aggregate runs over. A nil Mask selects all.
type Mask func(types.Tweet) bool

func (m Mask) match(t types.Tweet) bool {
	return m == nil || m(t)
}

// SourceMask selects tweets whose source labels as label.
func SourceMask(l *SourceLabeler, label string) Mask {
	return func(t types.Tweet) bool {
		got, ok := l.Label(t.Source)
		return ok && got == label
	}
}

// Counter counts occurrences of strings.
type Counter map[string]int

// Add counts every item.
func (c Counter) Add(items ...string) {
	for _, item := range items {
		c[item]++
	}
}

// KeyCount is one Counter entry.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// TopCounts returns the entries counted more than minCount times, most
// frequent first. Ties are broken by key so the order is stable.
func (c Counter) TopCounts(minCount int) []KeyCount {
	var out []KeyCount
	for k, n := range c {
		if n > minCount {
			out = append(out, KeyCount{Key: k, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// AnalyzeHashtags counts the hashtags of the masked tweets.
func AnalyzeHashtags(tweets []types.Tweet, mask Mask) Counter {
	return count(tweets, mask, GetHashtags)
}

// AnalyzeMentions counts the mentions of the masked tweets.
func AnalyzeMentions(tweets []types.Tweet, mask Mask) Counter {
	return count(tweets, mask, GetMentions)
}

func count(tweets []types.Tweet, mask Mask, extract func(string) []string) Counter {
	c := make(Counter)
	for _, t := range tweets {
		if mask.match(t) {
			c.Add(extract(t.Text)...)
		}
	}
	return c
}

// GetCounts returns how many masked tweets have flag false and true.
func GetCounts(tweets []types.Tweet, flag func(types.Tweet) bool, mask Mask) (falseCount, trueCount int) {
	for _, t := range tweets {
		if !mask.match(t) {
			continue
		}
		if flag(t) {
			trueCount++
		} else {
			falseCount++
		}
	}
	return falseCount, trueCount
}

// Quoted is a GetCounts flag for IsQuote on the tweet text.
func Quoted(t types.Tweet) bool { return IsQuote(t.Text) }
