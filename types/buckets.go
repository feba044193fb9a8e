package types

import "sort"

// Buckets maps a part-of-speech tag to the tokens carrying it, in insertion
// order. A tag with no tokens has no entry; there are never empty lists.
type Buckets map[string][]string

// Add appends token to the bucket for tag, creating the bucket on first use.
func (b Buckets) Add(tag, token string) {
	b[tag] = append(b[tag], token)
}

// Get returns the tokens for tag and whether the tag is present.
func (b Buckets) Get(tag string) ([]string, bool) {
	tokens, ok := b[tag]
	return tokens, ok
}

// Tags returns the present tags in sorted order.
func (b Buckets) Tags() []string {
	tags := make([]string, 0, len(b))
	for tag := range b {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Len returns the total number of tokens over all buckets.
func (b Buckets) Len() int {
	n := 0
	for _, tokens := range b {
		n += len(tokens)
	}
	return n
}
