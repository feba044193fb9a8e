// Package textclean strips the parts of tweet text that carry no linguistic
// content: digit-bearing words, links, hashtags and mentions.
package textclean

import (
	"regexp"
	"strings"
)

var (
	numberWord = regexp.MustCompile(`\b\w*[0-9]\w*`)
	hashtag    = regexp.MustCompile(`#\w*`)
	link       = regexp.MustCompile(`https?://[A-Za-z0-9/#%.]+`)
	mention    = regexp.MustCompile(`@\w*`)
)

// RemoveNumbers drops every word containing a digit, pure numbers included.
func RemoveNumbers(text string) string {
	return numberWord.ReplaceAllString(text, "")
}

// CleanUpText removes hashtags, http(s) links and mentions, in that order.
func CleanUpText(text string) string {
	text = hashtag.ReplaceAllString(text, "")
	text = link.ReplaceAllString(text, "")
	text = mention.ReplaceAllString(text, "")
	return text
}

// Clean applies CleanUpText and RemoveNumbers until the text stops changing.
// A single pass is not enough: removing "@x" from "http@x://a.com" leaves a
// fresh link behind.
func Clean(text string) string {
	for {
		next := RemoveNumbers(CleanUpText(text))
		if next == text {
			return next
		}
		text = next
	}
}

// SplitCompounds splits tokens joined by '-' or '/' into their pieces.
// Empty pieces are dropped; tokens without separators pass through.
func SplitCompounds(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !strings.ContainsAny(token, "-/") {
			out = append(out, token)
			continue
		}
		pieces := strings.FieldsFunc(token, func(r rune) bool {
			return r == '-' || r == '/'
		})
		out = append(out, pieces...)
	}
	return out
}
