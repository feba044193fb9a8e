// Package report summarizes an account's export per posting device.
package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"go-tweetlab/analysis"
	"go-tweetlab/types"
)

// SourceReport aggregates the tweets of one source label.
type SourceReport struct {
	Label       string              `json:"label"`
	Tweets      int                 `json:"tweets"`
	Quotes      int                 `json:"quotes"`
	NotQuotes   int                 `json:"notQuotes"`
	MeanAllCaps float64             `json:"meanAllCaps"`
	Hours       [24]int             `json:"hours"`
	BadTimes    int                 `json:"badTimes"`
	TopHashtags []analysis.KeyCount `json:"topHashtags"`
	TopMentions []analysis.KeyCount `json:"topMentions"`
}

type Report struct {
	Total     int            `json:"total"`
	Unlabeled int            `json:"unlabeled"`
	Sources   []SourceReport `json:"sources"`
}

// Build groups tweets by l's labels, in label order. Hashtags and mentions
// seen at most minCount times are left out of the top lists.
func Build(tweets []types.Tweet, l *analysis.SourceLabeler, minCount int) Report {
	r := Report{Total: len(tweets)}
	for _, t := range tweets {
		if _, ok := l.Label(t.Source); !ok {
			r.Unlabeled++
		}
	}

	for _, label := range l.Names() {
		mask := analysis.SourceMask(l, label)
		s := SourceReport{Label: label}
		s.NotQuotes, s.Quotes = analysis.GetCounts(tweets, analysis.Quoted, mask)
		s.Tweets = s.NotQuotes + s.Quotes

		var caps float64
		for _, t := range tweets {
			if !mask(t) {
				continue
			}
			caps += analysis.PercentWordsAllCaps(t.Text)
			when, err := analysis.GetTime(t.CreatedAt)
			if err != nil {
				s.BadTimes++
				continue
			}
			s.Hours[when.UTC().Hour()]++
		}
		if s.Tweets > 0 {
			s.MeanAllCaps = math.Round(caps/float64(s.Tweets)*100) / 100
		}
		s.TopHashtags = analysis.AnalyzeHashtags(tweets, mask).TopCounts(minCount)
		s.TopMentions = analysis.AnalyzeMentions(tweets, mask).TopCounts(minCount)
		r.Sources = append(r.Sources, s)
	}
	return r
}

// Write prints r as plain text.
func (r Report) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "tweets\t%d\n", r.Total)
	fmt.Fprintf(tw, "unlabeled\t%d\n", r.Unlabeled)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "source\ttweets\tquotes (false/true)\tmean all caps")
	for _, s := range r.Sources {
		fmt.Fprintf(tw, "%s\t%d\t%d/%d\t%.2f\n", s.Label, s.Tweets, s.NotQuotes, s.Quotes, s.MeanAllCaps)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, s := range r.Sources {
		fmt.Fprintf(w, "\n%s hashtags:\n", s.Label)
		writeCounts(w, s.TopHashtags)
		fmt.Fprintf(w, "%s mentions:\n", s.Label)
		writeCounts(w, s.TopMentions)
		fmt.Fprintf(w, "%s tweets per hour (UTC): %v\n", s.Label, s.Hours)
	}
	return nil
}

func writeCounts(w io.Writer, counts []analysis.KeyCount) {
	if len(counts) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, c := range counts {
		fmt.Fprintf(w, "  %s : %d\n", c.Key, c.Count)
	}
}
