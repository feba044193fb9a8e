// Package export writes tweet records to the flat CSV file the analysis side
// reads back.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"go-tweetlab/errs"
	"go-tweetlab/types"
)

// Field names, matching the API's tweet object keys.
const (
	FieldID            = "id"
	FieldCreatedAt     = "created_at"
	FieldRetweeted     = "retweeted"
	FieldSource        = "source"
	FieldText          = "text"
	FieldLang          = "lang"
	FieldFavoriteCount = "favorite_count"
	FieldRetweetCount  = "retweet_count"
)

// DefaultFields is the column set and order of an export.
var DefaultFields = []string{
	FieldID, FieldCreatedAt, FieldRetweeted, FieldSource,
	FieldText, FieldLang, FieldFavoriteCount, FieldRetweetCount,
}

// Options tunes WriteCSV.
type Options struct {
	// ASCIIOnly drops every non-ASCII rune from the values. Off by default.
	ASCIIOnly bool
}

// Record is one tweet projected to a set of fields.
type Record map[string]string

func fieldValue(t types.Tweet, field string) (string, bool) {
	switch field {
	case FieldID:
		return t.ID, true
	case FieldCreatedAt:
		return t.CreatedAt, true
	case FieldRetweeted:
		return strconv.FormatBool(t.Retweeted), true
	case FieldSource:
		return t.Source, true
	case FieldText:
		return t.Text, true
	case FieldLang:
		return t.Lang, true
	case FieldFavoriteCount:
		return strconv.Itoa(t.FavoriteCount), true
	case FieldRetweetCount:
		return strconv.Itoa(t.RetweetCount), true
	}
	return "", false
}

func checkFields(fields []string) error {
	if len(fields) == 0 {
		return errs.Configuration("export: no fields")
	}
	for _, f := range fields {
		if _, ok := fieldValue(types.Tweet{}, f); !ok {
			return errs.Configuration("export: unknown field %q", f)
		}
	}
	return nil
}

// KeepOnlyWantedCategories projects every tweet onto fields.
func KeepOnlyWantedCategories(tweets []types.Tweet, fields []string) ([]Record, error) {
	if err := checkFields(fields); err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(tweets))
	for _, t := range tweets {
		r := make(Record, len(fields))
		for _, f := range fields {
			r[f], _ = fieldValue(t, f)
		}
		records = append(records, r)
	}
	return records, nil
}

var nonASCII = runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII }))

// toASCII never fails the export: a value that cannot be transformed is
// written unchanged.
func toASCII(s string) string {
	out, _, err := transform.String(nonASCII, s)
	if err != nil {
		zap.S().Warnf("Keeping value as is, ASCII transform failed: %v", err)
		return s
	}
	return out
}

// WriteCSV writes a header row of fields and one row per tweet, in order.
func WriteCSV(w io.Writer, tweets []types.Tweet, fields []string, opts Options) error {
	records, err := KeepOnlyWantedCategories(tweets, fields)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(fields); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	row := make([]string, len(fields))
	for _, r := range records {
		for i, f := range fields {
			row[i] = r[f]
			if opts.ASCIIOnly {
				row[i] = toASCII(row[i])
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the export to path, creating its directory.
func WriteFile(path string, tweets []types.Tweet, fields []string, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := WriteCSV(f, tweets, fields, opts); err != nil {
		f.Close()
		return err
	}
	zap.S().Infof("Wrote %d tweets to %s", len(tweets), path)
	return f.Close()
}
