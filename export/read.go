package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"go-tweetlab/errs"
	"go-tweetlab/types"
)

// ReadCSV reads an export back. Columns are matched by header name; unknown
// columns are ignored and missing ones stay zero.
func ReadCSV(r io.Reader) ([]types.Tweet, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errs.Parse("export: missing header")
	}
	if err != nil {
		return nil, errs.WrapParse(err, "export: reading header")
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}

	var tweets []types.Tweet
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errs.WrapParse(err, "export: row %d", line)
		}
		t, err := rowTweet(row, cols)
		if err != nil {
			return nil, errs.WrapParse(err, "export: row %d", line)
		}
		tweets = append(tweets, t)
	}
	return tweets, nil
}

func rowTweet(row []string, cols map[string]int) (types.Tweet, error) {
	get := func(field string) (string, bool) {
		i, ok := cols[field]
		if !ok || i >= len(row) {
			return "", false
		}
		return row[i], true
	}

	var t types.Tweet
	t.ID, _ = get(FieldID)
	t.CreatedAt, _ = get(FieldCreatedAt)
	t.Source, _ = get(FieldSource)
	t.Text, _ = get(FieldText)
	t.Lang, _ = get(FieldLang)

	if v, ok := get(FieldRetweeted); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return t, fmt.Errorf("%s: %w", FieldRetweeted, err)
		}
		t.Retweeted = b
	}
	for field, dst := range map[string]*int{FieldFavoriteCount: &t.FavoriteCount, FieldRetweetCount: &t.RetweetCount} {
		if v, ok := get(field); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return t, fmt.Errorf("%s: %w", field, err)
			}
			*dst = n
		}
	}
	return t, nil
}

// ReadFile reads the export at path.
func ReadFile(path string) ([]types.Tweet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.WrapConfiguration(err, "opening export")
	}
	defer f.Close()
	return ReadCSV(f)
}
