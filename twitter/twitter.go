// Package twitter pulls an account's history from the v1.1 user timeline
// endpoint.
package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dghubble/oauth1"
	"go.uber.org/zap"

	"go-tweetlab/credentials"
	"go-tweetlab/errs"
	"go-tweetlab/types"
)

const (
	DefaultBaseURL = "https://api.twitter.com/1.1"
	timelinePath   = "/statuses/user_timeline.json"

	// PageSize is the largest count the endpoint accepts.
	PageSize = 200
	// MaxPages bounds a crawl; 17 full pages reach the ~3200 tweet API limit.
	MaxPages = 17
)

type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient signs every request with the OAuth1 keys in creds.
func NewClient(creds *credentials.Credentials) *Client {
	return newSignedClient(DefaultBaseURL, creds)
}

func newSignedClient(baseURL string, creds *credentials.Credentials) *Client {
	config := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessTokenSecret)
	return NewClientWithHTTP(baseURL, config.Client(oauth1.NoContext, token))
}

// NewClientWithHTTP uses httpClient as is against baseURL.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{http: httpClient, baseURL: baseURL}
}

// status is the subset of the API's tweet object we keep.
type status struct {
	ID            int64  `json:"id"`
	IDStr         string `json:"id_str"`
	CreatedAt     string `json:"created_at"`
	Text          string `json:"text"`
	FullText      string `json:"full_text"`
	Lang          string `json:"lang"`
	Retweeted     bool   `json:"retweeted"`
	Source        string `json:"source"`
	FavoriteCount int    `json:"favorite_count"`
	RetweetCount  int    `json:"retweet_count"`
}

func (s status) tweet() types.Tweet {
	id := s.IDStr
	if id == "" {
		id = strconv.FormatInt(s.ID, 10)
	}
	text := s.Text
	if text == "" {
		text = s.FullText
	}
	return types.Tweet{
		ID:            id,
		CreatedAt:     s.CreatedAt,
		Text:          text,
		Lang:          s.Lang,
		Retweeted:     s.Retweeted,
		Source:        s.Source,
		FavoriteCount: s.FavoriteCount,
		RetweetCount:  s.RetweetCount,
	}
}

// Page is one timeline response. Oldest is the smallest id seen, zero when
// the page is empty.
type Page struct {
	Tweets []types.Tweet
	Oldest int64
}

// TimelinePage fetches up to PageSize tweets of screenName older than or
// equal to maxID. A zero maxID starts from the newest tweet. Retweets are
// excluded.
func (c *Client) TimelinePage(ctx context.Context, screenName string, maxID int64) (*Page, error) {
	q := url.Values{}
	q.Set("screen_name", screenName)
	q.Set("count", strconv.Itoa(PageSize))
	q.Set("include_rts", "false")
	if maxID > 0 {
		q.Set("max_id", strconv.FormatInt(maxID, 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+timelinePath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errs.WrapExternal(err, "building timeline request")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.WrapExternal(err, "requesting timeline for %s", screenName)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errs.External("timeline for %s: status %d: %s", screenName, resp.StatusCode, body)
	}

	var statuses []status
	if err := json.NewDecoder(resp.Body).Decode(&statuses); err != nil {
		return nil, errs.WrapExternal(err, "decoding timeline for %s", screenName)
	}

	page := &Page{Tweets: make([]types.Tweet, 0, len(statuses))}
	for _, s := range statuses {
		page.Tweets = append(page.Tweets, s.tweet())
		if page.Oldest == 0 || (s.ID > 0 && s.ID < page.Oldest) {
			page.Oldest = s.ID
		}
	}
	return page, nil
}

// UserTimeline walks pages backwards with max_id until a page comes back
// empty or MaxPages pages were read.
func (c *Client) UserTimeline(ctx context.Context, screenName string) ([]types.Tweet, error) {
	var tweets []types.Tweet
	var maxID int64
	for i := 0; i < MaxPages; i++ {
		page, err := c.TimelinePage(ctx, screenName, maxID)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		if len(page.Tweets) == 0 || page.Oldest <= 0 {
			break
		}
		tweets = append(tweets, page.Tweets...)
		maxID = page.Oldest - 1
	}
	zap.S().Infof("Fetched %d tweets for %s", len(tweets), screenName)
	return tweets, nil
}
