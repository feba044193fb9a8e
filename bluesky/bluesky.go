// Package bluesky reads an account's posts from the public Bluesky AppView
// and turns them into tweet records.
package bluesky

import (
	"context"
	"net/http"
	"time"

	"github.com/bluesky-social/indigo/xrpc"
	"go.uber.org/zap"

	"go-tweetlab/errs"
	"go-tweetlab/types"
)

const (
	// DefaultHost is the public AppView, no auth needed.
	DefaultHost = "https://public.api.bsky.app"

	// Source is the source field given to every converted post.
	Source = "Bluesky"

	authorFeedMethod = "app.bsky.feed.getAuthorFeed"
	repostReason     = "app.bsky.feed.defs#reasonRepost"
	maxPageSize      = 100
)

type Client struct {
	xrpc *xrpc.Client
}

// NewClient returns a client for host. An empty host means DefaultHost.
func NewClient(host string, httpClient *http.Client) *Client {
	if host == "" {
		host = DefaultHost
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{xrpc: &xrpc.Client{Client: httpClient, Host: host}}
}

// AuthorFeed fetches one page of actor's feed.
func (c *Client) AuthorFeed(ctx context.Context, actor string, limit int, cursor string) (*types.FeedResponse, error) {
	params := map[string]interface{}{
		"actor": actor,
		"limit": limit,
	}
	if cursor != "" {
		params["cursor"] = cursor
	}

	var out types.FeedResponse
	if err := c.xrpc.Do(ctx, xrpc.Query, "json", authorFeedMethod, params, nil, &out); err != nil {
		return nil, errs.WrapExternal(err, "fetching feed for %s", actor)
	}
	return &out, nil
}

// FetchTweets pages through actor's feed until max posts are collected or
// the feed runs out.
func (c *Client) FetchTweets(ctx context.Context, actor string, max int) ([]types.Tweet, error) {
	var tweets []types.Tweet
	cursor := ""
	for len(tweets) < max {
		limit := max - len(tweets)
		if limit > maxPageSize {
			limit = maxPageSize
		}
		page, err := c.AuthorFeed(ctx, actor, limit, cursor)
		if err != nil {
			return nil, err
		}
		for _, entry := range page.Feed {
			tweets = append(tweets, ToTweet(entry))
		}
		if len(page.Feed) == 0 || page.Cursor == "" {
			break
		}
		cursor = page.Cursor
	}
	if len(tweets) > max {
		tweets = tweets[:max]
	}
	zap.S().Infof("Fetched %d posts for %s", len(tweets), actor)
	return tweets, nil
}

// ToTweet converts a feed entry into a tweet record. The post uri is the id
// and reposts are flagged as retweeted.
func ToTweet(entry types.FeedEntry) types.Tweet {
	post := entry.Post
	tweet := types.Tweet{
		ID:            post.URI,
		CreatedAt:     convertTime(post.Record.CreatedAt),
		Text:          post.Record.Text,
		Retweeted:     entry.Reason != nil && entry.Reason.Type == repostReason,
		Source:        Source,
		FavoriteCount: post.LikeCount,
		RetweetCount:  post.RepostCount,
	}
	if len(post.Record.Langs) > 0 {
		tweet.Lang = post.Record.Langs[0]
	}
	return tweet
}

// convertTime rewrites an RFC 3339 timestamp in the timeline layout. Values
// that do not parse are kept as they are.
func convertTime(createdAt string) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return t.Format(types.CreatedAtLayout)
}
