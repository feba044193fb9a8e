package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-tweetlab/analysis"
	"go-tweetlab/types"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

// FeedSource fetches an account's posts as tweet records.
type FeedSource interface {
	FetchTweets(ctx context.Context, actor string, max int) ([]types.Tweet, error)
}

type feedItem struct {
	Tweet     types.Tweet           `json:"tweet"`
	Stats     types.TextStats       `json:"stats"`
	Processed *types.ProcessedTweet `json:"processed,omitempty"`
	Error     string                `json:"error,omitempty"`
}

// FetchBlueskyHandler pulls an actor's latest posts and runs every one of
// them through the pipeline.
func FetchBlueskyHandler(c *gin.Context, source FeedSource, p TextProcessor, labeler *analysis.SourceLabeler) {
	actor := c.Param("actor")

	limit := defaultFeedLimit
	if q := c.Query("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 || n > maxFeedLimit {
			respondError(c, fmt.Errorf("%w: limit must be between 1 and %d", errBadRequest, maxFeedLimit))
			return
		}
		limit = n
	}

	tweets, err := source.FetchTweets(c.Request.Context(), actor, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	results := p.ProcessBatch(c.Request.Context(), tweets, 0)
	items := make([]feedItem, len(tweets))
	for i, t := range tweets {
		items[i] = feedItem{
			Tweet:     t,
			Stats:     analysis.Stats(t.Text, t.Source, labeler),
			Processed: results[i].Processed,
			Error:     results[i].Error,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"requestId": requestID(c),
		"actor":     actor,
		"count":     len(items),
		"tweets":    items,
	})
}
