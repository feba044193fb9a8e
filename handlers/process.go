package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-tweetlab/analysis"
	"go-tweetlab/types"
)

// TextProcessor is the part of pipeline.Pipeline the handlers use.
type TextProcessor interface {
	Process(ctx context.Context, rawText string) (*types.ProcessedTweet, error)
	ProcessBatch(ctx context.Context, tweets []types.Tweet, workers int) []types.ProcessedTweetResult
}

type textRequest struct {
	Text   string `json:"text" binding:"required"`
	Source string `json:"source"`
}

func bindText(c *gin.Context) (textRequest, bool) {
	var request textRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return request, false
	}
	return request, true
}

// ProcessText runs the tagging pipeline on one raw tweet text.
func ProcessText(c *gin.Context, p TextProcessor) {
	request, ok := bindText(c)
	if !ok {
		return
	}

	processed, err := p.Process(c.Request.Context(), request.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requestId": requestID(c), "result": processed})
}

// AnalyzeText returns the hashtags, mentions, caps ratio, quote flag and
// source label of one text.
func AnalyzeText(c *gin.Context, labeler *analysis.SourceLabeler) {
	request, ok := bindText(c)
	if !ok {
		return
	}
	stats := analysis.Stats(request.Text, request.Source, labeler)
	c.JSON(http.StatusOK, gin.H{"requestId": requestID(c), "stats": stats})
}
