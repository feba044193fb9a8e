package pipeline

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"go-tweetlab/types"
)

// DefaultWorkers is used by ProcessBatch when workers <= 0.
const DefaultWorkers = 4

// ProcessBatch runs every tweet through the pipeline with a bounded number of
// workers. Tweets are independent; results come back in input order, each
// carrying the tweet id and either the output or the error. Tweets not yet
// started when ctx is cancelled get ctx's error.
func (p *Pipeline) ProcessBatch(ctx context.Context, tweets []types.Tweet, workers int) []types.ProcessedTweetResult {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	results := make([]types.ProcessedTweetResult, len(tweets))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.processOne(ctx, tweets[i])
			}
		}()
	}

	for i := range tweets {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	zap.S().Infof("Processed %d tweets (%d failed) with %d workers", len(tweets), failed, workers)
	return results
}

func (p *Pipeline) processOne(ctx context.Context, tweet types.Tweet) types.ProcessedTweetResult {
	result := types.ProcessedTweetResult{TweetID: tweet.ID}
	if err := ctx.Err(); err != nil {
		result.Err = err
		result.Error = err.Error()
		return result
	}

	processed, err := p.Process(ctx, tweet.Text)
	if err != nil {
		zap.S().Warnf("Error processing tweet %s: %v", tweet.ID, err)
		result.Err = err
		result.Error = err.Error()
		return result
	}
	result.Processed = processed
	return result
}
