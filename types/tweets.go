package types

// CreatedAtLayout is the timeline API's created_at format.
const CreatedAtLayout = "Mon Jan 02 15:04:05 -0700 2006"

// Tweet is one record of an account's history as returned by the timeline API.
// Records are never modified after they are fetched.
type Tweet struct {
	ID            string `json:"id"`
	CreatedAt     string `json:"created_at"`
	Text          string `json:"text"`
	Lang          string `json:"lang"`
	Retweeted     bool   `json:"retweeted"`
	Source        string `json:"source"`
	FavoriteCount int    `json:"favorite_count"`
	RetweetCount  int    `json:"retweet_count"`
}

// ProcessedTweetResult joins a pipeline output back to the tweet it came from.
type ProcessedTweetResult struct {
	TweetID   string          `json:"tweetId"`
	Processed *ProcessedTweet `json:"processed,omitempty"`
	Error     string          `json:"error,omitempty"`
	Err       error           `json:"-"`
}
