package types

// FeedResponse represents the root structure of an app.bsky.feed.getAuthorFeed response.
type FeedResponse struct {
	Cursor string      `json:"cursor"`
	Feed   []FeedEntry `json:"feed"`
}

// FeedEntry represents each post in the feed.
type FeedEntry struct {
	Post   Post        `json:"post"`
	Reason *FeedReason `json:"reason,omitempty"` // set when the author reposted someone else
}

// FeedReason explains why a post shows up in the feed.
type FeedReason struct {
	Type string `json:"$type"`
}

// Post represents the structure of an individual post.
type Post struct {
	Author      Author `json:"author"`
	CID         string `json:"cid"`
	IndexedAt   string `json:"indexedAt"`
	LikeCount   int    `json:"likeCount"`
	QuoteCount  int    `json:"quoteCount"`
	Record      Record `json:"record"`
	ReplyCount  int    `json:"replyCount"`
	RepostCount int    `json:"repostCount"`
	URI         string `json:"uri"`
}

// Author represents the author of a post.
type Author struct {
	DID         string `json:"did"`
	DisplayName string `json:"displayName"`
	Handle      string `json:"handle"`
}

// Record represents the content of a post.
type Record struct {
	Type      string   `json:"$type"`
	CreatedAt string   `json:"createdAt"`
	Facets    []Facet  `json:"facets,omitempty"`
	Langs     []string `json:"langs"`
	Text      string   `json:"text"`
}

// Facet represents features like tags or links in a post.
type Facet struct {
	Features []Feature `json:"features"`
	Index    Index     `json:"index"`
}

// Feature represents a tag or link feature in text.
type Feature struct {
	Type string `json:"$type"`
	Tag  string `json:"tag,omitempty"`
	URI  string `json:"uri,omitempty"`
}

// Index represents the position of a facet in text.
type Index struct {
	ByteStart int `json:"byteStart"`
	ByteEnd   int `json:"byteEnd"`
}
