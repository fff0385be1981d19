package dto

// FeedResponse is one page of a feed plus the metadata needed to render
// previous/next controls.
type FeedResponse struct {
	Posts      []PostResponse `json:"posts"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Count      int            `json:"count"`
	HasPrev    bool           `json:"has_prev"`
	HasNext    bool           `json:"has_next"`
}

type GroupFeedResponse struct {
	Group GroupResponse `json:"group"`
	FeedResponse
}

// ProfileResponse is an author page: the header fields plus one page of
// the author's posts. Following is present only for authenticated viewers.
type ProfileResponse struct {
	Username  string `json:"username"`
	PostCount int    `json:"post_count"`
	Following *bool  `json:"following,omitempty"`
	FeedResponse
}
