package dto

import "time"

type CreatePostDTO struct {
	Text  string `json:"text"`
	Group string `json:"group,omitempty"` // group slug
	Image string `json:"image,omitempty"` // image URL
}

// UpdatePostDTO carries the mutable post fields. PubDate is not among
// them: it is set once at creation.
type UpdatePostDTO struct {
	Text  string `json:"text"`
	Group string `json:"group,omitempty"`
	Image string `json:"image,omitempty"`
}

type PostResponse struct {
	ID      string         `json:"id"`
	Author  string         `json:"author"`
	Text    string         `json:"text"`
	Group   *GroupResponse `json:"group,omitempty"`
	Image   string         `json:"image,omitempty"`
	PubDate time.Time      `json:"pub_date"`
}

type PostDetailResponse struct {
	PostResponse
	Comments []CommentResponse `json:"comments"`
}
