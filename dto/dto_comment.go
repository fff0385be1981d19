package dto

import "time"

type CreateCommentReq struct {
	Text string `json:"text"`
}

type CommentResponse struct {
	ID      string    `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`
}

type ListCommentsResp struct {
	Comments []CommentResponse `json:"comments"`
}
