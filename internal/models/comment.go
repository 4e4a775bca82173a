package models

import (
	"time"
)

// Comment represents a comment posted against an article
type Comment struct {
	CommentID int       `json:"comment_id" db:"comment_id"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	ArticleID int       `json:"article_id" db:"article_id"`
}
