package models

import (
	"time"
)

// Article represents a single article with its aggregated comment count.
// CommentCount is computed with a LEFT JOIN at query time, never stored.
type Article struct {
	ArticleID     int       `json:"article_id" db:"article_id"`
	Author        string    `json:"author" db:"author"`
	Title         string    `json:"title" db:"title"`
	Body          string    `json:"body" db:"body"`
	Topic         string    `json:"topic" db:"topic"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  int       `json:"comment_count" db:"comment_count"`
}

// ArticleSummary is the listing projection of an article. The body column is
// excluded from list views, so it has no field here.
type ArticleSummary struct {
	ArticleID     int       `json:"article_id" db:"article_id"`
	Author        string    `json:"author" db:"author"`
	Title         string    `json:"title" db:"title"`
	Topic         string    `json:"topic" db:"topic"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  int       `json:"comment_count" db:"comment_count"`
}
