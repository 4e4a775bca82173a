package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/validation"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db     *database.DB
	topics TopicRepository
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db, topics: NewTopicRepo(db)}
}

// GetByID retrieves an article with its aggregated comment count
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	query := `
		SELECT articles.article_id, articles.author, articles.title, articles.body,
		       articles.topic, articles.created_at, articles.votes, articles.article_img_url,
		       COUNT(comments.comment_id) AS comment_count
		FROM articles
		LEFT JOIN comments ON articles.article_id = comments.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id
	`

	var article models.Article
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&article.ArticleID, &article.Author, &article.Title, &article.Body,
		&article.Topic, &article.CreatedAt, &article.Votes, &article.ArticleImgURL,
		&article.CommentCount,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("Article not found")
	}
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// listArticlesQuery builds the listing query for the resolved parameters.
// The sort column and direction come from the validation allow-lists, never
// raw request input; the topic filter is the only user-controlled value and
// is always bound as $1.
func listArticlesQuery(q validation.ListingQuery) (string, []interface{}) {
	// comment_count is an aggregate alias, everything else is a real column
	sortColumn := q.SortBy
	if sortColumn != "comment_count" {
		sortColumn = "articles." + q.SortBy
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT articles.article_id, articles.author, articles.title,
		       articles.topic, articles.created_at, articles.votes, articles.article_img_url,
		       COUNT(comments.comment_id) AS comment_count
		FROM articles
		LEFT JOIN comments ON articles.article_id = comments.article_id`)

	args := []interface{}{}
	if q.Topic != "" {
		sb.WriteString("\n\t\tWHERE articles.topic = $1")
		args = append(args, q.Topic)
	}

	sb.WriteString("\n\t\tGROUP BY articles.article_id")
	sb.WriteString(fmt.Sprintf("\n\t\tORDER BY %s %s", sortColumn, strings.ToUpper(q.Order)))

	return sb.String(), args
}

// List retrieves the article collection (without body) sorted and optionally
// filtered by topic. An empty result under a topic filter distinguishes a
// topic with no articles from a topic that does not exist.
func (r *articleRepo) List(ctx context.Context, q validation.ListingQuery) ([]models.ArticleSummary, error) {
	query, args := listArticlesQuery(q)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []models.ArticleSummary{}
	for rows.Next() {
		var a models.ArticleSummary
		err := rows.Scan(
			&a.ArticleID, &a.Author, &a.Title,
			&a.Topic, &a.CreatedAt, &a.Votes, &a.ArticleImgURL,
			&a.CommentCount,
		)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if q.Topic != "" && len(articles) == 0 {
		exists, err := r.topics.SlugExists(ctx, q.Topic)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperr.NotFound("Topic not found")
		}
	}

	return articles, nil
}

// UpdateVotes applies a signed delta to an article's vote count and returns
// the updated article. The increment happens in a single UPDATE so concurrent
// deltas against the same row serialize in the database, and no floor is
// enforced: totals may go negative.
func (r *articleRepo) UpdateVotes(ctx context.Context, id int, delta int) (*models.Article, error) {
	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, author, title, body, topic, created_at, votes, article_img_url
	`

	var article models.Article
	err := r.db.QueryRowContext(ctx, query, delta, id).Scan(
		&article.ArticleID, &article.Author, &article.Title, &article.Body,
		&article.Topic, &article.CreatedAt, &article.Votes, &article.ArticleImgURL,
	)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("Article not found")
	}
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM comments WHERE article_id = $1", id,
	).Scan(&article.CommentCount)
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// Exists checks if an article with the given id exists
func (r *articleRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)", id).Scan(&exists)
	return exists, err
}
