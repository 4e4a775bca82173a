package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// foreignKeyViolation is the Postgres error code raised when an insert
// references a missing row. The comments table constraints act as the
// backstop for the window between the existence checks and the insert.
const foreignKeyViolation = "23503"

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// ListForArticle retrieves the comments for an article, newest first. The
// article must exist; an article with zero comments yields an empty slice.
func (r *commentRepo) ListForArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	exists, err := r.articleExists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Article not found")
	}

	query := `
		SELECT comment_id, votes, created_at, author, body, article_id
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(&c.CommentID, &c.Votes, &c.CreatedAt, &c.Author, &c.Body, &c.ArticleID)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Insert creates a comment against an article. The guards run cheapest first
// and each produces its own outcome: empty body, missing article, missing
// user. Votes start at zero and created_at is assigned by the database.
func (r *commentRepo) Insert(ctx context.Context, articleID int, username, body string) (*models.Comment, error) {
	if body == "" {
		return nil, apperr.MissingField("Missing fields: username and body are required!")
	}

	articleExists, err := r.articleExists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !articleExists {
		return nil, apperr.NotFound("Article not found")
	}

	var userExists bool
	err = r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username).Scan(&userExists)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, apperr.NotFound("User not found")
	}

	query := `
		INSERT INTO comments (author, body, article_id)
		VALUES ($1, $2, $3)
		RETURNING comment_id, votes, created_at, author, body, article_id
	`
	var comment models.Comment
	err = r.db.QueryRowContext(ctx, query, username, body, articleID).Scan(
		&comment.CommentID, &comment.Votes, &comment.CreatedAt,
		&comment.Author, &comment.Body, &comment.ArticleID,
	)
	if err != nil {
		// The article or user may have been deleted between the checks
		// above and the insert; the constraint catches that window.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == foreignKeyViolation {
			return nil, apperr.NotFound("Article not found")
		}
		return nil, err
	}

	return &comment, nil
}

// Delete removes a single comment by id. The bool reports whether a row
// matched; the caller maps a miss to its not-found response.
func (r *commentRepo) Delete(ctx context.Context, commentID int) (bool, error) {
	var articleID int
	err := r.db.QueryRowContext(ctx,
		"DELETE FROM comments WHERE comment_id = $1 RETURNING article_id", commentID,
	).Scan(&articleID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *commentRepo) articleExists(ctx context.Context, articleID int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)", articleID).Scan(&exists)
	return exists, err
}
