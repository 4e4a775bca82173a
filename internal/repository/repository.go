package repository

import (
	"context"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/validation"
)

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	GetAll(ctx context.Context) ([]models.Topic, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	Exists(ctx context.Context, username string) (bool, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	GetByID(ctx context.Context, id int) (*models.Article, error)
	List(ctx context.Context, q validation.ListingQuery) ([]models.ArticleSummary, error)
	UpdateVotes(ctx context.Context, id int, delta int) (*models.Article, error)
	Exists(ctx context.Context, id int) (bool, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListForArticle(ctx context.Context, articleID int) ([]models.Comment, error)
	Insert(ctx context.Context, articleID int, username, body string) (*models.Comment, error)
	Delete(ctx context.Context, commentID int) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Topic   TopicRepository
	User    UserRepository
	Article ArticleRepository
	Comment CommentRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Topic:   NewTopicRepo(db),
		User:    NewUserRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
	}
}
