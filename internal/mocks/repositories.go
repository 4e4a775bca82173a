package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/models"
	"github.com/news-api/internal/validation"
)

// MockTopicRepository is a mock implementation of repository.TopicRepository
type MockTopicRepository struct {
	Topics   []models.Topic
	ForceErr error
}

func NewMockTopicRepository() *MockTopicRepository {
	return &MockTopicRepository{}
}

func (m *MockTopicRepository) GetAll(ctx context.Context) ([]models.Topic, error) {
	if m.ForceErr != nil {
		return nil, m.ForceErr
	}
	topics := []models.Topic{}
	topics = append(topics, m.Topics...)
	return topics, nil
}

func (m *MockTopicRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.ForceErr != nil {
		return false, m.ForceErr
	}
	for _, t := range m.Topics {
		if t.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	Users    map[string]models.User
	ForceErr error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]models.User)}
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	if m.ForceErr != nil {
		return nil, m.ForceErr
	}
	users := []models.User{}
	for _, u := range m.Users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	if m.ForceErr != nil {
		return false, m.ForceErr
	}
	_, ok := m.Users[username]
	return ok, nil
}

// MockArticleRepository is a mock implementation of
// repository.ArticleRepository. List mimics the SQL ordering and the
// topic-existence fallback so handler tests can exercise both.
type MockArticleRepository struct {
	Articles map[int]*models.Article
	Topics   *MockTopicRepository
	ForceErr error
}

func NewMockArticleRepository(topics *MockTopicRepository) *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[int]*models.Article),
		Topics:   topics,
	}
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	if m.ForceErr != nil {
		return nil, m.ForceErr
	}
	article, ok := m.Articles[id]
	if !ok {
		return nil, apperr.NotFound("Article not found")
	}
	copied := *article
	return &copied, nil
}

func (m *MockArticleRepository) List(ctx context.Context, q validation.ListingQuery) ([]models.ArticleSummary, error) {
	if m.ForceErr != nil {
		return nil, m.ForceErr
	}

	summaries := []models.ArticleSummary{}
	for _, a := range m.Articles {
		if q.Topic != "" && a.Topic != q.Topic {
			continue
		}
		summaries = append(summaries, models.ArticleSummary{
			ArticleID:     a.ArticleID,
			Author:        a.Author,
			Title:         a.Title,
			Topic:         a.Topic,
			CreatedAt:     a.CreatedAt,
			Votes:         a.Votes,
			ArticleImgURL: a.ArticleImgURL,
			CommentCount:  a.CommentCount,
		})
	}

	if q.Topic != "" && len(summaries) == 0 {
		exists, err := m.Topics.SlugExists(ctx, q.Topic)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperr.NotFound("Topic not found")
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		less := summaryLess(summaries[i], summaries[j], q.SortBy)
		if q.Order == "desc" {
			return !less && !summaryEqual(summaries[i], summaries[j], q.SortBy)
		}
		return less
	})

	return summaries, nil
}

func (m *MockArticleRepository) UpdateVotes(ctx context.Context, id int, delta int) (*models.Article, error) {
	if m.ForceErr != nil {
		return nil, m.ForceErr
	}
	article, ok := m.Articles[id]
	if !ok {
		return nil, apperr.NotFound("Article not found")
	}
	article.Votes += delta
	copied := *article
	return &copied, nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id int) (bool, error) {
	if m.ForceErr != nil {
		return false, m.ForceErr
	}
	_, ok := m.Articles[id]
	return ok, nil
}

func summaryLess(a, b models.ArticleSummary, sortBy string) bool {
	switch sortBy {
	case "article_id":
		return a.ArticleID < b.ArticleID
	case "title":
		return a.Title < b.Title
	case "topic":
		return a.Topic < b.Topic
	case "author":
		return a.Author < b.Author
	case "votes":
		return a.Votes < b.Votes
	case "comment_count":
		return a.CommentCount < b.CommentCount
	default:
		return a.CreatedAt.Before(b.CreatedAt)
	}
}

func summaryEqual(a, b models.ArticleSummary, sortBy string) bool {
	return !summaryLess(a, b, sortBy) && !summaryLess(b, a, sortBy)
}

// MockCommentRepository is a mock implementation of
// repository.CommentRepository. Article and user existence checks go through
// the sibling mocks, mirroring how the real repository consults those tables.
type MockCommentRepository struct {
	Comments map[int]models.Comment
	Articles *MockArticleRepository
	Users    *MockUserRepository
	NextID   int
	ForceErr error
}

func NewMockCommentRepository(articles *MockArticleRepository, users *MockUserRepository) *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[int]models.Comment),
		Articles: articles,
		Users:    users,
		NextID:   1,
	}
}

func (m *MockCommentRepository) ListForArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	if m.ForceErr != nil {
		return nil, m.ForceErr
	}
	exists, err := m.Articles.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Article not found")
	}

	comments := []models.Comment{}
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *MockCommentRepository) Insert(ctx context.Context, articleID int, username, body string) (*models.Comment, error) {
	if m.ForceErr != nil {
		return nil, m.ForceErr
	}
	if body == "" {
		return nil, apperr.MissingField("Missing fields: username and body are required!")
	}

	articleExists, err := m.Articles.Exists(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !articleExists {
		return nil, apperr.NotFound("Article not found")
	}

	userExists, err := m.Users.Exists(ctx, username)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, apperr.NotFound("User not found")
	}

	comment := models.Comment{
		CommentID: m.NextID,
		Votes:     0,
		CreatedAt: time.Now(),
		Author:    username,
		Body:      body,
		ArticleID: articleID,
	}
	m.NextID++
	m.Comments[comment.CommentID] = comment
	return &comment, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentID int) (bool, error) {
	if m.ForceErr != nil {
		return false, m.ForceErr
	}
	if _, ok := m.Comments[commentID]; !ok {
		return false, nil
	}
	delete(m.Comments, commentID)
	return true, nil
}
