package repository

import (
	"context"

	"github.com/news-api/internal/database"
	"github.com/news-api/internal/models"
)

// topicRepo is the concrete implementation of TopicRepository
type topicRepo struct {
	db *database.DB
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(db *database.DB) TopicRepository {
	return &topicRepo{db: db}
}

// GetAll retrieves every topic
func (r *topicRepo) GetAll(ctx context.Context) ([]models.Topic, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT slug, description FROM topics")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	topics := []models.Topic{}
	for rows.Next() {
		var topic models.Topic
		if err := rows.Scan(&topic.Slug, &topic.Description); err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	return topics, rows.Err()
}

// SlugExists checks if a topic with the given slug exists
func (r *topicRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM topics WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}
