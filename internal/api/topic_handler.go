package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
)

// TopicHandler handles topic endpoints
type TopicHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(repos *repository.Repositories, log zerolog.Logger) *TopicHandler {
	return &TopicHandler{
		repos: repos,
		log:   log.With().Str("handler", "topics").Logger(),
	}
}

// GetTopics handles GET /api/topics
func (h *TopicHandler) GetTopics(c *gin.Context) {
	topics, err := h.repos.Topic.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics})
}
