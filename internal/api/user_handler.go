package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/repository"
	"github.com/rs/zerolog"
)

// UserHandler handles user endpoints
type UserHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(repos *repository.Repositories, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		repos: repos,
		log:   log.With().Str("handler", "users").Logger(),
	}
}

// GetUsers handles GET /api/users, usernames ascending
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.repos.User.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
