package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(repos *repository.Repositories, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		repos: repos,
		log:   log.With().Str("handler", "articles").Logger(),
	}
}

// patchArticleRequest is the PATCH body. IncVotes is a pointer so an absent
// field is distinguishable from a zero delta; a non-numeric value fails the
// bind instead of being coerced.
type patchArticleRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// GetArticles handles GET /api/articles with optional sort_by/order/topic
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	q, err := validation.ResolveListingQuery(
		c.Query("sort_by"), c.Query("order"), c.Query("topic"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	articles, err := h.repos.Article.List(c.Request.Context(), q)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticleByID handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticleByID(c *gin.Context) {
	id, err := validation.ArticleID(c.Param("article_id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	article, err := h.repos.Article.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// PatchArticleVotes handles PATCH /api/articles/:article_id
func (h *ArticleHandler) PatchArticleVotes(c *gin.Context) {
	id, err := validation.ArticleID(c.Param("article_id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	var req patchArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, apperr.MissingField("Invalid inc_votes: must be a number"))
		return
	}
	if req.IncVotes == nil {
		writeError(c, h.log, apperr.MissingField("Missing fields: inc_votes is required!"))
		return
	}

	article, err := h.repos.Article.UpdateVotes(c.Request.Context(), id, *req.IncVotes)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}
