package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-api/internal/apperr"
	"github.com/news-api/internal/repository"
	"github.com/news-api/internal/validation"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(repos *repository.Repositories, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		repos: repos,
		log:   log.With().Str("handler", "comments").Logger(),
	}
}

// postCommentRequest is the POST body for a new comment
type postCommentRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// GetArticleComments handles GET /api/articles/:article_id/comments
func (h *CommentHandler) GetArticleComments(c *gin.Context) {
	articleID, err := validation.ArticleID(c.Param("article_id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	comments, err := h.repos.Comment.ListForArticle(c.Request.Context(), articleID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// PostArticleComment handles POST /api/articles/:article_id/comments
func (h *CommentHandler) PostArticleComment(c *gin.Context) {
	articleID, err := validation.ArticleID(c.Param("article_id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	var req postCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, apperr.MissingField("Missing fields: username and body are required!"))
		return
	}

	comment, err := h.repos.Comment.Insert(c.Request.Context(), articleID, req.Username, req.Body)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	h.log.Info().
		Int("article_id", articleID).
		Str("author", req.Username).
		Int("comment_id", comment.CommentID).
		Msg("Comment created")

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := validation.CommentID(c.Param("comment_id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	found, err := h.repos.Comment.Delete(c.Request.Context(), commentID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if !found {
		writeError(c, h.log, apperr.NotFound("Comment not found"))
		return
	}

	c.Status(http.StatusNoContent)
}
