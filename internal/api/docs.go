package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// endpointDoc describes one endpoint in the /api catalog
type endpointDoc struct {
	Description string   `json:"description"`
	Queries     []string `json:"queries"`
}

// endpointCatalog is the static documentation payload served at GET /api
var endpointCatalog = map[string]endpointDoc{
	"GET /api": {
		Description: "serves up a json representation of all the available endpoints of the api",
		Queries:     []string{},
	},
	"GET /api/topics": {
		Description: "serves an array of all topics",
		Queries:     []string{},
	},
	"GET /api/articles": {
		Description: "serves an array of all articles without their bodies, each with a comment count",
		Queries:     []string{"sort_by", "order", "topic"},
	},
	"GET /api/articles/:article_id": {
		Description: "serves a single article with its comment count",
		Queries:     []string{},
	},
	"GET /api/articles/:article_id/comments": {
		Description: "serves an array of comments for an article, newest first",
		Queries:     []string{},
	},
	"POST /api/articles/:article_id/comments": {
		Description: "adds a comment to an article and serves the created comment",
		Queries:     []string{},
	},
	"PATCH /api/articles/:article_id": {
		Description: "applies an inc_votes delta to an article and serves the updated article",
		Queries:     []string{},
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes a comment by id",
		Queries:     []string{},
	},
	"GET /api/users": {
		Description: "serves an array of all users sorted by username",
		Queries:     []string{},
	},
}

// getEndpoints handles GET /api
func getEndpoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": endpointCatalog})
}
