package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/news-api/internal/apperr"
)

// validSortColumns is the fixed allow-list for the article listing sort_by
// parameter. The resolved column is interpolated into query text, so nothing
// outside this set may pass.
var validSortColumns = map[string]bool{
	"created_at":    true,
	"article_id":    true,
	"title":         true,
	"topic":         true,
	"author":        true,
	"votes":         true,
	"comment_count": true,
}

// ListingQuery is the normalized triple consumed by the article repository.
// Topic is empty when no filter was supplied; it is only ever bound as a
// query argument, never interpolated.
type ListingQuery struct {
	SortBy string
	Order  string
	Topic  string
}

// ArticleID parses a route-supplied article id token
func ArticleID(param string) (int, error) {
	return parseID(param, "Invalid article ID")
}

// CommentID parses a route-supplied comment id token
func CommentID(param string) (int, error) {
	return parseID(param, "Invalid comment ID")
}

func parseID(param, message string) (int, error) {
	id, err := strconv.Atoi(param)
	if err != nil {
		return 0, apperr.InvalidIdentifier(message)
	}
	return id, nil
}

// ResolveListingQuery validates and normalizes the optional article listing
// parameters. sort_by defaults to created_at, order to desc; order is
// case-insensitive.
func ResolveListingQuery(sortBy, order, topic string) (ListingQuery, error) {
	if sortBy == "" {
		sortBy = "created_at"
	}
	if !validSortColumns[sortBy] {
		return ListingQuery{}, apperr.InvalidSortColumn(
			fmt.Sprintf("Invalid sort column query: %s", sortBy))
	}

	if order == "" {
		order = "desc"
	}
	normalized := strings.ToLower(order)
	if normalized != "asc" && normalized != "desc" {
		return ListingQuery{}, apperr.InvalidOrder(
			fmt.Sprintf("Invalid order query: %s. Order can only be 'asc' or 'desc'.", order))
	}

	return ListingQuery{SortBy: sortBy, Order: normalized, Topic: topic}, nil
}
