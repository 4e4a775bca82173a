package repository

import (
	"strings"
	"testing"

	"github.com/news-api/internal/validation"
)

func TestListArticlesQuery_Defaults(t *testing.T) {
	query, args := listArticlesQuery(validation.ListingQuery{SortBy: "created_at", Order: "desc"})

	if !strings.Contains(query, "ORDER BY articles.created_at DESC") {
		t.Errorf("expected default ordering, got:\n%s", query)
	}
	if strings.Contains(query, "WHERE") {
		t.Errorf("no topic filter should add no WHERE clause:\n%s", query)
	}
	if strings.Contains(query, "articles.body") {
		t.Errorf("listing projection must not select the body column:\n%s", query)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestListArticlesQuery_TopicBoundAsParameter(t *testing.T) {
	q := validation.ListingQuery{SortBy: "created_at", Order: "desc", Topic: "cats'; DROP TABLE articles;--"}
	query, args := listArticlesQuery(q)

	if !strings.Contains(query, "WHERE articles.topic = $1") {
		t.Errorf("topic must be a positional placeholder:\n%s", query)
	}
	if strings.Contains(query, "DROP TABLE") {
		t.Errorf("topic value leaked into query text:\n%s", query)
	}
	if len(args) != 1 || args[0] != q.Topic {
		t.Errorf("topic should be the only bound arg, got %v", args)
	}
}

func TestListArticlesQuery_SortColumnQualification(t *testing.T) {
	tests := []struct {
		sortBy string
		order  string
		want   string
	}{
		{sortBy: "votes", order: "asc", want: "ORDER BY articles.votes ASC"},
		{sortBy: "title", order: "desc", want: "ORDER BY articles.title DESC"},
		{sortBy: "author", order: "asc", want: "ORDER BY articles.author ASC"},
		// comment_count is the aggregate alias, not an articles column
		{sortBy: "comment_count", order: "desc", want: "ORDER BY comment_count DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy+"_"+tt.order, func(t *testing.T) {
			query, _ := listArticlesQuery(validation.ListingQuery{SortBy: tt.sortBy, Order: tt.order})
			if !strings.Contains(query, tt.want) {
				t.Errorf("expected %q in:\n%s", tt.want, query)
			}
		})
	}
}

func TestListArticlesQuery_Aggregation(t *testing.T) {
	query, _ := listArticlesQuery(validation.ListingQuery{SortBy: "created_at", Order: "desc"})

	for _, fragment := range []string{
		"COUNT(comments.comment_id) AS comment_count",
		"LEFT JOIN comments ON articles.article_id = comments.article_id",
		"GROUP BY articles.article_id",
	} {
		if !strings.Contains(query, fragment) {
			t.Errorf("expected %q in:\n%s", fragment, query)
		}
	}
}
