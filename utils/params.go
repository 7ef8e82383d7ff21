package utils

import (
	"net/http"
	"strconv"
	"strings"
)

type QueryOptions struct {
	Page     int
	Limit    int
	Location string
	Search   string
}

// DefaultPageSize matches the twelve-per-page grid of the list views.
const DefaultPageSize = 12

func ParseQueryOptions(r *http.Request) QueryOptions {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = DefaultPageSize
	}

	return QueryOptions{
		Page:     page,
		Limit:    limit,
		Location: q.Get("location"),
		Search:   q.Get("q"),
	}
}

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}
