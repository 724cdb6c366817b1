// Package listing holds the list-page mechanics shared by every console
// page: query parsing, substring search and slice pagination.
package listing

import (
	"strconv"
	"strings"

	"cortesec-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
)

const (
	DefaultPageSize = 15
	MaxPageSize     = 200
)

type Query struct {
	Search   string
	Page     int
	PageSize int
	// Active is nil when the page shows both active and inactive rows.
	Active *bool
}

// ParseQuery reads search, activo, page and page_size from the request.
func ParseQuery(c *gin.Context) Query {
	q := Query{
		Search:   strings.TrimSpace(c.Query("search")),
		Page:     1,
		PageSize: DefaultPageSize,
	}

	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && page > 0 {
		q.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize))); err == nil && size > 0 {
		q.PageSize = size
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}

	if v, ok := c.GetQuery("activo"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			q.Active = &b
		}
	}
	return q
}

// Matches reports whether search is a case-insensitive substring of any field.
func Matches(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	// Casers are stateful; one per call.
	folder := cases.Fold()
	needle := folder.String(search)
	for _, f := range fields {
		if strings.Contains(folder.String(f), needle) {
			return true
		}
	}
	return false
}

// Filter keeps the items for which keep returns true.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Search applies the substring search over the fields returned by fields.
func Search[T any](items []T, search string, fields func(T) []string) []T {
	if search == "" {
		return items
	}
	return Filter(items, func(it T) bool {
		return Matches(search, fields(it)...)
	})
}

// Paginate slices items for the requested page. Pages past the end return
// an empty slice with the meta still describing the full set.
func Paginate[T any](items []T, page, pageSize int) ([]T, response.PaginationMeta) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	meta := response.NewPaginationMeta(int64(total), page, pageSize)
	return items[start:end], meta
}

// Apply runs the activo filter, the search and the pagination in order.
func Apply[T any](items []T, q Query, fields func(T) []string, active func(T) bool) ([]T, response.PaginationMeta) {
	if q.Active != nil && active != nil {
		want := *q.Active
		items = Filter(items, func(it T) bool { return active(it) == want })
	}
	items = Search(items, q.Search, fields)
	return Paginate(items, q.Page, q.PageSize)
}
