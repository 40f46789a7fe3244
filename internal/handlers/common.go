package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"carebridge-server/internal/store"
	"carebridge-server/internal/utils"
)

// listParams are the query parameters shared by every collection listing:
// free-text search, sort order, and the pagination window.
type listParams struct {
	Search string
	Sort   store.SortOrder
	Page   int
	Limit  int
}

func parseListParams(c *gin.Context, defaultLimit int) listParams {
	p := listParams{
		Search: c.Query("search"),
		Sort:   store.SortAsc,
		Page:   1,
		Limit:  defaultLimit,
	}
	if c.Query("sort") == string(store.SortDesc) {
		p.Sort = store.SortDesc
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		p.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		p.Limit = limit
	}
	return p
}

// pagedResponse wraps one page of a filtered collection. The reported page
// is the clamped one, so an out-of-range request echoes the page actually
// served.
func pagedResponse[T any](items []T, params listParams, totalItems int) gin.H {
	window, totalPages := store.Paginate(items, params.Page, params.Limit)
	page := params.Page
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return gin.H{
		"items":      window,
		"page":       page,
		"totalPages": totalPages,
		"totalItems": totalItems,
	}
}

// respondStoreError maps store errors onto the response envelope:
// ErrNotFound to 404, enum violations to 400, anything else to 500.
func respondStoreError(c *gin.Context, err error) {
	var validationErr *store.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.As(err, &validationErr):
		utils.BadRequest(c, err.Error())
	default:
		utils.InternalServerError(c, err.Error())
	}
}
