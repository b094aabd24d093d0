package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Page struct {
	Page   int
	Limit  int
	Offset int
}

// FromQuery reads ?page= and ?limit=, falling back to defaults on bad input.
func FromQuery(c *gin.Context) Page {
	p := Page{Page: 1, Limit: DefaultLimit}

	if limit := c.Query("limit"); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil && val > 0 && val <= MaxLimit {
			p.Limit = val
		}
	}
	if page := c.Query("page"); page != "" {
		if val, err := strconv.Atoi(page); err == nil && val > 0 {
			p.Page = val
		}
	}
	p.Offset = (p.Page - 1) * p.Limit
	return p
}

// Meta is the pagination block of list responses.
func (p Page) Meta(total int64) gin.H {
	totalPages := (int(total) + p.Limit - 1) / p.Limit
	return gin.H{
		"page":        p.Page,
		"limit":       p.Limit,
		"total":       total,
		"total_pages": totalPages,
	}
}
