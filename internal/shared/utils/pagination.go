package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/shared/constants"
	"quickdesk/internal/shared/errors"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination parses the 1-indexed page parameter from the query string.
// A missing parameter defaults to page 1; a non-numeric or non-positive
// value is a client error. Page size is fixed per list surface, so only the
// page number is caller-controlled.
func ParsePagination(c *gin.Context, pageSize int) (Pagination, error) {
	page := constants.DefaultPage
	if val := c.Query("page"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return Pagination{}, errors.NewValidationError("page must be a number")
		}
		if n < 1 {
			return Pagination{}, errors.NewValidationError("page must be positive")
		}
		page = n
	}
	return Pagination{Page: page, PageSize: pageSize}, nil
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages == 0 {
		return 1
	}
	return pages
}
