package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"moviebrowser/internal/domain"

	"github.com/gin-gonic/gin"
)

// MoviePager is the query side the movies endpoint depends on.
type MoviePager interface {
	GetPage(ctx context.Context, page int) (domain.PageResult, error)
}

// GetMovies serves GET /api/movies?page=0.
// An absent page means 0. Anything that is not a non-negative integer is a 400.
func GetMovies(svc MoviePager) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := parsePage(c.Query("page"))
		if err != nil {
			RespondDomainError(c, err)
			return
		}

		res, err := svc.GetPage(c.Request.Context(), page)
		if err != nil {
			RespondDomainError(c, err)
			return
		}

		c.JSON(http.StatusOK, res)
	}
}

// parsePage accepts only plain decimal digits; signs and spaces are rejected.
func parsePage(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	if strings.TrimLeft(raw, "0123456789") != "" {
		return 0, domain.ValidationError{Field: "page", Msg: "must be a non-negative integer"}
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationError{Field: "page", Msg: "must be a non-negative integer", Err: err}
	}
	if err := domain.ValidatePage(page); err != nil {
		return 0, err
	}
	return page, nil
}
