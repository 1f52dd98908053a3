package domain

import "math"

// PageSize is the fixed number of movies per page. Callers cannot change it.
const PageSize = 25

// MaxPage bounds the page index so the row offset always fits a MySQL OFFSET.
const MaxPage = math.MaxInt32 / PageSize

// PageResult is one page of movies together with the size of the whole catalog.
type PageResult struct {
	TotalCount int64   `json:"totalMovies"`
	Items      []Movie `json:"movies"`
}

// Offset returns the first row index of the given zero-based page.
func Offset(page int) int64 {
	return int64(page) * PageSize
}

// LastPage is the highest page index navigation may reach for total rows.
// It is floor(total/PageSize), so a catalog whose size is an exact multiple of
// PageSize exposes a trailing empty page.
func LastPage(total int64) int {
	if total <= 0 {
		return 0
	}
	return int(total / PageSize)
}

// ValidatePage checks a requested page index.
func ValidatePage(page int) error {
	if page < 0 {
		return ValidationError{Field: "page", Msg: "must be a non-negative integer"}
	}
	if page > MaxPage {
		return ValidationError{Field: "page", Msg: "out of range"}
	}
	return nil
}
