package client

import "fmt"

// APIError is a non-2xx answer from the movies API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("movies api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("movies api: status %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether a later retry by the user might succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= 500
}
