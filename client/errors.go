package client

import (
	"fmt"

	"viukon-cms/models"
)

// NetworkError means the request never produced a response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError is a non-2xx response.
type ServerError struct {
	Op         string
	StatusCode int
	Message    string
	Problems   []models.FieldError
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: server responded %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: server responded %d: %s", e.Op, e.StatusCode, e.Message)
}

// Temporary reports whether retrying later could succeed.
func (e *ServerError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}
