package upbank

import (
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// NotAuthorizedError indicates the API rejected the bearer token.
type NotAuthorizedError struct {
	Detail string
}

func (e *NotAuthorizedError) Error() string {
	if e.Detail == "" {
		return "up: not authorized"
	}
	return fmt.Sprintf("up: not authorized: %s", e.Detail)
}

// APIError is any non-2xx response from the API other than an
// authorization failure.
type APIError struct {
	StatusCode int
	Status     string
	Title      string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Title == "" {
		return fmt.Sprintf("up: request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("up: %s (%d): %s", e.Title, e.StatusCode, e.Detail)
}

// errorFromResponse classifies a failed response using the JSON:API error
// body. Bodies that are not JSON still produce a usable APIError.
func errorFromResponse(statusCode int, body []byte) error {
	first := gjson.GetBytes(body, "errors.0")
	detail := first.Get("detail").String()
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		return &NotAuthorizedError{Detail: detail}
	}
	return &APIError{
		StatusCode: statusCode,
		Status:     first.Get("status").String(),
		Title:      first.Get("title").String(),
		Detail:     detail,
	}
}
