package models

import "fmt"

// APIError is the error envelope the backend returns on non-2xx responses:
// {"status":"ko","error":"...","error_description":"..."}. The description is
// the human-readable message surfaced verbatim to the user.
type APIError struct {
	StatusCode  int    `json:"-"`
	Status      string `json:"status"`
	Err         string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return e.Description
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// ValidationError is the local form guard failing: required field missing or
// malformed email. No network call was made; Fields maps the offending field
// to its message so the UI can mark it touched.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }
