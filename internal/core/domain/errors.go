package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUsernameTaken = errors.New("username already taken")
var ErrPostNotFound = errors.New("post not found")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrSessionNotFound = errors.New("session not found")

// FieldError reports a validation or business-rule failure tied to a single
// input field. It is returned as data, never as a transport-level error.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
