package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInternal           = errors.New("internal server error")
)

// FieldErrors carries per-field validation messages back to the caller.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fe))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s %s", field, fe[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
