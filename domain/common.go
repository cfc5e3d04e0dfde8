package domain

import (
	"errors"
	"fmt"
)

const (
	RoleAdmin = "admin"

	DateLayout = "2006-01-02"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MesaageUserNotAllowed       = "user not allowed"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")

	ErrNotFound       = errors.New("not found")
	ErrBackupNotFound = errors.New("backup file not found")
)

// NotFoundError reports a reference that does not resolve. It matches
// ErrNotFound with errors.Is.
type NotFoundError struct {
	Kind string
	ID   string
}

func NewNotFound(kind string, id fmt.Stringer) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id.String()}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ImportResult is returned by every backup import.
type ImportResult struct {
	Message string `json:"message"`
	Created int    `json:"created"`
	Updated int    `json:"updated"`
	Skipped int    `json:"skipped"`
}

type ExportResult struct {
	Message string `json:"message"`
	Key     string `json:"key"`
	URL     string `json:"url"`
	Count   int    `json:"count"`
}
