package domain

import (
	"errors"

	"github.com/google/uuid"
)

const (
	DateFormat = "2006-01-02"
	AppName    = "matrafl"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageInternalError        = "something went wrong, please try again later"

	// Error kinds. Every error returned by a service unwraps to at most one of these.
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidReference = errors.New("invalid consumable reference")
	ErrConflict         = errors.New("conflict")
	ErrCredential       = errors.New("credential error")
	ErrInvalidInput     = errors.New("invalid input")

	ErrInvalidDate     = NewError(ErrInvalidInput, "invalid date, expected YYYY-MM-DD")
	ErrInvalidQuantity = NewError(ErrInvalidInput, "quantity must be positive")
	ErrInvalidUserID   = NewError(ErrUnauthorized, "invalid user id")
)

// Error is a user-facing error message tagged with its kind.
type Error struct {
	Kind    error
	Message string
}

func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// ParseUserID parses the user id carried by a resolved session.
func ParseUserID(userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, ErrInvalidUserID
	}
	return id, nil
}

// IsValidID reports whether id can name a stored row. Malformed ids are
// treated as not found rather than sent to the database.
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
