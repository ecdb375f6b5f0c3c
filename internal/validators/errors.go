package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName          = errors.New("name is required")
	ErrEmptyEmail         = errors.New("email is required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrEmptyPassword      = errors.New("password is required")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	ErrEmptyRefreshToken  = errors.New("refresh token is required")
	ErrEmptyEntryID       = errors.New("entry id is required")
	ErrEmptyTitle         = errors.New("title is required")
	ErrInvalidContentType = errors.New("content type must be 'movie' or 'tv-show'")
	ErrNegativeRuntime    = errors.New("runtime must not be negative")
	ErrEmptyRating        = errors.New("rating is required")
	ErrInvalidRating      = errors.New("rating must be an integer between 0 and 5")
	ErrEmptyReview        = errors.New("review is required")
	ErrNULCharacter       = errors.New("text must not contain NUL characters")
)
