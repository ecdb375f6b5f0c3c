package validators

import (
	"context"
	"math"
	"strings"

	"github.com/MKhiriev/cinetrack/models"
)

const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldContentType = "content_type"
	FieldRuntime     = "runtime"
	FieldRating      = "rating"
	FieldReview      = "review"
	FieldPoster      = "poster"
)

// MaxRating is the highest star rating; 0 means "not rated".
const MaxRating = 5

// EntryValidator checks list entries after normalization, and the rating
// and review updates applied to them.
type EntryValidator struct{}

func NewEntryValidator() Validator {
	return &EntryValidator{}
}

func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.WatchlistEntry:
		return v.validateWatchlistEntry(value, fields...)
	case *models.WatchlistEntry:
		return v.validateWatchlistEntry(*value, fields...)

	case models.BacklogEntry:
		return v.validateBacklogEntry(value, fields...)
	case *models.BacklogEntry:
		return v.validateBacklogEntry(*value, fields...)

	case models.RatingRequest:
		return v.validateRating(value, fields...)
	case *models.RatingRequest:
		return v.validateRating(*value, fields...)

	case models.ReviewRequest:
		return v.validateReview(value, fields...)
	case *models.ReviewRequest:
		return v.validateReview(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateWatchlistEntry(entry models.WatchlistEntry, fields ...string) error {
	checks := map[string]func() error{
		FieldID:    func() error { return requireText(entry.ID, ErrEmptyEntryID) },
		FieldTitle: func() error { return requireText(entry.Title, ErrEmptyTitle) },
		FieldContentType: func() error {
			if !entry.ContentType.Valid() {
				return ErrInvalidContentType
			}
			return nil
		},
		FieldRuntime: func() error { return validateRuntime(entry.Runtime) },
		FieldRating:  func() error { return validateRatingValue(float64(entry.Rating)) },
		FieldPoster:  func() error { return rejectNUL(entry.Poster) },
		FieldReview:  func() error { return rejectNUL(entry.Review) },
	}
	return runChecks(checks, []string{FieldID, FieldTitle, FieldContentType, FieldRuntime, FieldRating, FieldPoster, FieldReview}, fields)
}

func (v *EntryValidator) validateBacklogEntry(entry models.BacklogEntry, fields ...string) error {
	checks := map[string]func() error{
		FieldID:      func() error { return requireText(entry.ID, ErrEmptyEntryID) },
		FieldTitle:   func() error { return requireText(entry.Title, ErrEmptyTitle) },
		FieldRuntime: func() error { return validateRuntime(entry.Runtime) },
		FieldPoster:  func() error { return rejectNUL(entry.Poster) },
	}
	return runChecks(checks, []string{FieldID, FieldTitle, FieldRuntime, FieldPoster}, fields)
}

func (v *EntryValidator) validateRating(req models.RatingRequest, fields ...string) error {
	checks := map[string]func() error{
		FieldRating: func() error {
			if req.Rating == nil {
				return ErrEmptyRating
			}
			return validateRatingValue(*req.Rating)
		},
	}
	return runChecks(checks, []string{FieldRating}, fields)
}

func (v *EntryValidator) validateReview(req models.ReviewRequest, fields ...string) error {
	checks := map[string]func() error{
		FieldReview: func() error {
			if req.Review == nil {
				return ErrEmptyReview
			}
			return rejectNUL(*req.Review)
		},
	}
	return runChecks(checks, []string{FieldReview}, fields)
}

// validateRatingValue accepts exactly the integers 0..MaxRating.
func validateRatingValue(rating float64) error {
	if math.IsNaN(rating) || rating != math.Trunc(rating) || rating < 0 || rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

// requireText rejects blank values and values PostgreSQL cannot store.
func requireText(value string, err error) error {
	if e := requireNonBlank(value, err); e != nil {
		return e
	}
	return rejectNUL(value)
}

func rejectNUL(value string) error {
	if strings.ContainsRune(value, 0) {
		return ErrNULCharacter
	}
	return nil
}

func validateRuntime(runtime int) error {
	if runtime < 0 {
		return ErrNegativeRuntime
	}
	return nil
}
