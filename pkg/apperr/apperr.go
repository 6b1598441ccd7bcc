package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Sentinel errors classifying every failure the domain operations can surface.
// Wrap with fmt.Errorf("...: %w", Err...) and test with errors.Is.
var (
	// ErrValidation — input fails shape/type/enum constraints; raised before any store access
	ErrValidation = errors.New("validation failed")
	// ErrNotFound — referenced parent at create time, or target row at update/get time, does not exist
	ErrNotFound = errors.New("not found")
	// ErrDuplicateKey — uniqueness constraint violated (user email, invoice number)
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrStore — any other persistence-layer failure
	ErrStore = errors.New("store failure")
)

// Validationf wraps ErrValidation with a formatted message
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

// NotFoundf wraps ErrNotFound with a formatted message
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// FromStore classifies a gorm/driver error into the taxonomy. The postgres
// driver is opened with TranslateError, so unique and foreign-key violations
// arrive as gorm sentinels. entity names the row being acted on for the message.
func FromStore(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", entity, ErrDuplicateKey)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		// A missing required parent reference surfaces as an FK violation
		return fmt.Errorf("%s: referenced entity: %w", entity, ErrNotFound)
	default:
		return fmt.Errorf("%s: %v: %w", entity, err, ErrStore)
	}
}

// HTTPStatus maps a classified error to the transport status code
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateKey):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
