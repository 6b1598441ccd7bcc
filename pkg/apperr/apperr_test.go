package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFromStoreClassification(t *testing.T) {
	require.NoError(t, FromStore(nil, "user"))

	err := FromStore(gorm.ErrRecordNotFound, "user")
	require.ErrorIs(t, err, ErrNotFound)

	err = FromStore(gorm.ErrDuplicatedKey, "invoice")
	require.ErrorIs(t, err, ErrDuplicateKey)

	// A missing parent reference surfaces as NotFound, not a generic failure
	err = FromStore(gorm.ErrForeignKeyViolated, "task")
	require.ErrorIs(t, err, ErrNotFound)

	err = FromStore(errors.New("connection reset"), "request")
	require.ErrorIs(t, err, ErrStore)
	require.Contains(t, err.Error(), "request")
}

func TestCategoriesAreDisjoint(t *testing.T) {
	classified := []error{
		Validationf("bad input"),
		FromStore(gorm.ErrRecordNotFound, "x"),
		FromStore(gorm.ErrDuplicatedKey, "x"),
		FromStore(errors.New("boom"), "x"),
	}
	sentinels := []error{ErrValidation, ErrNotFound, ErrDuplicateKey, ErrStore}

	for i, err := range classified {
		for j, sentinel := range sentinels {
			require.Equal(t, i == j, errors.Is(err, sentinel),
				"error %v vs sentinel %v", err, sentinel)
		}
	}
}

func TestHTTPStatus(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, HTTPStatus(Validationf("bad")))
	require.Equal(t, http.StatusNotFound, HTTPStatus(NotFoundf("user %s", "abc")))
	require.Equal(t, http.StatusConflict, HTTPStatus(FromStore(gorm.ErrDuplicatedKey, "invoice")))
	require.Equal(t, http.StatusInternalServerError, HTTPStatus(FromStore(errors.New("boom"), "x")))
	require.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("unclassified")))
}

func TestWrappersCarryMessage(t *testing.T) {
	err := Validationf("invalid status %q", "Archived")
	require.Contains(t, err.Error(), `invalid status "Archived"`)

	err = NotFoundf("organization %s", "42")
	require.Contains(t, err.Error(), "organization 42")
}
