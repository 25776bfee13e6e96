package domain_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quochao170402/ecommerce-catalog/internal/domain"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   domain.ErrorKind
		status int
	}{
		{
			name:   "validation",
			err:    domain.Validationf("Price cannot be negative"),
			kind:   domain.KindValidation,
			status: http.StatusBadRequest,
		},
		{
			name:   "not found",
			err:    domain.NotFoundf("Product with id %d does not exist", 7),
			kind:   domain.KindNotFound,
			status: http.StatusNotFound,
		},
		{
			name:   "conflict",
			err:    domain.Conflictf("Username already exists"),
			kind:   domain.KindConflict,
			status: http.StatusConflict,
		},
		{
			name:   "unclassified",
			err:    errors.New("boom"),
			kind:   domain.KindInternal,
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, domain.KindOf(tt.err))
			assert.Equal(t, tt.status, domain.StatusCode(tt.err))
		})
	}
}

func TestErrorMessageCarriesDetail(t *testing.T) {
	err := domain.NotFoundf("Category with id %d does not exist", 999)
	assert.Equal(t, "Category with id 999 does not exist", err.Error())
	assert.True(t, domain.IsNotFound(err))
	assert.False(t, domain.IsConflict(err))
	assert.False(t, domain.IsValidation(err))
}
