package apperrors_test

import (
	"errors"
	"testing"

	"stagebook/internal/shared/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{
			name:      "NotFound wraps ErrNotFound",
			err:       apperrors.NotFound("venue", "abc123"),
			target:    apperrors.ErrNotFound,
			wantMatch: true,
		},
		{
			name:      "Validation wraps ErrValidation",
			err:       apperrors.Validation("name", "name is required"),
			target:    apperrors.ErrValidation,
			wantMatch: true,
		},
		{
			name:      "Constraint wraps ErrConstraint",
			err:       apperrors.Constraint("venue has shows"),
			target:    apperrors.ErrConstraint,
			wantMatch: true,
		},
		{
			name:      "NotFound does not match ErrValidation",
			err:       apperrors.NotFound("venue", "abc123"),
			target:    apperrors.ErrValidation,
			wantMatch: false,
		},
		{
			name:      "Validation does not match ErrConstraint",
			err:       apperrors.Validation("name", "too long"),
			target:    apperrors.ErrConstraint,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMatch, errors.Is(tt.err, tt.target))
		})
	}
}

func TestMessages(t *testing.T) {
	err := apperrors.NotFound("artist", "42")
	assert.Equal(t, "artist with id 42 does not exist", err.Error())

	verr := apperrors.Validation("name", "name is required")
	assert.Equal(t, "name is required", verr.Error())
	assert.Equal(t, "name", verr.Field)
}
