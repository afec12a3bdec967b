package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationRequestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain", input: "Add a login page", want: "Add a login page"},
		{name: "surrounding whitespace", input: "  \tAdd a login page\n", want: "Add a login page"},
		{name: "inner whitespace kept", input: " two  words ", want: "two  words"},
		{name: "empty", input: "", wantErr: true},
		{name: "spaces only", input: "   ", wantErr: true},
		{name: "mixed whitespace only", input: "\n\t \r", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := GenerationRequest{FeatureIdea: tt.input}.Normalize()
			if tt.wantErr {
				require.Error(t, err)
				var vErr *ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, "Feature idea cannot be empty.", vErr.Message)
				assert.ErrorIs(t, err, ErrEmptyContent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewGenerationResult(t *testing.T) {
	t.Parallel()

	res := NewGenerationResult("## 1. Feature Overview", "Add a login page")
	assert.Equal(t, "## 1. Feature Overview", res.SRSDocument)
	assert.Equal(t, "Add a login page", res.FeatureIdea)
	assert.Equal(t, "success", res.Status)
}

func TestValidationErrorDefaultsToErrValidation(t *testing.T) {
	t.Parallel()

	err := NewValidationError("featureIdea", "is required", nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "featureIdea: is required", err.Error())
}

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser(" user_2abc ", "ada@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "user_2abc", user.ClerkID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)

	_, err = NewUser("", "ada@example.com")
	assert.ErrorIs(t, err, ErrEmptyClerkID)

	_, err = NewUser("user_2abc", "not-an-email")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	phoneOnly, err := NewUser("user_3def", "")
	require.NoError(t, err)
	assert.Empty(t, phoneOnly.Email)
}
