package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/trivia-hub/trivia-service/internal/errors"
)

type questionPayload struct {
	Question   *string `json:"question" validate:"required"`
	Difficulty *int    `json:"difficulty" validate:"required,difficulty_level"`
}

func TestValidateStruct_DifficultyLevel(t *testing.T) {
	v := New()
	question := "Q?"

	tests := []struct {
		name       string
		difficulty int
		valid      bool
	}{
		{name: "lower bound", difficulty: 1, valid: true},
		{name: "upper bound", difficulty: 5, valid: true},
		{name: "below range", difficulty: 0, valid: false},
		{name: "above range", difficulty: 6, valid: false},
		{name: "negative", difficulty: -3, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(&questionPayload{Question: &question, Difficulty: &tt.difficulty})
			if tt.valid {
				assert.NoError(t, err)
				return
			}

			var validationErrors apperrors.ValidationErrors
			require.ErrorAs(t, err, &validationErrors)
			require.Len(t, validationErrors, 1)
			assert.Equal(t, "difficulty", validationErrors[0].Field)
			assert.Equal(t, "must be an integer between 1 and 5", validationErrors[0].Message)
		})
	}
}

func TestValidateStruct_JSONFieldNames(t *testing.T) {
	v := New()

	err := v.ValidateStruct(&questionPayload{})

	var validationErrors apperrors.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	require.Len(t, validationErrors, 2)

	// Error fields use the json tag names the API exposes, not the Go
	// struct field names.
	assert.Equal(t, "question", validationErrors[0].Field)
	assert.Equal(t, "difficulty", validationErrors[1].Field)
}

func TestValidateStruct_Valid(t *testing.T) {
	v := New()
	question := "Q?"
	difficulty := 3

	assert.NoError(t, v.ValidateStruct(&questionPayload{Question: &question, Difficulty: &difficulty}))
}
