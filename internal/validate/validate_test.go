package validate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/course-api/internal/domain"
	"github.com/msomdec/course-api/internal/validate"
)

type signup struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
}

type patch struct {
	Title *string `json:"title" validate:"omitnil,min=1"`
}

func ptr(s string) *string { return &s }

func TestStruct(t *testing.T) {
	t.Parallel()

	v := validate.New()

	tests := []struct {
		name     string
		input    any
		messages []string
	}{
		{
			name:  "valid",
			input: signup{FirstName: "Ada", LastName: "Lovelace", EmailAddress: "ada@example.com", Password: "secret"},
		},
		{
			name:  "all missing in declaration order",
			input: signup{},
			messages: []string{
				`Please provide a value for the "firstName" field`,
				`Please provide a value for the "lastName" field`,
				`Please provide a value for the "emailAddress" field`,
				`Please provide a value for the "password" field`,
			},
		},
		{
			name:     "bad email",
			input:    signup{FirstName: "Ada", LastName: "Lovelace", EmailAddress: "not-an-email", Password: "secret"},
			messages: []string{"Please provide a valid email address"},
		},
		{
			name:  "whitespace is a value",
			input: signup{FirstName: " ", LastName: "L", EmailAddress: "a@b.co", Password: "p"},
		},
		{
			name:  "absent optional field",
			input: patch{},
		},
		{
			name:     "present but empty optional field",
			input:    patch{Title: ptr("")},
			messages: []string{`Please provide a value for the "title" field`},
		},
		{
			name:  "present optional field",
			input: patch{Title: ptr("Go")},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := v.Struct(test.input)
			if test.messages == nil {
				require.NoError(t, err)
				return
			}

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, test.messages, verr.Messages)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `Please provide a value for the "userId" field`, validate.Message("userId", "required"))
	assert.Equal(t, "Please provide a valid email address", validate.Message("emailAddress", "email"))
	assert.Equal(t, `The "x" field is invalid`, validate.Message("x", "uuid"))
}
