package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestCreateContactRequest struct {
	Name   string `json:"name" validate:"required,max=100,contactname"`
	Number string `json:"number" validate:"required,max=30,phonenumber"`
}

type TestSetFilterRequest struct {
	Filter string `json:"filter" validate:"max=100"`
}

func TestValidator_CreateContact(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       TestCreateContactRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Valid single name",
			req:       TestCreateContactRequest{Name: "Adrian", Number: "459-12-56"},
			wantError: false,
		},
		{
			name:      "Valid name with space",
			req:       TestCreateContactRequest{Name: "Jacob Mercer", Number: "443-89-12"},
			wantError: false,
		},
		{
			name:      "Valid name with apostrophe and particles",
			req:       TestCreateContactRequest{Name: "Charles de Batz de Castelmore d'Artagnan", Number: "645-17-79"},
			wantError: false,
		},
		{
			name:      "Valid hyphenated name",
			req:       TestCreateContactRequest{Name: "Mary-Jane Watson", Number: "227-91-26"},
			wantError: false,
		},
		{
			name:      "Valid Cyrillic name",
			req:       TestCreateContactRequest{Name: "Анна Петрова", Number: "111-22-33"},
			wantError: false,
		},
		{
			name:      "Valid international number",
			req:       TestCreateContactRequest{Name: "Ann Lee", Number: "+1 (555) 010-99"},
			wantError: false,
		},
		{
			name:      "Valid plain digits",
			req:       TestCreateContactRequest{Name: "Ann Lee", Number: "5550199"},
			wantError: false,
		},
		{
			name:      "Missing name",
			req:       TestCreateContactRequest{Name: "", Number: "459-12-56"},
			wantError: true,
			errorMsg:  "name is required",
		},
		{
			name:      "Missing number",
			req:       TestCreateContactRequest{Name: "Adrian", Number: ""},
			wantError: true,
			errorMsg:  "number is required",
		},
		{
			name:      "Name with digits",
			req:       TestCreateContactRequest{Name: "Ann3", Number: "459-12-56"},
			wantError: true,
			errorMsg:  "name may contain only letters",
		},
		{
			name:      "Name starting with dash",
			req:       TestCreateContactRequest{Name: "-Ann", Number: "459-12-56"},
			wantError: true,
			errorMsg:  "name may contain only letters",
		},
		{
			name:      "Name with symbols",
			req:       TestCreateContactRequest{Name: "Ann@Lee", Number: "459-12-56"},
			wantError: true,
			errorMsg:  "name may contain only letters",
		},
		{
			name:      "Number with letters",
			req:       TestCreateContactRequest{Name: "Ann Lee", Number: "call me"},
			wantError: true,
			errorMsg:  "number must be digits",
		},
		{
			name:      "Number too short",
			req:       TestCreateContactRequest{Name: "Ann Lee", Number: "12"},
			wantError: true,
			errorMsg:  "number must be digits",
		},
		{
			name:      "Number with trailing garbage",
			req:       TestCreateContactRequest{Name: "Ann Lee", Number: "459-12-56x"},
			wantError: true,
			errorMsg:  "number must be digits",
		},
		{
			name:      "Name too long",
			req:       TestCreateContactRequest{Name: strings.Repeat("a", 101), Number: "459-12-56"},
			wantError: true,
			errorMsg:  "name must be at most 100 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_SetFilter(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&TestSetFilterRequest{Filter: ""}))
	assert.NoError(t, v.Validate(&TestSetFilterRequest{Filter: "ros"}))
	assert.Error(t, v.Validate(&TestSetFilterRequest{Filter: strings.Repeat("x", 101)}))
}

func TestValidationErrors_Details(t *testing.T) {
	v := New()

	err := v.Validate(&TestCreateContactRequest{Name: "", Number: "abc"})
	require.Error(t, err)

	validationErrs, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, validationErrs, 2)

	assert.Equal(t, "name", validationErrs[0].Field)
	assert.Equal(t, "required", validationErrs[0].Tag)
	assert.Equal(t, "number", validationErrs[1].Field)
	assert.Equal(t, "phonenumber", validationErrs[1].Tag)
	assert.Equal(t, "abc", validationErrs[1].Value)
}

func TestValidationErrors_Messages(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     interface{}
		message string
	}{
		{
			name:    "Required",
			req:     &TestCreateContactRequest{Name: "", Number: "459-12-56"},
			message: "name is required",
		},
		{
			name:    "Max length",
			req:     &TestSetFilterRequest{Filter: strings.Repeat("x", 101)},
			message: "filter must be at most 100 characters",
		},
		{
			name:    "Contact name pattern",
			req:     &TestCreateContactRequest{Name: "R2D2", Number: "459-12-56"},
			message: "name may contain only letters, apostrophe, dash and spaces",
		},
		{
			name:    "Phone number pattern",
			req:     &TestCreateContactRequest{Name: "Adrian", Number: "abc"},
			message: "number must be digits and can contain spaces, dashes, parentheses and can start with +",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)

			validationErrs, ok := err.(ValidationErrors)
			require.True(t, ok)
			require.Len(t, validationErrs, 1)
			assert.Contains(t, validationErrs[0].Message, tt.message)
		})
	}
}
