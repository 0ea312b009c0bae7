package validator_test

import (
	"net/http"
	"strings"
	"testing"
	"todoapi/shared/failure"
	"todoapi/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title *string `json:"title" validate:"required"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError string
		wantTitle   string
	}{
		{
			name:      "title present",
			jsonBody:  `{"title":"Buy milk"}`,
			wantTitle: "Buy milk",
		},
		{
			name:      "empty title is structurally valid",
			jsonBody:  `{"title":""}`,
			wantTitle: "",
		},
		{
			name:      "unknown fields are ignored",
			jsonBody:  `{"title":"Buy milk","completed":true}`,
			wantTitle: "Buy milk",
		},
		{
			name:        "missing title",
			jsonBody:    `{}`,
			expectError: "Title is required",
		},
		{
			name:        "null title",
			jsonBody:    `{"title":null}`,
			expectError: "Title is required",
		},
		{
			name:        "wrong type",
			jsonBody:    `{"title":5}`,
			expectError: "failed to decode request body",
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"title":`,
			expectError: "failed to decode request body",
		},
		{
			name:        "trailing data",
			jsonBody:    `{"title":"Buy milk"} not json`,
			expectError: "unexpected data after JSON value",
		},
		{
			name:        "second JSON value",
			jsonBody:    `{"title":"a"}{"title":"b"}`,
			expectError: "unexpected data after JSON value",
		},
		{
			name:      "trailing whitespace",
			jsonBody:  "{\"title\":\"Buy milk\"}\n  ",
			wantTitle: "Buy milk",
		},
		{
			name:        "empty body",
			jsonBody:    ``,
			expectError: "failed to decode request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data payload

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			require.NotNil(t, data.Title)
			assert.Equal(t, tt.wantTitle, *data.Title)
		})
	}
}
