package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type validatorSample struct {
	Name   string `json:"name" validate:"strNotEmpty,cmax=5"`
	Code   string `json:"code" validate:"cmin=2"`
	Status string `json:"status" validate:"oneof=ACTIVE INACTIVE"`
}

func TestCustomValidations(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		input     validatorSample
		wantField string
		wantMsg   string
	}{
		{"whitespace name", validatorSample{Name: "   ", Code: "ab", Status: "ACTIVE"}, "name", "name must not be empty or contain only whitespace characters"},
		{"name too long", validatorSample{Name: "abcdefg", Code: "ab", Status: "ACTIVE"}, "name", "name must be at most 5 non-whitespace characters"},
		{"code too short after trim", validatorSample{Name: "ok", Code: " a ", Status: "ACTIVE"}, "code", "code must be at least 2 non-whitespace characters"},
		{"bad enum", validatorSample{Name: "ok", Code: "ab", Status: "bogus"}, "status", "status must be one of: ACTIVE, INACTIVE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			require.Error(t, err)

			msgs := GenerateErrorMessages(err)
			require.Len(t, msgs, 1)
			assert.Equal(t, tt.wantField, msgs[0].Field)
			assert.Equal(t, tt.wantMsg, msgs[0].Message)
		})
	}

	assert.NoError(t, v.Struct(validatorSample{Name: "ok", Code: "ab", Status: "INACTIVE"}))
}

func TestGenerateErrorMessagesNonValidator(t *testing.T) {
	msgs := GenerateErrorMessages(gorm.ErrRecordNotFound)
	assert.Equal(t, []ApiError{{Field: "Unknown", Message: "Record not found"}}, msgs)

	msgs = GenerateErrorMessages(errors.New("boom"), "file")
	assert.Equal(t, []ApiError{{Field: "file", Message: "boom"}}, msgs)
}
