package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected bool
	}{
		{"long enough", "pw123!", true},
		{"exactly five", "abcde", true},
		{"four chars", "abcd", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validPassword(tt.password))
		})
	}
}

func TestNormalizeISODate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid date", "1990-01-01", false},
		{"leap day", "2020-02-29", false},
		{"impossible day", "2021-02-30", true},
		{"wrong separator", "1990/01/01", true},
		{"not a date", "birthday", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeISODate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestValidCardNumber(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		expected bool
	}{
		{"sixteen digits", "1234567812345678", true},
		{"leading zeros", "0000111122223333", true},
		{"fifteen digits", "123456781234567", false},
		{"seventeen digits", "12345678123456789", false},
		{"letters inside", "12345678abcd5678", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validCardNumber(tt.number))
		})
	}
}

func TestNormalizeExpireDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "27/01", "27/01", false},
		{"missing slash", "2701", "", true},
		{"one digit month", "27/1", "", true},
		{"letters", "ab/cd", "", true},
		{"extra part", "27/01/05", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeExpireDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidCVV(t *testing.T) {
	tests := []struct {
		name     string
		cvv      string
		expected bool
	}{
		{"four digits", "1234", true},
		{"three digits", "123", false},
		{"five digits", "12345", false},
		{"letters", "12a4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validCVV(tt.cvv))
		})
	}
}

func TestCLIError(t *testing.T) {
	err := NewCLIError("TEST_CODE", "Test message", "User message", "details")

	assert.Equal(t, "TEST_CODE", err.Code)
	assert.Equal(t, "User message", err.UserMessage)
	assert.Contains(t, err.Error(), "TEST_CODE")
	assert.Contains(t, err.Error(), "details")
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name     string
		errFunc  func() *CLIError
		wantCode string
	}{
		{
			name: "ErrInvalidInputf",
			errFunc: func() *CLIError {
				return ErrInvalidInputf("bad value %q", "x")
			},
			wantCode: CodeInvalidInput,
		},
		{
			name: "ErrDatabasef",
			errFunc: func() *CLIError {
				return ErrDatabasef("db error")
			},
			wantCode: CodeDatabaseError,
		},
		{
			name: "ErrNotFoundf",
			errFunc: func() *CLIError {
				return ErrNotFoundf("missing record %d", 7)
			},
			wantCode: CodeNotFound,
		},
		{
			name: "ErrPermission",
			errFunc: func() *CLIError {
				return ErrPermission("no permission")
			},
			wantCode: CodePermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.errFunc()
			assert.Equal(t, tt.wantCode, err.Code)
			assert.NotEmpty(t, err.UserMessage)
		})
	}
}
