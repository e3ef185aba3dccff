package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeMissingAttribute, "failed to find %s on svg node", "width")

	if err.Code != ErrCodeMissingAttribute {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeMissingAttribute)
	}

	if err.Message != "failed to find width on svg node" {
		t.Errorf("Message = %v, want %v", err.Message, "failed to find width on svg node")
	}

	expected := "MISSING_ATTRIBUTE: failed to find width on svg node"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("no such file or directory")
	err := Wrap(ErrCodeInputIO, cause, "failed to open file")

	if err.Code != ErrCodeInputIO {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInputIO)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "INPUT_IO: failed to open file: no such file or directory"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidLength, "test"),
			code:     ErrCodeInvalidLength,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidLength, "test"),
			code:     ErrCodeOutputIO,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeParse, New(ErrCodeInvalidViewBox, "inner"), "outer"),
			code:     ErrCodeParse,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      errors.Join(errors.New("context"), New(ErrCodeSerialize, "inner")),
			code:     ErrCodeSerialize,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInputIO,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInputIO,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidGrid, "test"),
			expected: ErrCodeInvalidGrid,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidLength, "unhandled length: 5px"),
			expected: "unhandled length: 5px",
		},
		{
			name:     "Error with cause",
			err:      Wrap(ErrCodeOutputIO, errors.New("permission denied"), "failed to open output file"),
			expected: "failed to open output file: permission denied",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}
