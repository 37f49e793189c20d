package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "with cause",
			err:  NewParsingError("bad row", fmt.Errorf("unexpected quote")),
			want: "[PARSING] bad row: unexpected quote",
		},
		{
			name: "without cause",
			err:  NewAppValidationError("marks required"),
			want: "[VALIDATION] marks required",
		},
		{
			name: "not found",
			err:  NewNotFoundError("input file"),
			want: "[NOT_FOUND] input file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError("cannot write report", cause)

	assert.ErrorIs(t, err, cause)

	var appErr *AppError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &appErr)
	assert.Equal(t, ErrTypeStorage, appErr.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewConfigError("bad port", nil).WithContext("port", -1)

	assert.Equal(t, -1, err.Context["port"])
}

func TestAPIError(t *testing.T) {
	err := UnsupportedFormatError("notes.pdf")

	assert.Equal(t, 400, err.StatusCode)
	assert.Equal(t, "UNSUPPORTED_FORMAT", err.ErrorCode)
	assert.Equal(t, "notes.pdf", err.Details)
	assert.NotEmpty(t, err.Error())
}
