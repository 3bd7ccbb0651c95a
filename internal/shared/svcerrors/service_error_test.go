package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("SES_1000", "invalid grid range", nil),
			wantErr: NewInvalidArgumentError("SES_1000", "invalid grid range", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped NotFound ServiceError",
			err:     fmt.Errorf("wrap: %w", NewNotFoundError("RPT_1003", "session not found", nil)),
			wantErr: NewNotFoundError("RPT_1003", "session not found", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("SES_9000", nil)),
			wantErr: NewInternalError("SES_9000", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_UnwrapsCause(t *testing.T) {
	sentinel := errors.New("grid end precedes start")
	svcErr := NewInvalidArgumentError("SES_1000", "invalid grid range", fmt.Errorf("%w: detail", sentinel))

	assert.ErrorIs(t, svcErr, sentinel)
	assert.Equal(t, "SES_1000: invalid grid range", svcErr.Error())
	assert.Equal(t, 400, svcErr.HttpStatusCode)
	assert.False(t, svcErr.IsInternalError())
}

func TestNewNotFoundError(t *testing.T) {
	svcErr := NewNotFoundError("RPT_1002", "device not found", nil)

	assert.Equal(t, "not_found", svcErr.Category)
	assert.Equal(t, 404, svcErr.HttpStatusCode)
	assert.False(t, svcErr.IsInternalError())
	assert.True(t, NewInternalError("RPT_9000", nil).IsInternalError())
}
