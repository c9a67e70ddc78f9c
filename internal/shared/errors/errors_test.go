package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code int
		typ  ErrorType
	}{
		{"validation", NewValidationError("bad"), http.StatusBadRequest, ErrorTypeValidation},
		{"not found", NewNotFoundError("missing"), http.StatusNotFound, ErrorTypeNotFound},
		{"forbidden", NewForbiddenError("no"), http.StatusForbidden, ErrorTypeForbidden},
		{"usage limit", NewUsageLimitError("limit"), http.StatusPaymentRequired, ErrorTypeUsageLimit},
		{"stale match", NewStaleMatchError("gone"), http.StatusGone, ErrorTypeStaleMatch},
		{"generation failed", NewGenerationFailedError("boom"), http.StatusBadGateway, ErrorTypeGenerationFailed},
		{"rate limited", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, ErrorTypeTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.typ, tt.err.Type)
		})
	}
}

func TestAppError_ErrorString(t *testing.T) {
	assert.Equal(t, "not_found: setup not found", NewNotFoundError("setup not found").Error())
	assert.Equal(t, "validation_error: bad input (count must be positive)",
		NewValidationError("bad input", "count must be positive").Error())
}

func TestAppError_WrappedDetection(t *testing.T) {
	wrapped := fmt.Errorf("reuse: %w", NewStaleMatchError("matched setup was deleted"))

	assert.True(t, IsStaleMatchError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusGone, appErr.Code)
}

func TestAppError_WithMeta(t *testing.T) {
	err := NewUsageLimitError("monthly limit reached").
		WithMeta("plan", "free").
		WithMeta("used", 2).
		WithMeta("limit", 2)

	assert.Equal(t, "free", err.Meta["plan"])
	assert.Equal(t, 2, err.Meta["used"])
	assert.Equal(t, 2, err.Meta["limit"])
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("Error 1062: Duplicate entry 'x' for key 'uk'")))
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: subscription_quotas.user_id")))
	assert.False(t, IsDuplicateError(fmt.Errorf("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
