// AngelaMos | 2026
// errors_test.go

package core

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WrapsSentinel(t *testing.T) {
	err := NotFoundError("listing")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, "listing not found", err.Message)
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(ConflictError("listing not available")))
	assert.True(t, IsAppError(fmt.Errorf("wrapped: %w", UnauthorizedError(""))))
	assert.False(t, IsAppError(errors.New("plain")))
}

func TestAsAppError_Unwraps(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", DuplicateError("email"))

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Equal(t, "DUPLICATE_RESOURCE", appErr.Code)
	assert.Equal(t, "email already registered", appErr.Message)
}

func TestUnauthorizedError_DefaultMessage(t *testing.T) {
	err := UnauthorizedError("")
	assert.Equal(t, "authentication required", err.Message)
}
