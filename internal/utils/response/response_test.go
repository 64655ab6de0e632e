package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	appErrors "github.com/shoply/api/internal/errors"
	"github.com/shoply/api/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestError(t *testing.T) {

	t.Run("AppError carries its own status and message", func(t *testing.T) {
		// Arrange
		rec := httptest.NewRecorder()

		// Act
		response.Error(rec, appErrors.NotFoundError("Product not found"))

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Product not found", decodeError(t, rec).Error)
	})

	t.Run("Unexpected error maps to 500", func(t *testing.T) {
		// Arrange
		rec := httptest.NewRecorder()

		// Act
		response.Error(rec, errors.New("boom"))

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "boom", decodeError(t, rec).Error)
	})
}
