package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type portedStruct struct {
	Port int `validate:"required,gte=1,lte=9999"`
}

func respondWith(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	ErrorResponse(c, err)
	return w
}

func TestErrorResponseUsesAPIErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, respondWith(t, ErrNotFound("gone")).Code)
	assert.Equal(t, http.StatusConflict, respondWith(t, ErrConflict("dupe")).Code)
	assert.Equal(t, http.StatusUnauthorized, respondWith(t, ErrUnauthorized("nope")).Code)
}

func TestErrorResponseMapsValidationErrorsTo400(t *testing.T) {
	err := ValidateStruct(&portedStruct{Port: 10000})
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, respondWith(t, err).Code)
}

func TestErrorResponseDefaultsTo500(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, respondWith(t, fmt.Errorf("boom")).Code)
}

func TestErrorResponseUnwrapsWrappedAPIError(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrNotFound("gone"))
	assert.Equal(t, http.StatusNotFound, respondWith(t, wrapped).Code)

	var apiErr *APIError
	assert.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, "gone", apiErr.Message)
}

func TestValidateStructPortBounds(t *testing.T) {
	assert.Error(t, ValidateStruct(&portedStruct{Port: 0}))
	assert.Error(t, ValidateStruct(&portedStruct{Port: 10000}))
	assert.NoError(t, ValidateStruct(&portedStruct{Port: 1}))
	assert.NoError(t, ValidateStruct(&portedStruct{Port: 9999}))
}
