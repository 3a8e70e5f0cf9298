package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusForCode("NOT_FOUND"))
	assert.Equal(t, http.StatusConflict, StatusForCode("ACCOUNT_BUSY"))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusForCode("INSUFFICIENT_BALANCE"))
	assert.Equal(t, http.StatusBadRequest, StatusForCode("INVALID_INPUT"))
	assert.Equal(t, http.StatusUnauthorized, StatusForCode("UNAUTHORIZED"))
	assert.Equal(t, http.StatusServiceUnavailable, StatusForCode("IDENTIFIER_EXHAUSTED"))

	// Unmapped codes degrade to an internal error
	assert.Equal(t, http.StatusInternalServerError, StatusForCode("SOMETHING_ELSE"))
	assert.Equal(t, http.StatusInternalServerError, StatusForCode(""))
}

func TestResponseEnvelopes(t *testing.T) {
	ok := NewSuccessResponse(map[string]string{"k": "v"})
	assert.True(t, ok.Success)
	assert.NotNil(t, ok.Data)
	assert.Nil(t, ok.Error)

	fail := NewErrorResponse("NOT_FOUND", "missing")
	assert.False(t, fail.Success)
	assert.Nil(t, fail.Data)
	assert.Equal(t, "NOT_FOUND", fail.Error.Code)
	assert.Equal(t, "missing", fail.Error.Message)
}
