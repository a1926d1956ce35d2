package domainerrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	err := New(CodeStoreUnavailable, "form store unreachable")
	assert.True(t, Is(err, CodeStoreUnavailable))
	assert.False(t, Is(err, CodeValidation))

	wrapped := fmt.Errorf("submit: %w", err)
	assert.True(t, Is(wrapped, CodeStoreUnavailable))

	assert.False(t, Is(fmt.Errorf("plain"), CodeInternal))
}

func TestFieldsOf(t *testing.T) {
	fields := []FieldError{{Field: "email", Message: "Please enter a valid email address"}}
	err := NewValidation("record failed validation", fields)
	assert.Equal(t, fields, FieldsOf(err))
	assert.Nil(t, FieldsOf(New(CodeInternal, "boom")))
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(CodeBadRequest))
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(CodeNotFound))
	assert.Equal(t, http.StatusUnprocessableEntity, ToHTTPStatus(CodeValidation))
	assert.Equal(t, http.StatusServiceUnavailable, ToHTTPStatus(CodeStoreUnavailable))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(CodeInternal))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(Code("unknown")))
}
