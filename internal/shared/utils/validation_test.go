package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacebook/spacebook/internal/shared/errors"
)

type sampleRequest struct {
	Name   string `json:"name" binding:"required,max=5"`
	Status string `json:"status" binding:"omitempty,oneof=open closed"`
}

func bindContext(body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBindJSON(t *testing.T) {
	var ok sampleRequest
	require.NoError(t, BindJSON(bindContext(`{"name":"abc"}`), &ok))
	assert.Equal(t, "abc", ok.Name)

	var missing sampleRequest
	err := BindJSON(bindContext(`{}`), &missing)
	require.True(t, errors.IsValidationError(err))
	assert.Contains(t, errors.GetAppError(err).Details, "name is required")

	var bad sampleRequest
	err = BindJSON(bindContext(`{"name":"abc","status":"gone"}`), &bad)
	require.True(t, errors.IsValidationError(err))
	assert.Contains(t, errors.GetAppError(err).Details, "status must be one of [open closed]")

	var broken sampleRequest
	err = BindJSON(bindContext(`{"name":`), &broken)
	require.True(t, errors.IsValidationError(err))
	assert.Equal(t, "invalid request body", errors.GetAppError(err).Message)
}

func TestValidateStruct_MaxLength(t *testing.T) {
	err := ValidateStruct(&sampleRequest{Name: "toolong"})
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Details, "name must be at most 5 characters long")
}
