package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	SuccessResponse(rec, http.StatusOK, []string{"abc123"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"success","data":["abc123"]}`, rec.Body.String())
}

func TestErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	ErrorResponse(rec, http.StatusBadRequest, "Repository name is required")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"Repository name is required"}`, rec.Body.String())
}
