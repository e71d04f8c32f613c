package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/dirigent-io/dirigent/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation error",
			err:        services.NewValidationError("name", "is required"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found",
			err:        fmt.Errorf("namespace: %w", services.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "already exists",
			err:        services.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "illegal transition",
			err:        fmt.Errorf("job is complete: %w", services.ErrIllegalTransition),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "guardian linked",
			err:        services.ErrGuardianLinked,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "empty group",
			err:        services.ErrEmptyGroup,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "no eligible message",
			err:        services.ErrNoEligibleMessage,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "corrupt chain",
			err:        services.ErrChainCorrupt,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unknown error",
			err:        errors.New("database exploded"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			mapServiceError(c, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestMapServiceError_HidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	mapServiceError(c, errors.New("pq: connection refused on 10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	assert.Contains(t, w.Body.String(), "internal server error")
}
