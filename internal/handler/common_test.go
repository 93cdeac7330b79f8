package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"Nexus_Social/internal/middleware"
	"Nexus_Social/internal/service"
)

// currentUser 和鉴权中间件必须用同一个 context key
func TestCurrentUserReadsAuthContextKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(middleware.ContextUserIDKey, uint64(42))
	require.Equal(t, uint64(42), currentUser(c))
}

func TestCurrentUserMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	require.Equal(t, uint64(0), currentUser(c))
}

func TestWriteErrMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"forbidden", service.ErrForbidden, http.StatusForbidden},
		{"not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"invalid argument", service.ErrInvalidArgument, http.StatusBadRequest},
		{"self target", service.ErrSelfTarget, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			writeErr(c, tt.err)
			require.Equal(t, tt.status, w.Code)
		})
	}
}
