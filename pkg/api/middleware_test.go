package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func authTestRouter(password string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := &Server{password: password}

	router := gin.New()
	router.GET("/protected", s.passwordAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestPasswordAuth(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		header     string
		query      string
		wantStatus int
	}{
		{
			name:       "no configured secret fails closed",
			password:   "",
			header:     "anything",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "missing credentials",
			password:   "hunter2",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong header",
			password:   "hunter2",
			header:     "wrong",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "correct header",
			password:   "hunter2",
			header:     "hunter2",
			wantStatus: http.StatusOK,
		},
		{
			name:       "query parameter fallback",
			password:   "hunter2",
			query:      "hunter2",
			wantStatus: http.StatusOK,
		},
		{
			name:       "header takes precedence over query",
			password:   "hunter2",
			header:     "wrong",
			query:      "hunter2",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := authTestRouter(tt.password)

			url := "/protected"
			if tt.query != "" {
				url += "?password=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, url, nil)
			if tt.header != "" {
				req.Header.Set(PasswordHeader, tt.header)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(securityHeaders())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
