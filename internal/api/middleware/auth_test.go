package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esprit/eventsproject/internal/pkg/jwthelper"
)

func newTestRouter(signingKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/protected", NewAuthenticator(signingKey).VerifyJWT(), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(ContextKeySubject))
	})
	return r
}

func TestVerifyJWT(t *testing.T) {
	token, err := jwthelper.GenerateToken([]byte("secret"), "operator", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		signingKey string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", signingKey: "secret", header: "Bearer " + token, wantStatus: http.StatusOK, wantBody: "operator"},
		{name: "missing header", signingKey: "secret", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", signingKey: "secret", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "bad token", signingKey: "other", header: "Bearer " + token, wantStatus: http.StatusUnauthorized},
		{name: "auth disabled", signingKey: "", wantStatus: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			newTestRouter(tc.signingKey).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}
