package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/esprit/eventsproject/internal/config"
	"github.com/esprit/eventsproject/internal/domain"
	"github.com/esprit/eventsproject/internal/pkg/jwthelper"
)

func newTestServer(signingKey string) *Server {
	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			Port:               "8080",
			BaseURL:            "localhost:8080",
			AllowedCORSDomains: []string{"http://localhost:3000"},
			JWTSigningKey:      signingKey,
		},
		Gin: &config.GinConfig{Mode: "test"},
	}

	// Routes are mounted without touching the database.
	svc := NewEventService(&gorm.DB{Config: &gorm.Config{}})

	return NewServer(conf, svc, func() domain.Organizer { return domain.DefaultOrganizer })
}

func TestServer_Healthcheck(t *testing.T) {
	s := newTestServer("")

	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestServer_WriteRoutesRequireToken(t *testing.T) {
	s := newTestServer("secret")

	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/participants", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := jwthelper.GenerateToken([]byte("secret"), "operator", time.Minute)
	require.NoError(t, err)

	// A valid token reaches the handler, which rejects the empty body.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/participants", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ReadRoutesArePublic(t *testing.T) {
	s := newTestServer("secret")

	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/logistics", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ListenAndServe_StopsOnCancel(t *testing.T) {
	s := newTestServer("")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.ListenAndServe(ctx, "127.0.0.1:0")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server still running after cancel")
	}
}

func TestServer_ListenAndServe_InvalidAddr(t *testing.T) {
	s := newTestServer("")

	err := s.ListenAndServe(context.Background(), "127.0.0.1:-1")
	assert.Error(t, err)
}
