package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/datalab-ge/datalab-api/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAPIKey = "test-api-key-12345"

func newTestMiddleware() (*auth.Middleware, *auth.TokenIssuer) {
	issuer := auth.NewTokenIssuer("test-secret", "datalab-api", time.Hour)
	return auth.NewMiddleware(testAPIKey, issuer, zap.NewNop()), issuer
}

func captureAdmin(captured **auth.AdminContext) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured, _ = auth.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_Authenticate_WithAPIKey(t *testing.T) {
	m, _ := newTestMiddleware()
	var admin *auth.AdminContext

	req := httptest.NewRequest(http.MethodGet, "/api/service-requests/", nil)
	req.Header.Set("x-api-key", testAPIKey)
	w := httptest.NewRecorder()
	m.Authenticate(captureAdmin(&admin)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, admin)
	assert.Equal(t, auth.MethodAPIKey, admin.Method)
	assert.Equal(t, auth.APIKeySubject, admin.Subject)
}

func TestMiddleware_Authenticate_WithToken(t *testing.T) {
	m, issuer := newTestMiddleware()
	token, _, err := issuer.Issue("console")
	require.NoError(t, err)
	var admin *auth.AdminContext

	req := httptest.NewRequest(http.MethodGet, "/api/contact/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	m.Authenticate(captureAdmin(&admin)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, admin)
	assert.Equal(t, auth.MethodToken, admin.Method)
	assert.Equal(t, "console", admin.Subject)
}

func TestMiddleware_Authenticate_Rejects(t *testing.T) {
	m, _ := newTestMiddleware()
	other := auth.NewTokenIssuer("other-secret", "datalab-api", time.Hour)
	forged, _, err := other.Issue("mallory")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		value  string
	}{
		{"wrong api key", "x-api-key", "nope"},
		{"missing header", "", ""},
		{"basic auth", "Authorization", "Basic abc"},
		{"garbage token", "Authorization", "Bearer not-a-jwt"},
		{"foreign signature", "Authorization", "Bearer " + forged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/api/service-requests/", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			w := httptest.NewRecorder()
			m.Authenticate(next).ServeHTTP(w, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "unauthorized")
		})
	}
}

func TestMiddleware_EmptyConfiguredKeyNeverMatches(t *testing.T) {
	m := auth.NewMiddleware("", auth.NewTokenIssuer("", "datalab-api", time.Hour), zap.NewNop())
	assert.False(t, m.ValidAPIKey(""))
	assert.False(t, m.ValidAPIKey("anything"))
}

func TestActor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, auth.PublicActor, auth.Actor(req.Context()))

	ctx := auth.WithAdminContext(req.Context(), &auth.AdminContext{Subject: "console"})
	assert.Equal(t, "console", auth.Actor(ctx))
}
