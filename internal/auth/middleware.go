package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/datalab-ge/datalab-api/internal/domain"
	"go.uber.org/zap"
)

// APIKeySubject is the admin identity attached to API-key authenticated requests
const APIKeySubject = "admin"

// Middleware authenticates admin requests by API key or session token
type Middleware struct {
	apiKey string
	tokens *TokenIssuer
	logger *zap.Logger
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(apiKey string, tokens *TokenIssuer, logger *zap.Logger) *Middleware {
	return &Middleware{apiKey: apiKey, tokens: tokens, logger: logger}
}

// ValidAPIKey compares a candidate against the configured key in constant time.
// An unconfigured key never matches.
func (m *Middleware) ValidAPIKey(candidate string) bool {
	if m.apiKey == "" || candidate == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(m.apiKey)) == 1
}

// Authenticate accepts either an x-api-key header or an "Authorization: Bearer" session token
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if key := r.Header.Get("x-api-key"); key != "" {
			if !m.ValidAPIKey(key) {
				m.logger.Warn("invalid API key attempt",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				unauthorized(w, "Invalid API key")
				return
			}
			admin := &AdminContext{Subject: APIKeySubject, Method: MethodAPIKey}
			next.ServeHTTP(w, r.WithContext(WithAdminContext(r.Context(), admin)))
			return
		}

		header := r.Header.Get("Authorization")
		if header == "" {
			unauthorized(w, "Missing authorization header")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.tokens.Validate(parts[1])
		if err != nil {
			m.logger.Warn("token validation failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			unauthorized(w, err.Error())
			return
		}

		admin := &AdminContext{Subject: claims.Subject, Method: MethodToken}
		next.ServeHTTP(w, r.WithContext(WithAdminContext(r.Context(), admin)))
	})
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:   domain.ErrorTypeUnauthorized,
		Title:  "Unauthorized",
		Status: http.StatusUnauthorized,
		Detail: detail,
	})
}
