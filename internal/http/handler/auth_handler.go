package handler

import (
	"net/http"

	"github.com/datalab-ge/datalab-api/internal/auth"
	"github.com/datalab-ge/datalab-api/internal/domain"
	"go.uber.org/zap"
)

// AuthHandler exchanges the admin API key for a session token
type AuthHandler struct {
	middleware *auth.Middleware
	tokens     *auth.TokenIssuer
	logger     *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(middleware *auth.Middleware, tokens *auth.TokenIssuer, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{middleware: middleware, tokens: tokens, logger: logger}
}

// Token godoc
// @Summary Issue admin session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body domain.TokenRequest true "Admin API key"
// @Success 200 {object} domain.TokenResponse
// @Failure 401 {object} domain.APIError
// @Failure 503 {object} domain.APIError
// @Router /auth/token [post]
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req domain.TokenRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if !h.tokens.Enabled() {
		respondWithError(w, http.StatusServiceUnavailable, "Token authentication is not configured")
		return
	}

	if !h.middleware.ValidAPIKey(req.APIKey) {
		h.logger.Warn("token request with invalid API key", zap.String("remote_addr", r.RemoteAddr))
		respondWithError(w, http.StatusUnauthorized, "Invalid API key")
		return
	}

	token, expiresAt, err := h.tokens.Issue(auth.APIKeySubject)
	if err != nil {
		h.logger.Error("failed to issue token", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	respondJSON(w, http.StatusOK, domain.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}
