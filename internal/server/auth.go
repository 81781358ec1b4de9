package server

import (
	"encoding/json"
	"net/http"
)

// tokenSubject is the subject placed in issued JWTs. The API uses a single
// shared access token, not per-user accounts.
const tokenSubject = "api-client"

// TokenRequest is the request body for /api/auth/token.
type TokenRequest struct {
	AccessToken string `json:"access_token"`
}

// TokenResponse carries a freshly issued JWT.
type TokenResponse struct {
	Token           string `json:"token"`
	ExpirationHours int    `json:"expiration_hours"`
}

// handleIssueToken exchanges the shared access token for a signed JWT.
func (s *Server) handleIssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.AccessToken == "" {
		s.errorResponse(w, http.StatusBadRequest, "access_token is required")
		return
	}

	if !s.tokenConfig.VerifyToken(req.AccessToken) {
		s.errorResponse(w, HTTPStatus(&ErrInvalidToken{}), (&ErrInvalidToken{}).Error())
		return
	}

	token, err := s.jwtService.GenerateToken(tokenSubject)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	s.jsonResponse(w, http.StatusOK, TokenResponse{
		Token:           token,
		ExpirationHours: s.jwtService.config.ExpirationHours,
	})
}
