package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jasvilladarez/ello-go/internal/app"
	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/internal/service"
	"github.com/jasvilladarez/ello-go/internal/utils"
	"github.com/jasvilladarez/ello-go/models"
)

// OAuth error codes of the token endpoint.
const (
	oauthInvalidRequest       = "invalid_request"
	oauthInvalidClient        = "invalid_client"
	oauthUnsupportedGrantType = "unsupported_grant_type"
)

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidTokenRequest)
		writeOAuthError(w, ErrInvalidTokenRequest)
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		log.Err(err).Msg(app.MsgInvalidTokenRequest)
		writeOAuthError(w, err)
		return
	}

	token, err := h.services.TokenIssuer.IssueToken(r.Context(), req)
	if err != nil {
		log.Err(err).Str("client_id", req.ClientID).Msg("token request rejected")
		writeOAuthError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, token, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write token")
	}
}

// writeOAuthError writes the flat error/error_description body OAuth clients
// expect from the token endpoint.
func writeOAuthError(w http.ResponseWriter, err error) {
	code := oauthInvalidRequest
	switch {
	case errors.Is(err, service.ErrInvalidClient):
		code = oauthInvalidClient
	case errors.Is(err, service.ErrUnsupportedGrantType):
		code = oauthUnsupportedGrantType
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		status = http.StatusBadRequest
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Error:            code,
		ErrorDescription: err.Error(),
	}, status)
}
