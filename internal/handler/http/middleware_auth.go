package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jasvilladarez/ello-go/internal/app"
	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/internal/utils"
)

// auth rejects requests to the versioned API that do not carry a live bearer
// token issued by the token endpoint.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error())
			return
		}

		token, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, http.StatusUnauthorized, err.Error())
			return
		}

		if err = h.services.TokenIssuer.Authorize(r.Context(), token); err != nil {
			log.Err(err).Msg(app.MsgTokenIsExpiredOrInvalid)
			h.writeServiceError(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the token of a "Bearer <token>" header.
// The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found {
		return "", ErrInvalidAuthorizationHeader
	}
	if !strings.EqualFold(scheme, "bearer") {
		return "", errors.Join(ErrInvalidAuthorizationHeader, ErrUnsupportedScheme)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
