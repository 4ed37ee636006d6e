package http

import (
	"errors"
	"net/http"

	"github.com/jasvilladarez/ello-go/internal/app"
	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/internal/service"
	"github.com/jasvilladarez/ello-go/internal/utils"
	"github.com/jasvilladarez/ello-go/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrCategoryNotFound:     http.StatusNotFound,
	service.ErrInvalidCursor:        http.StatusBadRequest,
	service.ErrUnsupportedGrantType: http.StatusBadRequest,
	service.ErrInvalidClient:        http.StatusUnauthorized,
	service.ErrInvalidAccessToken:   http.StatusUnauthorized,
	ErrInvalidTokenRequest:          http.StatusBadRequest,
	validators.ErrEmptyGrantType:    http.StatusBadRequest,
	validators.ErrEmptyClientID:     http.StatusBadRequest,
	validators.ErrInvalidSlug:       http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError writes err as an API error body. Unknown errors are
// logged and hidden behind a generic 500.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg(app.MsgInternalServerError)
		utils.WriteError(w, status, app.MsgInternalServerError)
		return
	}

	utils.WriteError(w, status, err.Error())
}
