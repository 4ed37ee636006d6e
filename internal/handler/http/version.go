package http

import (
	"net/http"

	"github.com/jasvilladarez/ello-go/internal/logger"
	"github.com/jasvilladarez/ello-go/internal/utils"
)

type versionResponse struct {
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppVersion(r.Context())

	_, err := utils.WriteJSON(w, versionResponse{
		BuildVersion: info.BuildVersion(),
		BuildDate:    info.BuildDate(),
		BuildCommit:  info.BuildCommit(),
	}, http.StatusOK)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write version")
	}
}
