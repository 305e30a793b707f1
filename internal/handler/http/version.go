package http

import (
	"net/http"
)

type buildInfoVO struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func (h *Handler) getServerVersion(r *http.Request) (any, error) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	return buildInfoVO{
		Version: info.BuildVersion(),
		Date:    info.BuildDate(),
		Commit:  info.BuildCommit(),
	}, nil
}
