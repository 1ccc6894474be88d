package handler

import (
	"net/http"

	"github.com/garrettladley/creem/internal/version"
	"github.com/garrettladley/creem/internal/xhttp"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func HandleHealth(w http.ResponseWriter, _ *http.Request) {
	xhttp.WriteOK(w, healthResponse{Status: "ok", Version: version.Get()})
}
