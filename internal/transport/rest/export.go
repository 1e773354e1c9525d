package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/naufalhakm/rekap-perjadin/internal/export"
	"github.com/naufalhakm/rekap-perjadin/internal/transport"
	"github.com/naufalhakm/rekap-perjadin/internal/trip"
	"github.com/naufalhakm/rekap-perjadin/pkg/logger"
)

// ExportHandler serves the recap CSV download. It lives at the transport
// layer so the exporter can depend on the trip domain without the trip
// handlers depending back on the exporter.
type ExportHandler struct {
	*transport.BaseHandler
	Service trip.ServiceAPI
}

func NewExportHandler(service trip.ServiceAPI) *ExportHandler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &ExportHandler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// DownloadCSV streams the recap as a spreadsheet download. With no records
// there is nothing to download: the response is 204 and no file.
func (h *ExportHandler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	trips, err := h.Service.ListTrips(r.Context())
	if err != nil {
		h.Logger.Error("DownloadCSV: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	file := export.Export(trips, time.Now())
	if file == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", file.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		h.Logger.Error("DownloadCSV: failed to write file", "error", err)
	}
}
