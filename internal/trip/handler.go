package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/naufalhakm/rekap-perjadin/internal/transport"
	"github.com/naufalhakm/rekap-perjadin/pkg/logger"
)

type ServiceAPI interface {
	CreateTrip(ctx context.Context, dto *CreateTripDTO) (*Trip, error)
	DeleteTrip(ctx context.Context, id string) error
	ListTrips(ctx context.Context) ([]*Trip, error)
	Summarize(ctx context.Context) (*Summary, error)
	Subscribe(fn func(trips []*Trip)) (unsubscribe func())
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var dto CreateTripDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateTrip: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.Service.CreateTrip(r.Context(), &dto)
	if err != nil {
		h.Logger.Error("CreateTrip: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateTrip: trip created",
		"trip_id", t.ID,
		"traveler", t.TravelerName,
		"total_cost", t.TotalCost)

	h.WriteJSON(w, http.StatusCreated, t)
}

func (h *Handler) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := h.Service.ListTrips(r.Context())
	if err != nil {
		h.Logger.Error("ListTrips: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"trips": trips,
		"count": len(trips),
	})
}

func (h *Handler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.WriteError(w, http.StatusBadRequest, "trip id is required")
		return
	}

	if err := h.Service.DeleteTrip(r.Context(), id); err != nil {
		h.Logger.Error("DeleteTrip: service error", "error", err, "trip_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summarize(r.Context())
	if err != nil {
		h.Logger.Error("Summary: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}

// StreamTrips serves the subscription contract over server-sent events.
// Every event carries the complete current record set; clients replace
// their whole list on each message rather than patching it.
func (h *Handler) StreamTrips(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.WriteError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	snapshots := make(chan []*Trip, 1)
	unsubscribe := h.Service.Subscribe(func(trips []*Trip) {
		// keep only the latest snapshot if the client is slow
		select {
		case snapshots <- trips:
		default:
			select {
			case <-snapshots:
			default:
			}
			select {
			case snapshots <- trips:
			default:
			}
		}
	})
	defer unsubscribe()

	for {
		select {
		case <-r.Context().Done():
			return
		case trips := <-snapshots:
			payload, err := json.Marshal(map[string]interface{}{
				"trips": trips,
				"count": len(trips),
			})
			if err != nil {
				h.Logger.Error("StreamTrips: failed to marshal snapshot", "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
