package rest

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/naufalhakm/rekap-perjadin/internal/auth"
	"github.com/naufalhakm/rekap-perjadin/internal/transport/middleware"
	"github.com/naufalhakm/rekap-perjadin/internal/trip"
)

// RegisterAllRoutes wires the recap API. Everything is reachable with the
// null identity; the session middleware only stamps records, it never gates
// access.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, tripHandler *trip.Handler, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if authHandler != nil {
			r.Post("/session", authHandler.CreateSession)
		}

		if tripHandler != nil {
			exportHandler := NewExportHandler(tripHandler.Service)

			r.Group(func(tr chi.Router) {
				if authHandler != nil {
					tr.Use(authHandler.SessionMiddleware)
				}

				tr.Route("/trips", func(er chi.Router) {
					er.Post("/", tripHandler.CreateTrip)
					er.Get("/", tripHandler.ListTrips)
					er.Get("/export", exportHandler.DownloadCSV)
					er.Get("/stream", tripHandler.StreamTrips)
					er.Get("/summary", tripHandler.Summary)
					er.Delete("/{id}", tripHandler.DeleteTrip)
				})
			})
		}
	})
}
