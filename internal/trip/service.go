package trip

import (
	"context"
	"log/slog"

	"github.com/naufalhakm/rekap-perjadin/internal"
	"github.com/naufalhakm/rekap-perjadin/pkg/formatter"
)

// SyncGateway is the storage collaborator: it persists records, assigns
// their ids and pushes the full current result set to subscribers on every
// change.
type SyncGateway interface {
	CreateRecord(ctx context.Context, t *Trip) (string, error)
	DeleteRecord(ctx context.Context, id string) error
	Snapshot(ctx context.Context) ([]*Trip, error)
	Subscribe(fn func(trips []*Trip)) (unsubscribe func())
}

// Summary mirrors the footer of the recap table: how many claims exist and
// what they cost in total.
type Summary struct {
	Count             int    `json:"count"`
	GrandTotal        int64  `json:"grand_total"`
	GrandTotalDisplay string `json:"grand_total_display"`
}

type Service struct {
	gateway SyncGateway
	logger  *slog.Logger
}

func NewService(gateway SyncGateway, logger *slog.Logger) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger,
	}
}

// CreateTrip validates the submission, derives the stored total and hands
// the record to the gateway. Validation failures never reach storage.
func (s *Service) CreateTrip(ctx context.Context, dto *CreateTripDTO) (*Trip, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("trip validation failed", "error", err)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	var authorID *string
	if sessionID := internal.SessionIDFromContext(ctx); sessionID != "" {
		authorID = &sessionID
	}

	t := dto.ToTrip(authorID)

	id, err := s.gateway.CreateRecord(ctx, t)
	if err != nil {
		s.logger.Error("failed to create trip", "error", err, "traveler", t.TravelerName)
		return nil, err
	}
	t.ID = id

	s.logger.Info("trip created",
		"trip_id", t.ID,
		"traveler", t.TravelerName,
		"destination", t.Destination,
		"total_cost", t.TotalCost)

	return t, nil
}

func (s *Service) DeleteTrip(ctx context.Context, id string) error {
	if err := s.gateway.DeleteRecord(ctx, id); err != nil {
		s.logger.Error("failed to delete trip", "error", err, "trip_id", id)
		return err
	}

	s.logger.Info("trip deleted", "trip_id", id)
	return nil
}

// ListTrips returns the full current record set sorted most-recent-first.
// Sorting happens here, after retrieval, never at the storage layer.
func (s *Service) ListTrips(ctx context.Context) ([]*Trip, error) {
	trips, err := s.gateway.Snapshot(ctx)
	if err != nil {
		s.logger.Error("failed to list trips", "error", err)
		return nil, err
	}

	SortByStartDateDesc(trips)
	return trips, nil
}

func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	trips, err := s.gateway.Snapshot(ctx)
	if err != nil {
		s.logger.Error("failed to summarize trips", "error", err)
		return nil, err
	}

	var grandTotal int64
	for _, t := range trips {
		grandTotal += t.TotalCost
	}

	return &Summary{
		Count:             len(trips),
		GrandTotal:        grandTotal,
		GrandTotalDisplay: formatter.Rupiah(grandTotal),
	}, nil
}

// Subscribe registers a push-replace observer: every callback delivers the
// complete sorted record set, never a diff.
func (s *Service) Subscribe(fn func(trips []*Trip)) (unsubscribe func()) {
	return s.gateway.Subscribe(func(trips []*Trip) {
		SortByStartDateDesc(trips)
		fn(trips)
	})
}
