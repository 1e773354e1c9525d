// Package sync is the gateway between the trip service and its document
// store. It persists records, hands out storage-assigned ids and pushes the
// complete current result set to every subscriber after each insert or
// delete. Subscribers replace their whole in-memory list on every push;
// there are no incremental diffs.
package sync

import (
	"context"
	"log/slog"
	gosync "sync"

	"github.com/naufalhakm/rekap-perjadin/internal"
	"github.com/naufalhakm/rekap-perjadin/internal/core/events"
	"github.com/naufalhakm/rekap-perjadin/internal/trip"
)

type Gateway struct {
	repo   trip.RepositoryAPI
	bus    *events.EventBus
	logger *slog.Logger

	mu        gosync.RWMutex
	subs      map[int64]func(trips []*trip.Trip)
	nextSubID int64
	connected bool
}

// Connect builds the gateway and verifies the store is reachable before
// any caller depends on it. Operations on a gateway that never connected
// fail with ErrNotConnected instead of panicking.
func Connect(repo trip.RepositoryAPI, bus *events.EventBus, logger *slog.Logger) (*Gateway, error) {
	g := &Gateway{
		repo:   repo,
		bus:    bus,
		logger: logger,
		subs:   make(map[int64]func(trips []*trip.Trip)),
	}

	if _, err := repo.ListAll(); err != nil {
		logger.Error("store probe failed", "error", err)
		return nil, internal.ErrNotConnected.WithCause(err)
	}

	bus.Subscribe(events.TypeTripCreated, g.onChange)
	bus.Subscribe(events.TypeTripDeleted, g.onChange)

	g.mu.Lock()
	g.connected = true
	g.mu.Unlock()

	logger.Info("sync gateway connected")
	return g, nil
}

// Close detaches every subscriber and refuses further operations.
func (g *Gateway) Close() {
	g.mu.Lock()
	g.connected = false
	g.subs = make(map[int64]func(trips []*trip.Trip))
	g.mu.Unlock()

	g.logger.Info("sync gateway closed")
}

func (g *Gateway) isConnected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.connected
}

// CreateRecord persists a new trip and returns its storage-assigned id.
// Every subscriber, the writer included, receives the updated snapshot
// before this returns.
func (g *Gateway) CreateRecord(ctx context.Context, t *trip.Trip) (string, error) {
	if !g.isConnected() {
		return "", internal.ErrNotConnected
	}

	dm := trip.ToDataModel(t)
	if err := g.repo.Create(dm); err != nil {
		return "", err
	}

	if err := g.bus.PublishSync(ctx, events.NewTripCreated(dm.ID)); err != nil {
		g.logger.Error("snapshot push after create failed", "error", err, "trip_id", dm.ID)
	}

	return dm.ID, nil
}

func (g *Gateway) DeleteRecord(ctx context.Context, id string) error {
	if !g.isConnected() {
		return internal.ErrNotConnected
	}

	if err := g.repo.Delete(id); err != nil {
		return err
	}

	if err := g.bus.PublishSync(ctx, events.NewTripDeleted(id)); err != nil {
		g.logger.Error("snapshot push after delete failed", "error", err, "trip_id", id)
	}

	return nil
}

// Snapshot returns the full current record set in storage order.
func (g *Gateway) Snapshot(ctx context.Context) ([]*trip.Trip, error) {
	if !g.isConnected() {
		return nil, internal.ErrNotConnected
	}

	models, err := g.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return trip.FromDataModelSlice(models), nil
}

// Subscribe registers a push-replace observer and immediately delivers the
// current snapshot, matching how the original real-time listener behaved.
// The returned function detaches the observer.
func (g *Gateway) Subscribe(fn func(trips []*trip.Trip)) (unsubscribe func()) {
	g.mu.Lock()
	id := g.nextSubID
	g.nextSubID++
	g.subs[id] = fn
	g.mu.Unlock()

	if models, err := g.repo.ListAll(); err == nil {
		fn(trip.FromDataModelSlice(models))
	} else {
		g.logger.Error("initial snapshot load failed", "error", err)
	}

	return func() {
		g.mu.Lock()
		delete(g.subs, id)
		g.mu.Unlock()
	}
}

// onChange reloads the collection and fans the snapshot out to every
// subscriber. Each subscriber gets its own slice so sorting downstream
// cannot race another consumer.
func (g *Gateway) onChange(ctx context.Context, event events.Event) error {
	if !g.isConnected() {
		return nil
	}

	models, err := g.repo.ListAll()
	if err != nil {
		g.logger.Error("snapshot reload failed", "error", err, "event_type", event.EventType())
		return err
	}
	trips := trip.FromDataModelSlice(models)

	g.mu.RLock()
	subs := make([]func(trips []*trip.Trip), 0, len(g.subs))
	for _, fn := range g.subs {
		subs = append(subs, fn)
	}
	g.mu.RUnlock()

	for _, fn := range subs {
		snap := make([]*trip.Trip, len(trips))
		copy(snap, trips)
		fn(snap)
	}

	return nil
}
