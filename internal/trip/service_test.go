package trip_test

import (
	"context"
	"errors"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/naufalhakm/rekap-perjadin/internal"
	"github.com/naufalhakm/rekap-perjadin/internal/trip"
)

// Mock gateway for testing
type mockGateway struct {
	records     map[string]*trip.Trip
	created     []*trip.Trip
	nextID      int
	createError error
	deleteError error
	listError   error
	subscribers []func(trips []*trip.Trip)
}

func newMockGateway() *mockGateway {
	return &mockGateway{
		records: make(map[string]*trip.Trip),
		nextID:  1,
	}
}

func (m *mockGateway) CreateRecord(ctx context.Context, t *trip.Trip) (string, error) {
	if m.createError != nil {
		return "", m.createError
	}

	id := string(rune('a' + m.nextID - 1))
	m.nextID++

	stored := *t
	stored.ID = id
	m.records[id] = &stored
	m.created = append(m.created, &stored)
	m.push()
	return id, nil
}

func (m *mockGateway) DeleteRecord(ctx context.Context, id string) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	if _, ok := m.records[id]; !ok {
		return internal.ErrTripNotFound
	}
	delete(m.records, id)
	m.push()
	return nil
}

func (m *mockGateway) Snapshot(ctx context.Context) ([]*trip.Trip, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.all(), nil
}

func (m *mockGateway) Subscribe(fn func(trips []*trip.Trip)) func() {
	m.subscribers = append(m.subscribers, fn)
	fn(m.all())
	return func() {}
}

func (m *mockGateway) all() []*trip.Trip {
	trips := make([]*trip.Trip, 0, len(m.records))
	for _, t := range m.created {
		if _, ok := m.records[t.ID]; ok {
			trips = append(trips, t)
		}
	}
	return trips
}

func (m *mockGateway) push() {
	for _, fn := range m.subscribers {
		fn(m.all())
	}
}

var _ = Describe("Trip Service", func() {
	var (
		gateway *mockGateway
		service *trip.Service
	)

	BeforeEach(func() {
		gateway = newMockGateway()
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = trip.NewService(gateway, slogger)
	})

	Describe("CreateTrip", func() {
		It("persists a valid submission with its derived total", func() {
			dto := validDTO()
			dto.FuelCost = "350.000"
			dto.TollCost = "150.000"

			created, err := service.CreateTrip(context.Background(), dto)

			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeEmpty())
			Expect(created.TotalCost).To(Equal(int64(500000)))
			Expect(gateway.created).To(HaveLen(1))
		})

		It("stamps the record with the session identity from context", func() {
			ctx := internal.ContextWithSessionID(context.Background(), "session-xyz")

			created, err := service.CreateTrip(ctx, validDTO())

			Expect(err).NotTo(HaveOccurred())
			Expect(created.AuthorID).NotTo(BeNil())
			Expect(*created.AuthorID).To(Equal("session-xyz"))
		})

		It("stores a null author without a session", func() {
			created, err := service.CreateTrip(context.Background(), validDTO())

			Expect(err).NotTo(HaveOccurred())
			Expect(created.AuthorID).To(BeNil())
		})

		It("rejects invalid submissions before any write reaches the gateway", func() {
			dto := validDTO()
			dto.VehicleKind = string(trip.VehiclePesawat)
			dto.TicketPrice = ""

			_, err := service.CreateTrip(context.Background(), dto)

			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			Expect(gateway.created).To(BeEmpty())
		})

		It("propagates gateway failures without touching local state", func() {
			gateway.createError = errors.New("store down")

			_, err := service.CreateTrip(context.Background(), validDTO())

			Expect(err).To(HaveOccurred())
			Expect(gateway.records).To(BeEmpty())
		})

		It("keeps the stored total equal to the cost sum for every record handed over", func() {
			dtos := []*trip.CreateTripDTO{validDTO(), validDTO(), validDTO()}
			dtos[0].FuelCost = "100.000"
			dtos[1].MealCost = "75.500"
			dtos[2].VehicleKind = string(trip.VehicleKereta)
			dtos[2].TicketPrice = "550.000"
			dtos[2].LodgingCost = "900.000"

			for _, dto := range dtos {
				_, err := service.CreateTrip(context.Background(), dto)
				Expect(err).NotTo(HaveOccurred())
			}

			for _, stored := range gateway.created {
				Expect(stored.TotalCost).To(Equal(stored.RecomputeTotal()))
			}
		})
	})

	Describe("DeleteTrip", func() {
		It("deletes an existing record", func() {
			created, err := service.CreateTrip(context.Background(), validDTO())
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteTrip(context.Background(), created.ID)).To(Succeed())

			trips, err := service.ListTrips(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(trips).To(BeEmpty())
		})

		It("surfaces not-found for unknown ids", func() {
			err := service.DeleteTrip(context.Background(), "missing")
			Expect(err).To(Equal(internal.ErrTripNotFound))
		})
	})

	Describe("ListTrips", func() {
		It("returns trips sorted by start date, most recent first", func() {
			for _, date := range []string{"2024-01-10", "2024-03-01", "2024-02-15"} {
				dto := validDTO()
				dto.StartDate = date
				_, err := service.CreateTrip(context.Background(), dto)
				Expect(err).NotTo(HaveOccurred())
			}

			trips, err := service.ListTrips(context.Background())

			Expect(err).NotTo(HaveOccurred())
			Expect(trips).To(HaveLen(3))
			Expect(trips[0].StartDate).To(Equal("2024-03-01"))
			Expect(trips[1].StartDate).To(Equal("2024-02-15"))
			Expect(trips[2].StartDate).To(Equal("2024-01-10"))
		})
	})

	Describe("Summarize", func() {
		It("counts records and sums their stored totals", func() {
			first := validDTO()
			first.FuelCost = "100.000"
			second := validDTO()
			second.MealCost = "250.000"

			_, err := service.CreateTrip(context.Background(), first)
			Expect(err).NotTo(HaveOccurred())
			_, err = service.CreateTrip(context.Background(), second)
			Expect(err).NotTo(HaveOccurred())

			summary, err := service.Summarize(context.Background())

			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Count).To(Equal(2))
			Expect(summary.GrandTotal).To(Equal(int64(350000)))
			Expect(summary.GrandTotalDisplay).To(ContainSubstring("Rp"))
		})
	})

	Describe("Subscribe", func() {
		It("pushes a sorted full snapshot on every change", func() {
			var lastSnapshot []*trip.Trip
			unsubscribe := service.Subscribe(func(trips []*trip.Trip) {
				lastSnapshot = trips
			})
			defer unsubscribe()

			early := validDTO()
			early.StartDate = "2024-01-10"
			late := validDTO()
			late.StartDate = "2024-03-01"

			_, err := service.CreateTrip(context.Background(), early)
			Expect(err).NotTo(HaveOccurred())
			created, err := service.CreateTrip(context.Background(), late)
			Expect(err).NotTo(HaveOccurred())

			Expect(lastSnapshot).To(HaveLen(2))
			Expect(lastSnapshot[0].StartDate).To(Equal("2024-03-01"))

			Expect(service.DeleteTrip(context.Background(), created.ID)).To(Succeed())

			Expect(lastSnapshot).To(HaveLen(1))
			for _, t := range lastSnapshot {
				Expect(t.ID).NotTo(Equal(created.ID))
			}
		})
	})
})
