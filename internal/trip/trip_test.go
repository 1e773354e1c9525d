package trip_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/naufalhakm/rekap-perjadin/internal/trip"
)

var _ = Describe("VehicleKind", func() {
	It("recognizes all six kinds as valid", func() {
		for _, kind := range []trip.VehicleKind{
			trip.VehiclePribadi,
			trip.VehicleDinas,
			trip.VehiclePesawat,
			trip.VehicleKereta,
			trip.VehicleBusTravel,
			trip.VehicleKapal,
		} {
			Expect(kind.Valid()).To(BeTrue(), "kind %s", kind)
		}
	})

	It("rejects unknown kinds", func() {
		Expect(trip.VehicleKind("Sepeda").Valid()).To(BeFalse())
		Expect(trip.VehicleKind("").Valid()).To(BeFalse())
	})

	It("treats everything except private and official vehicles as public transport", func() {
		Expect(trip.VehiclePribadi.IsPublicTransport()).To(BeFalse())
		Expect(trip.VehicleDinas.IsPublicTransport()).To(BeFalse())
		Expect(trip.VehiclePesawat.IsPublicTransport()).To(BeTrue())
		Expect(trip.VehicleKereta.IsPublicTransport()).To(BeTrue())
		Expect(trip.VehicleBusTravel.IsPublicTransport()).To(BeTrue())
		Expect(trip.VehicleKapal.IsPublicTransport()).To(BeTrue())
	})

	It("has no seat assignment for bus/travel or non-public kinds", func() {
		Expect(trip.VehicleBusTravel.HasSeat()).To(BeFalse())
		Expect(trip.VehiclePribadi.HasSeat()).To(BeFalse())
		Expect(trip.VehicleDinas.HasSeat()).To(BeFalse())
		Expect(trip.VehiclePesawat.HasSeat()).To(BeTrue())
		Expect(trip.VehicleKereta.HasSeat()).To(BeTrue())
		Expect(trip.VehicleKapal.HasSeat()).To(BeTrue())
	})
})

var _ = Describe("SumCosts", func() {
	It("sums all six cost fields", func() {
		Expect(trip.SumCosts(1, 2, 3, 4, 5, 6)).To(Equal(int64(21)))
		Expect(trip.SumCosts(0, 0, 0, 0, 0, 0)).To(Equal(int64(0)))
	})

	It("handles realistic currency amounts without overflow", func() {
		Expect(trip.SumCosts(1_500_000_000, 1_500_000_000, 0, 0, 0, 0)).
			To(Equal(int64(3_000_000_000)))
	})

	It("equals RecomputeTotal over the stored breakdown", func() {
		cases := [][6]int64{
			{0, 0, 0, 0, 0, 0},
			{100000, 50000, 900000, 350000, 150000, 550000},
			{1, 10, 100, 1000, 10000, 100000},
		}
		for _, c := range cases {
			t := &trip.Trip{
				FuelCost:       c[0],
				TollCost:       c[1],
				LodgingCost:    c[2],
				MealCost:       c[3],
				LocalTransport: c[4],
				TicketPrice:    c[5],
			}
			Expect(t.RecomputeTotal()).To(Equal(c[0] + c[1] + c[2] + c[3] + c[4] + c[5]))
		}
	})
})

var _ = Describe("SortByStartDateDesc", func() {
	It("orders most recent start date first", func() {
		trips := []*trip.Trip{
			{ID: "a", StartDate: "2024-01-10"},
			{ID: "b", StartDate: "2024-03-01"},
			{ID: "c", StartDate: "2024-02-15"},
		}

		trip.SortByStartDateDesc(trips)

		Expect(trips[0].StartDate).To(Equal("2024-03-01"))
		Expect(trips[1].StartDate).To(Equal("2024-02-15"))
		Expect(trips[2].StartDate).To(Equal("2024-01-10"))
	})

	It("keeps the incoming order for equal start dates", func() {
		trips := []*trip.Trip{
			{ID: "first", StartDate: "2024-02-15"},
			{ID: "second", StartDate: "2024-02-15"},
		}

		trip.SortByStartDateDesc(trips)

		Expect(trips[0].ID).To(Equal("first"))
		Expect(trips[1].ID).To(Equal("second"))
	})
})
