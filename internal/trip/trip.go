package trip

import (
	"sort"

	tripDatamodel "github.com/naufalhakm/rekap-perjadin/internal/core/datamodel/trip"
)

// VehicleKind is the transport mode of a trip. The string values are the
// wire values stored with every record and shown in the recap export.
type VehicleKind string

const (
	VehiclePribadi   VehicleKind = "Pribadi"
	VehicleDinas     VehicleKind = "Dinas"
	VehiclePesawat   VehicleKind = "Umum-Pesawat"
	VehicleKereta    VehicleKind = "Umum-Kereta"
	VehicleBusTravel VehicleKind = "Umum-BusTravel"
	VehicleKapal     VehicleKind = "Umum-Kapal"
)

func (v VehicleKind) Valid() bool {
	switch v {
	case VehiclePribadi, VehicleDinas, VehiclePesawat, VehicleKereta, VehicleBusTravel, VehicleKapal:
		return true
	}
	return false
}

// IsPublicTransport reports whether the kind requires a paid ticket.
// Everything other than a private or official vehicle counts as public.
func (v VehicleKind) IsPublicTransport() bool {
	return v.Valid() && v != VehiclePribadi && v != VehicleDinas
}

// HasSeat reports whether the kind carries a seat assignment. Bus/travel
// tickets have no seat field even though a ticket price is required.
func (v VehicleKind) HasSeat() bool {
	return v.IsPublicTransport() && v != VehicleBusTravel
}

// Trip is one travel-expense claim. ID is assigned by the storage layer on
// creation and the record never changes afterwards; deletion is the only
// mutation this system supports.
type Trip struct {
	ID               string      `json:"id,omitempty"`
	TravelerName     string      `json:"traveler_name"`
	Destination      string      `json:"destination"`
	LodgingName      string      `json:"lodging_name,omitempty"`
	StartDate        string      `json:"start_date"`
	EndDate          string      `json:"end_date"`
	Purpose          string      `json:"purpose"`
	VehicleKind      VehicleKind `json:"vehicle_kind"`
	TicketNumber     string      `json:"ticket_number,omitempty"`
	Seat             string      `json:"seat,omitempty"`
	SuratTugasNumber string      `json:"surat_tugas_number"`
	NotaDinasNumber  string      `json:"nota_dinas_number"`
	NotaDinasFileURL string      `json:"nota_dinas_file_url,omitempty"`

	FuelCost       int64 `json:"fuel_cost"`
	TollCost       int64 `json:"toll_cost"`
	LodgingCost    int64 `json:"lodging_cost"`
	MealCost       int64 `json:"meal_cost"`
	LocalTransport int64 `json:"local_transport_cost"`
	TicketPrice    int64 `json:"ticket_price"`

	// TotalCost is computed once at creation and stored with the record.
	// Readers never recompute it.
	TotalCost int64 `json:"total_cost"`

	AuthorID *string `json:"author_id,omitempty"`
}

// SumCosts is the expense calculator: the stored total of a record is
// exactly this sum over its six cost fields at creation time.
func SumCosts(fuel, toll, lodging, meal, localTransport, ticketPrice int64) int64 {
	return fuel + toll + lodging + meal + localTransport + ticketPrice
}

// RecomputeTotal sums the cost fields as stored. It exists so tests can
// assert the stored TotalCost never drifts from the breakdown.
func (t *Trip) RecomputeTotal() int64 {
	return SumCosts(t.FuelCost, t.TollCost, t.LodgingCost, t.MealCost, t.LocalTransport, t.TicketPrice)
}

// SortByStartDateDesc orders trips most-recent-first by start date. ISO
// dates compare lexicographically, ties keep their incoming order.
func SortByStartDateDesc(trips []*Trip) {
	sort.SliceStable(trips, func(i, j int) bool {
		return trips[i].StartDate > trips[j].StartDate
	})
}

func ToDataModel(t *Trip) *tripDatamodel.Trip {
	return &tripDatamodel.Trip{
		ID:               t.ID,
		TravelerName:     t.TravelerName,
		Destination:      t.Destination,
		LodgingName:      t.LodgingName,
		StartDate:        t.StartDate,
		EndDate:          t.EndDate,
		Purpose:          t.Purpose,
		VehicleKind:      string(t.VehicleKind),
		TicketNumber:     t.TicketNumber,
		Seat:             t.Seat,
		SuratTugasNumber: t.SuratTugasNumber,
		NotaDinasNumber:  t.NotaDinasNumber,
		NotaDinasFileURL: t.NotaDinasFileURL,
		FuelCost:         t.FuelCost,
		TollCost:         t.TollCost,
		LodgingCost:      t.LodgingCost,
		MealCost:         t.MealCost,
		LocalTransport:   t.LocalTransport,
		TicketPrice:      t.TicketPrice,
		TotalCost:        t.TotalCost,
		AuthorID:         t.AuthorID,
	}
}

func FromDataModel(t *tripDatamodel.Trip) *Trip {
	return &Trip{
		ID:               t.ID,
		TravelerName:     t.TravelerName,
		Destination:      t.Destination,
		LodgingName:      t.LodgingName,
		StartDate:        t.StartDate,
		EndDate:          t.EndDate,
		Purpose:          t.Purpose,
		VehicleKind:      VehicleKind(t.VehicleKind),
		TicketNumber:     t.TicketNumber,
		Seat:             t.Seat,
		SuratTugasNumber: t.SuratTugasNumber,
		NotaDinasNumber:  t.NotaDinasNumber,
		NotaDinasFileURL: t.NotaDinasFileURL,
		FuelCost:         t.FuelCost,
		TollCost:         t.TollCost,
		LodgingCost:      t.LodgingCost,
		MealCost:         t.MealCost,
		LocalTransport:   t.LocalTransport,
		TicketPrice:      t.TicketPrice,
		TotalCost:        t.TotalCost,
		AuthorID:         t.AuthorID,
	}
}

func FromDataModelSlice(models []*tripDatamodel.Trip) []*Trip {
	result := make([]*Trip, len(models))
	for i, m := range models {
		result[i] = FromDataModel(m)
	}
	return result
}
