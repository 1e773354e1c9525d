package trip

import (
	"errors"
	"strconv"
	"strings"
)

// CreateTripDTO carries raw form values. Numeric fields arrive as the text
// the user typed, thousands separators included, and are normalized by
// ParseAmount.
type CreateTripDTO struct {
	TravelerName     string `json:"traveler_name"`
	Destination      string `json:"destination"`
	LodgingName      string `json:"lodging_name,omitempty"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Purpose          string `json:"purpose"`
	VehicleKind      string `json:"vehicle_kind"`
	TicketNumber     string `json:"ticket_number,omitempty"`
	Seat             string `json:"seat,omitempty"`
	SuratTugasNumber string `json:"surat_tugas_number"`
	NotaDinasNumber  string `json:"nota_dinas_number"`
	NotaDinasFileURL string `json:"nota_dinas_file_url,omitempty"`

	FuelCost       string `json:"fuel_cost"`
	TollCost       string `json:"toll_cost"`
	LodgingCost    string `json:"lodging_cost"`
	MealCost       string `json:"meal_cost"`
	LocalTransport string `json:"local_transport_cost"`
	TicketPrice    string `json:"ticket_price"`
}

// ParseAmount strips every non-digit character from raw input and parses
// the rest as a base-10 integer. "1.500.000" and "1,500,000" both become
// 1500000; empty input becomes 0. Partial garbage like "12a3" collapses to
// 123 on purpose: the form is permissive, not strict.
func ParseAmount(raw string) int64 {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// Validate rejects the submission before any persistence is attempted.
// Messages are the ones shown to the user, hence Indonesian.
func (dto CreateTripDTO) Validate() error {
	if strings.TrimSpace(dto.TravelerName) == "" {
		return errors.New("nama pegawai wajib diisi")
	}
	if strings.TrimSpace(dto.Destination) == "" {
		return errors.New("kota tujuan wajib diisi")
	}
	if strings.TrimSpace(dto.StartDate) == "" {
		return errors.New("tanggal mulai wajib diisi")
	}
	if strings.TrimSpace(dto.EndDate) == "" {
		return errors.New("tanggal selesai wajib diisi")
	}
	if strings.TrimSpace(dto.Purpose) == "" {
		return errors.New("keperluan perjalanan wajib diisi")
	}
	if strings.TrimSpace(dto.SuratTugasNumber) == "" {
		return errors.New("nomor surat tugas wajib diisi")
	}
	if strings.TrimSpace(dto.NotaDinasNumber) == "" {
		return errors.New("nomor nota dinas wajib diisi")
	}

	kind := VehicleKind(dto.VehicleKind)
	if dto.VehicleKind == "" {
		return errors.New("jenis kendaraan wajib diisi")
	}
	if !kind.Valid() {
		return errors.New("jenis kendaraan tidak dikenal")
	}
	if kind.IsPublicTransport() && ParseAmount(dto.TicketPrice) <= 0 {
		return errors.New("Harga Tiket wajib diisi untuk kendaraan umum")
	}

	return nil
}

// ToTrip builds the record that will be handed to the storage gateway. The
// derived total is computed here, exactly once, and stored with the record.
func (dto CreateTripDTO) ToTrip(authorID *string) *Trip {
	fuel := ParseAmount(dto.FuelCost)
	toll := ParseAmount(dto.TollCost)
	lodging := ParseAmount(dto.LodgingCost)
	meal := ParseAmount(dto.MealCost)
	local := ParseAmount(dto.LocalTransport)
	ticket := ParseAmount(dto.TicketPrice)

	kind := VehicleKind(dto.VehicleKind)
	ticketNumber := strings.TrimSpace(dto.TicketNumber)
	seat := strings.TrimSpace(dto.Seat)
	if !kind.IsPublicTransport() {
		ticketNumber = ""
	}
	if !kind.HasSeat() {
		// bus/travel tickets carry no seat assignment
		seat = ""
	}

	return &Trip{
		TravelerName:     strings.TrimSpace(dto.TravelerName),
		Destination:      strings.TrimSpace(dto.Destination),
		LodgingName:      strings.TrimSpace(dto.LodgingName),
		StartDate:        strings.TrimSpace(dto.StartDate),
		EndDate:          strings.TrimSpace(dto.EndDate),
		Purpose:          strings.TrimSpace(dto.Purpose),
		VehicleKind:      kind,
		TicketNumber:     ticketNumber,
		Seat:             seat,
		SuratTugasNumber: strings.TrimSpace(dto.SuratTugasNumber),
		NotaDinasNumber:  strings.TrimSpace(dto.NotaDinasNumber),
		NotaDinasFileURL: strings.TrimSpace(dto.NotaDinasFileURL),
		FuelCost:         fuel,
		TollCost:         toll,
		LodgingCost:      lodging,
		MealCost:         meal,
		LocalTransport:   local,
		TicketPrice:      ticket,
		TotalCost:        SumCosts(fuel, toll, lodging, meal, local, ticket),
		AuthorID:         authorID,
	}
}
