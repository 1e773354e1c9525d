package trip

import "time"

// Trip is the persistence model for one travel-expense claim. Records are
// immutable after creation: there is no update path, only insert and delete.
type Trip struct {
	ID               string  `gorm:"primaryKey;column:id"`
	TravelerName     string  `gorm:"column:traveler_name;not null"`
	Destination      string  `gorm:"column:destination;not null"`
	LodgingName      string  `gorm:"column:lodging_name"`
	StartDate        string  `gorm:"column:start_date;not null"`
	EndDate          string  `gorm:"column:end_date;not null"`
	Purpose          string  `gorm:"column:purpose;not null"`
	VehicleKind      string  `gorm:"column:vehicle_kind;not null"`
	TicketNumber     string  `gorm:"column:ticket_number"`
	Seat             string  `gorm:"column:seat"`
	SuratTugasNumber string  `gorm:"column:surat_tugas_number;not null"`
	NotaDinasNumber  string  `gorm:"column:nota_dinas_number;not null"`
	NotaDinasFileURL string  `gorm:"column:nota_dinas_file_url"`
	FuelCost         int64   `gorm:"column:fuel_cost;not null"`
	TollCost         int64   `gorm:"column:toll_cost;not null"`
	LodgingCost      int64   `gorm:"column:lodging_cost;not null"`
	MealCost         int64   `gorm:"column:meal_cost;not null"`
	LocalTransport   int64   `gorm:"column:local_transport_cost;not null"`
	TicketPrice      int64   `gorm:"column:ticket_price;not null"`
	TotalCost        int64   `gorm:"column:total_cost;not null"`
	AuthorID         *string `gorm:"column:author_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Trip) TableName() string {
	return "trips"
}
