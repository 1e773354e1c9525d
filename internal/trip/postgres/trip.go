package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/naufalhakm/rekap-perjadin/internal"
	tripDatamodel "github.com/naufalhakm/rekap-perjadin/internal/core/datamodel/trip"
	"github.com/naufalhakm/rekap-perjadin/internal/trip"
)

// TripRepository implements trip.RepositoryAPI using GORM
type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) trip.RepositoryAPI {
	return &TripRepository{db: db}
}

// Create saves a new trip record. The id is assigned here, by the storage
// layer, never by the caller.
func (r *TripRepository) Create(t *tripDatamodel.Trip) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return r.db.Create(t).Error
}

func (r *TripRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&tripDatamodel.Trip{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return internal.ErrTripNotFound
	}
	return nil
}

func (r *TripRepository) GetByID(id string) (*tripDatamodel.Trip, error) {
	var t tripDatamodel.Trip
	err := r.db.Where("id = ?", id).First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrTripNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ListAll returns every record in insertion order. Display ordering is the
// service's concern, not the storage layer's.
func (r *TripRepository) ListAll() ([]*tripDatamodel.Trip, error) {
	var trips []*tripDatamodel.Trip
	err := r.db.Order("created_at ASC").Find(&trips).Error
	return trips, err
}
