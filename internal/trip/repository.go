package trip

import (
	tripDatamodel "github.com/naufalhakm/rekap-perjadin/internal/core/datamodel/trip"
)

// RepositoryAPI is the persistence surface the sync gateway runs on.
// Insert and delete-by-id are the only writes; there is no update.
type RepositoryAPI interface {
	Create(t *tripDatamodel.Trip) error
	Delete(id string) error
	GetByID(id string) (*tripDatamodel.Trip, error)
	ListAll() ([]*tripDatamodel.Trip, error)
}
