package repository

import (
	"context"

	"github.com/carmate/carmate/internal/model"
	"github.com/carmate/carmate/internal/store"
)

// RentalRepo encapsulates all document mutations related to rental
// requests.
type RentalRepo struct {
	store *store.FileStore
}

// NewRentalRepo constructs a RentalRepo with the provided store.
func NewRentalRepo(s *store.FileStore) *RentalRepo {
	return &RentalRepo{store: s}
}

// List returns every rental request, newest first (Create prepends).
func (r *RentalRepo) List(ctx context.Context) ([]model.Rental, error) {
	return r.store.Load().Rentals, nil
}

// Create assigns an identity and forces the status to Pending regardless
// of anything present in the input, then prepends and persists.  The
// referenced car is deliberately not checked for existence: listings can
// disappear while a request is in flight, and the admin view renders
// dangling references explicitly.
func (r *RentalRepo) Create(ctx context.Context, rental model.Rental) (model.Rental, error) {
	rental.ID = r.store.NextID()
	rental.Status = model.StatusPending
	err := r.store.Update(func(doc *model.Document) error {
		doc.Rentals = append([]model.Rental{rental}, doc.Rentals...)
		return nil
	})
	if err != nil {
		return model.Rental{}, err
	}
	return rental, nil
}

// SetStatus overwrites the status of the rental with the given identity.
// Any transition between the three states is allowed; there is no guard
// against e.g. re-approving a declined request.  Returns ErrRentalNotFound
// when the identity is unknown.
func (r *RentalRepo) SetStatus(ctx context.Context, id int64, status model.Status) (model.Rental, error) {
	var updated model.Rental
	err := r.store.Update(func(doc *model.Document) error {
		for i := range doc.Rentals {
			if doc.Rentals[i].ID == id {
				doc.Rentals[i].Status = status
				updated = doc.Rentals[i]
				return nil
			}
		}
		return ErrRentalNotFound
	})
	if err != nil {
		return model.Rental{}, err
	}
	return updated, nil
}
