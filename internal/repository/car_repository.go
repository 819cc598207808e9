package repository

import (
	"context"

	"github.com/carmate/carmate/internal/model"
	"github.com/carmate/carmate/internal/store"
)

// CarRepo encapsulates all document mutations related to car listings.
// It depends on a FileStore which should be constructed at startup; the
// constructor allows injecting a store rooted in a temp directory for
// tests.
type CarRepo struct {
	store *store.FileStore
}

// NewCarRepo constructs a CarRepo with the provided store.  There is no
// initialization logic beyond assigning the field.
func NewCarRepo(s *store.FileStore) *CarRepo {
	return &CarRepo{store: s}
}

// List returns every car in the document, unfiltered, in stored order
// (newest listing first, because Create prepends).
func (r *CarRepo) List(ctx context.Context) ([]model.Car, error) {
	return r.store.Load().Cars, nil
}

// Create assigns a fresh identity to the listing, forces its reviews to
// the empty list regardless of the input, prepends it to the collection
// and persists.  The stored record is returned so the caller sees the
// assigned ID.
func (r *CarRepo) Create(ctx context.Context, car model.Car) (model.Car, error) {
	car.ID = r.store.NextID()
	car.Reviews = []model.Review{}
	err := r.store.Update(func(doc *model.Document) error {
		doc.Cars = append([]model.Car{car}, doc.Cars...)
		return nil
	})
	if err != nil {
		return model.Car{}, err
	}
	return car, nil
}

// Update replaces the car with the given identity by the input record.
// The previous record's reviews are re-attached: an update payload never
// carries or overwrites a car's reviews.  Returns ErrCarNotFound when the
// identity is unknown.
func (r *CarRepo) Update(ctx context.Context, id int64, car model.Car) (model.Car, error) {
	car.ID = id
	err := r.store.Update(func(doc *model.Document) error {
		for i := range doc.Cars {
			if doc.Cars[i].ID == id {
				car.Reviews = doc.Cars[i].Reviews
				doc.Cars[i] = car
				return nil
			}
		}
		return ErrCarNotFound
	})
	if err != nil {
		return model.Car{}, err
	}
	return car, nil
}

// Delete removes the car with the given identity.  Returns ErrCarNotFound
// when the identity is unknown; in that case the document is not written.
func (r *CarRepo) Delete(ctx context.Context, id int64) error {
	return r.store.Update(func(doc *model.Document) error {
		for i := range doc.Cars {
			if doc.Cars[i].ID == id {
				doc.Cars = append(doc.Cars[:i], doc.Cars[i+1:]...)
				return nil
			}
		}
		return ErrCarNotFound
	})
}

// AddReview prepends a review to the car's reviews list, so the newest
// review is always first.  A nil reviews list (possible in documents
// written by hand) is initialized on the way.  Returns ErrCarNotFound
// when the car identity is unknown.
func (r *CarRepo) AddReview(ctx context.Context, carID int64, review model.Review) (model.Review, error) {
	err := r.store.Update(func(doc *model.Document) error {
		for i := range doc.Cars {
			if doc.Cars[i].ID == carID {
				doc.Cars[i].Reviews = append([]model.Review{review}, doc.Cars[i].Reviews...)
				return nil
			}
		}
		return ErrCarNotFound
	})
	if err != nil {
		return model.Review{}, err
	}
	return review, nil
}
