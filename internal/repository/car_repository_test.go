package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carmate/carmate/internal/model"
	"github.com/carmate/carmate/internal/store"
)

func newCarRepo(t *testing.T) *CarRepo {
	t.Helper()
	return NewCarRepo(store.NewFileStore(filepath.Join(t.TempDir(), "db.json")))
}

func testCar() model.Car {
	return model.Car{
		Make: "Maruti", Model: "Swift", Year: 2022, Type: "Hatchback",
		Fuel: "Petrol", Price: 700000, RentalPerDay: 1500,
		Image: "https://example.com/swift.jpg", ForSale: true, ForRent: true,
	}
}

func TestCreateAssignsIdentityAndEmptyReviews(t *testing.T) {
	repo := newCarRepo(t)
	ctx := context.Background()

	in := testCar()
	in.Reviews = []model.Review{{User: "smuggled", Rating: 5}} // must be discarded

	created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, []model.Review{}, created.Reviews)

	cars, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, cars, 1)
	want := in
	want.ID = created.ID
	want.Reviews = []model.Review{}
	assert.Equal(t, want, cars[0])
}

func TestCreatePrepends(t *testing.T) {
	repo := newCarRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, testCar())
	require.NoError(t, err)
	second, err := repo.Create(ctx, testCar())
	require.NoError(t, err)

	cars, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, cars, 2)
	assert.Equal(t, second.ID, cars[0].ID)
	assert.Equal(t, first.ID, cars[1].ID)
}

func TestUpdatePreservesReviews(t *testing.T) {
	repo := newCarRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testCar())
	require.NoError(t, err)
	review := model.Review{User: "ravi", Rating: 4, Comment: "solid commuter"}
	_, err = repo.AddReview(ctx, created.ID, review)
	require.NoError(t, err)

	in := testCar()
	in.Model = "Swift ZXi"
	in.Reviews = []model.Review{{User: "attacker", Rating: 1, Comment: "wipe"}} // ignored

	updated, err := repo.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Swift ZXi", updated.Model)
	assert.Equal(t, []model.Review{review}, updated.Reviews)

	cars, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, []model.Review{review}, cars[0].Reviews)
}

func TestUpdateUnknownID(t *testing.T) {
	repo := newCarRepo(t)
	_, err := repo.Update(context.Background(), 42, testCar())
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestDelete(t *testing.T) {
	repo := newCarRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testCar())
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, created.ID))

	cars, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cars)
}

func TestDeleteUnknownIDLeavesCollectionUntouched(t *testing.T) {
	repo := newCarRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testCar())
	require.NoError(t, err)

	err = repo.Delete(ctx, created.ID+1)
	assert.ErrorIs(t, err, ErrCarNotFound)

	cars, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, created, cars[0])
}

func TestAddReviewPrepends(t *testing.T) {
	repo := newCarRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testCar())
	require.NoError(t, err)

	older := model.Review{User: "meera", Rating: 3, Comment: "okay"}
	newer := model.Review{User: "arjun", Rating: 5, Comment: "loved it"}
	_, err = repo.AddReview(ctx, created.ID, older)
	require.NoError(t, err)
	_, err = repo.AddReview(ctx, created.ID, newer)
	require.NoError(t, err)

	cars, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, cars[0].Reviews, 2)
	assert.Equal(t, newer, cars[0].Reviews[0])
	assert.Equal(t, older, cars[0].Reviews[1])
}

func TestAddReviewUnknownCar(t *testing.T) {
	repo := newCarRepo(t)
	_, err := repo.AddReview(context.Background(), 7, model.Review{User: "x", Rating: 5})
	assert.ErrorIs(t, err, ErrCarNotFound)
}
