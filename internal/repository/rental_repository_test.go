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

func newRentalRepo(t *testing.T) *RentalRepo {
	t.Helper()
	return NewRentalRepo(store.NewFileStore(filepath.Join(t.TempDir(), "db.json")))
}

func testRental() model.Rental {
	return model.Rental{CarID: 99, StartDate: "2026-09-10", EndDate: "2026-09-12"}
}

func TestCreateForcesPendingStatus(t *testing.T) {
	repo := newRentalRepo(t)
	ctx := context.Background()

	in := testRental()
	in.Status = model.StatusApproved // client cannot pre-approve itself

	created, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, model.StatusPending, created.Status)
}

func TestCreateDoesNotCheckCarExists(t *testing.T) {
	// A rental may reference a car that was never listed or has been
	// deleted; that is accepted behavior, not an error.
	repo := newRentalRepo(t)
	created, err := repo.Create(context.Background(), testRental())
	require.NoError(t, err)
	assert.EqualValues(t, 99, created.CarID)
}

func TestListNewestFirst(t *testing.T) {
	repo := newRentalRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, testRental())
	require.NoError(t, err)
	second, err := repo.Create(ctx, testRental())
	require.NoError(t, err)

	rentals, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rentals, 2)
	assert.Equal(t, second.ID, rentals[0].ID)
	assert.Equal(t, first.ID, rentals[1].ID)
}

func TestSetStatusChangesOnlyStatus(t *testing.T) {
	repo := newRentalRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testRental())
	require.NoError(t, err)

	updated, err := repo.SetStatus(ctx, created.ID, model.StatusApproved)
	require.NoError(t, err)

	want := created
	want.Status = model.StatusApproved
	assert.Equal(t, want, updated)

	rentals, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, rentals[0])
}

func TestSetStatusAllowsAnyTransition(t *testing.T) {
	// There is no transition guard: a declined request can be approved
	// later and vice versa.
	repo := newRentalRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testRental())
	require.NoError(t, err)

	_, err = repo.SetStatus(ctx, created.ID, model.StatusDeclined)
	require.NoError(t, err)
	updated, err := repo.SetStatus(ctx, created.ID, model.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, updated.Status)
}

func TestSetStatusUnknownID(t *testing.T) {
	repo := newRentalRepo(t)
	_, err := repo.SetStatus(context.Background(), 13, model.StatusApproved)
	assert.ErrorIs(t, err, ErrRentalNotFound)
}
