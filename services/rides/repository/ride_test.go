package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/services/rides"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRideRepoForTest(t *testing.T) (*RideRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	sqlxDB := sqlx.NewDb(mockDB, "postgres")
	return NewRideRepository(&models.Config{}, sqlxDB), mock
}

func TestTransferRide_WritesTransferredStatus(t *testing.T) {
	repo, mock := newRideRepoForTest(t)

	mock.ExpectExec(`UPDATE rides`).
		WithArgs("d2", "d1", models.RideStatusTransferred, sqlmock.AnyArg(), "r1", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.TransferRide(context.Background(), "r1", "d1", "d2", 1)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRide_VersionMismatchIsConflict(t *testing.T) {
	repo, mock := newRideRepoForTest(t)

	mock.ExpectExec(`UPDATE rides`).
		WithArgs("d2", "d1", models.RideStatusTransferred, sqlmock.AnyArg(), "r1", 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.TransferRide(context.Background(), "r1", "d1", "d2", 1)

	assert.ErrorIs(t, err, rides.ErrRideConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRide_MissingRideIsNotFound(t *testing.T) {
	repo, mock := newRideRepoForTest(t)

	mock.ExpectExec(`UPDATE rides`).
		WithArgs("d2", "d1", models.RideStatusTransferred, sqlmock.AnyArg(), "gone", 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("gone").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	err := repo.TransferRide(context.Background(), "gone", "d1", "d2", 1)

	assert.ErrorIs(t, err, rides.ErrRideNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
