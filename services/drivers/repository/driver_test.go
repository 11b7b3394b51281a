package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriverRepoForTest(t *testing.T) (*DriverRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	sqlxDB := sqlx.NewDb(mockDB, "postgres")
	return NewDriverRepository(&models.Config{}, sqlxDB), mock
}

func driverRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "phone", "email", "photo_url",
		"vehicle_make", "vehicle_model", "vehicle_year", "vehicle_color", "vehicle_plate",
		"rating", "available", "is_active", "is_admin", "location_id",
		"total_rides", "completed_rides", "created_at", "updated_at",
	})
}

func addDriverRow(rows *sqlmock.Rows, id string, rating interface{}) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, "Driver "+id, "+62"+id, "", "",
		"Toyota", "Avanza", 2020, "silver", "B 1 XYZ",
		rating, true, true, false, "jakarta",
		0, 0, now, now,
	)
}

func TestListAvailable_FiltersAndOrdering(t *testing.T) {
	repo, mock := newDriverRepoForTest(t)

	// Only available+active rows come back, location filter applied,
	// NULL ratings sort as 0 (last).
	rows := driverRows()
	rows = addDriverRow(rows, "d1", 4.8)
	rows = addDriverRow(rows, "d2", 3.2)
	rows = addDriverRow(rows, "d3", nil)

	mock.ExpectQuery(`WHERE available = true AND is_active = true\s+AND location_id = \$1\s+ORDER BY COALESCE\(rating, 0\) DESC`).
		WithArgs("jakarta").
		WillReturnRows(rows)

	result, err := repo.ListAvailable(context.Background(), "jakarta")

	assert.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "d1", result[0].ID)
	assert.Equal(t, "d2", result[1].ID)
	assert.Equal(t, "d3", result[2].ID)
	assert.Nil(t, result[2].Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAvailable_NoLocationOmitsFilter(t *testing.T) {
	repo, mock := newDriverRepoForTest(t)

	rows := addDriverRow(driverRows(), "d1", 4.8)

	mock.ExpectQuery(`WHERE available = true AND is_active = true\s+ORDER BY COALESCE\(rating, 0\) DESC`).
		WillReturnRows(rows)

	result, err := repo.ListAvailable(context.Background(), "")

	assert.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "d1", result[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
