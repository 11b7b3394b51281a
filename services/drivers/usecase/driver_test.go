package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/services/drivers"
	"github.com/openride/marketplace/services/drivers/mocks"
	"github.com/stretchr/testify/assert"
)

func newDriverUCForTest(t *testing.T) (*gomock.Controller, *mocks.MockDriverRepo, *mocks.MockAvailabilityRepo, *mocks.MockDriverGW, drivers.DriverUC) {
	ctrl := gomock.NewController(t)
	driverRepo := mocks.NewMockDriverRepo(ctrl)
	availabilityRepo := mocks.NewMockAvailabilityRepo(ctrl)
	driverGW := mocks.NewMockDriverGW(ctrl)
	uc := NewDriverUC(&models.Config{}, driverRepo, availabilityRepo, driverGW)
	return ctrl, driverRepo, availabilityRepo, driverGW, uc
}

func TestRegisterDriver_Success(t *testing.T) {
	ctrl, driverRepo, _, driverGW, uc := newDriverUCForTest(t)
	defer ctrl.Finish()

	driverRepo.EXPECT().CreateDriver(gomock.Any(), gomock.Any()).Return(nil)
	driverGW.EXPECT().EnqueueRegistrationWebhook(gomock.Any()).Return(nil)

	driver, err := uc.RegisterDriver(context.Background(), models.DriverRegistrationRequest{
		Name:       "Budi",
		Phone:      "+628222",
		LocationID: "jakarta",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, driver.ID)
	// New drivers start unapproved and offline.
	assert.False(t, driver.IsActive)
	assert.False(t, driver.Available)
}

func TestRegisterDriver_MissingFields(t *testing.T) {
	ctrl, _, _, _, uc := newDriverUCForTest(t)
	defer ctrl.Finish()

	_, err := uc.RegisterDriver(context.Background(), models.DriverRegistrationRequest{Name: "Budi"})

	assert.Error(t, err)
}

func TestRegisterDriver_WebhookFailureDoesNotFailRegistration(t *testing.T) {
	ctrl, driverRepo, _, driverGW, uc := newDriverUCForTest(t)
	defer ctrl.Finish()

	driverRepo.EXPECT().CreateDriver(gomock.Any(), gomock.Any()).Return(nil)
	driverGW.EXPECT().EnqueueRegistrationWebhook(gomock.Any()).Return(assert.AnError)

	_, err := uc.RegisterDriver(context.Background(), models.DriverRegistrationRequest{
		Name:  "Budi",
		Phone: "+628222",
	})

	assert.NoError(t, err)
}

func TestSetAvailability_InactiveDriver(t *testing.T) {
	ctrl, driverRepo, _, _, uc := newDriverUCForTest(t)
	defer ctrl.Finish()

	driverRepo.EXPECT().GetDriver(gomock.Any(), "d1").Return(&models.Driver{
		ID:       "d1",
		IsActive: false,
	}, nil)

	err := uc.SetAvailability(context.Background(), "d1", true)

	assert.ErrorIs(t, err, drivers.ErrDriverInactive)
}

func TestSetAvailability_MirrorsIntoIndex(t *testing.T) {
	ctrl, driverRepo, availabilityRepo, _, uc := newDriverUCForTest(t)
	defer ctrl.Finish()

	driverRepo.EXPECT().GetDriver(gomock.Any(), "d1").Return(&models.Driver{
		ID:         "d1",
		IsActive:   true,
		LocationID: "jakarta",
	}, nil)
	driverRepo.EXPECT().UpdateAvailability(gomock.Any(), "d1", true).Return(nil)
	availabilityRepo.EXPECT().MarkAvailable(gomock.Any(), "jakarta", "d1").Return(nil)

	err := uc.SetAvailability(context.Background(), "d1", true)

	assert.NoError(t, err)
}

func TestSetAvailability_IndexFailureIsNotFatal(t *testing.T) {
	ctrl, driverRepo, availabilityRepo, _, uc := newDriverUCForTest(t)
	defer ctrl.Finish()

	driverRepo.EXPECT().GetDriver(gomock.Any(), "d1").Return(&models.Driver{
		ID:         "d1",
		IsActive:   true,
		Available:  true,
		LocationID: "jakarta",
	}, nil)
	driverRepo.EXPECT().UpdateAvailability(gomock.Any(), "d1", false).Return(nil)
	availabilityRepo.EXPECT().MarkUnavailable(gomock.Any(), "jakarta", "d1").Return(assert.AnError)

	// Postgres is the source of truth; the Redis mirror failing is logged only.
	err := uc.SetAvailability(context.Background(), "d1", false)

	assert.NoError(t, err)
}

func TestListAvailableDrivers_PassesLocationThrough(t *testing.T) {
	ctrl, driverRepo, _, _, uc := newDriverUCForTest(t)
	defer ctrl.Finish()

	expected := []*models.Driver{{ID: "d1"}, {ID: "d2"}}
	driverRepo.EXPECT().ListAvailable(gomock.Any(), "bandung").Return(expected, nil)

	result, err := uc.ListAvailableDrivers(context.Background(), "bandung")

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestNearbyDrivers_SortedByDistance(t *testing.T) {
	ctrl, _, availabilityRepo, _, uc := newDriverUCForTest(t)
	defer ctrl.Finish()

	// Query point is Monas; d2 is closer than d1.
	availabilityRepo.EXPECT().NearbyDrivers(gomock.Any(), -6.1754, 106.8272, 5.0).Return([]models.DriverPosition{
		{DriverID: "d1", Latitude: -6.2000, Longitude: 106.8500},
		{DriverID: "d2", Latitude: -6.1760, Longitude: 106.8280},
	}, nil)

	positions, err := uc.NearbyDrivers(context.Background(), -6.1754, 106.8272, 5.0)

	assert.NoError(t, err)
	assert.Equal(t, "d2", positions[0].DriverID)
	assert.Equal(t, "d1", positions[1].DriverID)
	assert.NotEmpty(t, positions[0].Geohash)
	assert.Less(t, positions[0].DistanceKm, positions[1].DistanceKm)
}

func TestApproveDriver_NotFound(t *testing.T) {
	ctrl, driverRepo, _, _, uc := newDriverUCForTest(t)
	defer ctrl.Finish()

	driverRepo.EXPECT().UpdateActive(gomock.Any(), "missing", true).Return(drivers.ErrDriverNotFound)

	err := uc.ApproveDriver(context.Background(), "missing")

	assert.ErrorIs(t, err, drivers.ErrDriverNotFound)
}
