package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/openride/marketplace/internal/pkg/models"
	driverMocks "github.com/openride/marketplace/services/drivers/mocks"
	"github.com/openride/marketplace/services/rides"
	"github.com/openride/marketplace/services/rides/mocks"
	"github.com/stretchr/testify/assert"
)

func newRideUCForTest(t *testing.T) (*gomock.Controller, *mocks.MockRideRepo, *driverMocks.MockDriverRepo, *mocks.MockRideGW, rides.RideUC) {
	ctrl := gomock.NewController(t)
	rideRepo := mocks.NewMockRideRepo(ctrl)
	driverRepo := driverMocks.NewMockDriverRepo(ctrl)
	rideGW := mocks.NewMockRideGW(ctrl)
	uc := NewRideUC(&models.Config{}, rideRepo, driverRepo, rideGW)
	return ctrl, rideRepo, driverRepo, rideGW, uc
}

func eligibleDriver(id string, rating *float64) *models.Driver {
	return &models.Driver{
		ID:        id,
		Name:      "Driver " + id,
		Available: true,
		IsActive:  true,
		Rating:    rating,
	}
}

func TestCreateRide_PendingWithSnapshot(t *testing.T) {
	ctrl, rideRepo, driverRepo, rideGW, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	rated := 4.2
	driverRepo.EXPECT().ListAvailable(gomock.Any(), "jakarta").Return([]*models.Driver{
		eligibleDriver("d1", nil),
		eligibleDriver("d2", &rated),
	}, nil)
	rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	rideGW.EXPECT().PublishRideCreated(gomock.Any(), gomock.Any()).Return(nil)
	rideGW.EXPECT().EnqueueRideRequestWebhook(gomock.Any()).Return(nil)

	ride, err := uc.CreateRide(context.Background(), models.CreateRideRequest{
		Name:       "Asep",
		Phone:      "+628111",
		Pickup:     "Blok M",
		Dropoff:    "Kota",
		LocationID: "jakarta",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusPending, ride.Status)
	assert.Empty(t, ride.DriverID)
	// Snapshot keeps the store's rating-descending order; unrated drivers
	// display the default rating.
	assert.Len(t, ride.AvailableDrivers, 2)
	assert.Equal(t, "d1", ride.AvailableDrivers[0].ID)
	assert.Equal(t, models.DefaultDisplayRating, ride.AvailableDrivers[0].Rating)
	assert.Equal(t, 4.2, ride.AvailableDrivers[1].Rating)
}

func TestCreateRide_WithSelectedDriver(t *testing.T) {
	ctrl, rideRepo, driverRepo, rideGW, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	driverRepo.EXPECT().ListAvailable(gomock.Any(), "jakarta").Return(nil, nil)
	driverRepo.EXPECT().GetDriver(gomock.Any(), "d1").Return(eligibleDriver("d1", nil), nil)
	rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	rideGW.EXPECT().PublishRideAssigned(gomock.Any(), gomock.Any()).Return(nil)
	rideGW.EXPECT().EnqueueRideRequestWebhook(gomock.Any()).Return(nil)

	ride, err := uc.CreateRide(context.Background(), models.CreateRideRequest{
		Name:             "Asep",
		Phone:            "+628111",
		Pickup:           "Blok M",
		Dropoff:          "Kota",
		LocationID:       "jakarta",
		SelectedDriverID: "d1",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusAssigned, ride.Status)
	assert.Equal(t, "d1", ride.DriverID)
}

func TestCreateRide_SelectedDriverIneligible(t *testing.T) {
	ctrl, _, driverRepo, _, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	offline := eligibleDriver("d1", nil)
	offline.Available = false

	driverRepo.EXPECT().ListAvailable(gomock.Any(), "jakarta").Return(nil, nil)
	driverRepo.EXPECT().GetDriver(gomock.Any(), "d1").Return(offline, nil)

	_, err := uc.CreateRide(context.Background(), models.CreateRideRequest{
		Name:             "Asep",
		Phone:            "+628111",
		Pickup:           "Blok M",
		Dropoff:          "Kota",
		LocationID:       "jakarta",
		SelectedDriverID: "d1",
	})

	assert.ErrorIs(t, err, rides.ErrDriverUnavailable)
}

func TestCreateRide_DuplicateSubmissionsCreateSeparateRides(t *testing.T) {
	ctrl, rideRepo, driverRepo, rideGW, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	req := models.CreateRideRequest{
		Name:       "Asep",
		Phone:      "+628111",
		Pickup:     "Blok M",
		Dropoff:    "Kota",
		LocationID: "jakarta",
	}

	driverRepo.EXPECT().ListAvailable(gomock.Any(), "jakarta").Return(nil, nil).Times(2)
	rideRepo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	rideGW.EXPECT().PublishRideCreated(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	rideGW.EXPECT().EnqueueRideRequestWebhook(gomock.Any()).Return(nil).Times(2)

	first, err := uc.CreateRide(context.Background(), req)
	assert.NoError(t, err)
	second, err := uc.CreateRide(context.Background(), req)
	assert.NoError(t, err)

	// No dedup on repeated payloads: each submission is its own ride.
	assert.NotEqual(t, first.ID, second.ID)
}

func TestUpdateRideStatus_InvalidTransition(t *testing.T) {
	ctrl, rideRepo, _, _, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	rideRepo.EXPECT().GetRide(gomock.Any(), "r1").Return(&models.Ride{
		ID:       "r1",
		Status:   models.RideStatusCompleted,
		DriverID: "d1",
		Version:  3,
	}, nil)

	_, err := uc.UpdateRideStatus(context.Background(), "r1", models.RideStatusAssigned, "d1")

	assert.ErrorIs(t, err, rides.ErrInvalidTransition)
}

func TestUpdateRideStatus_CancelledByStranger(t *testing.T) {
	ctrl, rideRepo, _, _, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	rideRepo.EXPECT().GetRide(gomock.Any(), "r1").Return(&models.Ride{
		ID:       "r1",
		Status:   models.RideStatusAssigned,
		DriverID: "d1",
		RiderID:  "u1",
		Version:  1,
	}, nil)

	_, err := uc.UpdateRideStatus(context.Background(), "r1", models.RideStatusCancelled, "someone-else")

	assert.ErrorIs(t, err, rides.ErrNotRideOwner)
}

func TestUpdateRideStatus_CompletedRunsCompletionTransaction(t *testing.T) {
	ctrl, rideRepo, _, rideGW, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	before := &models.Ride{ID: "r1", Status: models.RideStatusAssigned, DriverID: "d1", Version: 2}
	after := &models.Ride{ID: "r1", Status: models.RideStatusCompleted, DriverID: "d1", Version: 3}

	// CompleteRide, not a bare UpdateStatus: the driver counters must move in
	// the same transaction as the ride.
	rideRepo.EXPECT().GetRide(gomock.Any(), "r1").Return(before, nil)
	rideRepo.EXPECT().CompleteRide(gomock.Any(), "r1", "d1", 2).Return(nil)
	rideRepo.EXPECT().GetRide(gomock.Any(), "r1").Return(after, nil)
	rideGW.EXPECT().PublishRideCompleted(gomock.Any(), after).Return(nil)

	ride, err := uc.UpdateRideStatus(context.Background(), "r1", models.RideStatusCompleted, "d1")

	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusCompleted, ride.Status)
}

func TestUpdateRideStatus_CompletedByRiderForbidden(t *testing.T) {
	ctrl, rideRepo, _, _, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	rideRepo.EXPECT().GetRide(gomock.Any(), "r1").Return(&models.Ride{
		ID:       "r1",
		Status:   models.RideStatusAssigned,
		DriverID: "d1",
		RiderID:  "u1",
		Version:  1,
	}, nil)

	_, err := uc.UpdateRideStatus(context.Background(), "r1", models.RideStatusCompleted, "u1")

	assert.ErrorIs(t, err, rides.ErrNotRideOwner)
}

func TestTransferRide_NotOwner(t *testing.T) {
	ctrl, rideRepo, _, _, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	rideRepo.EXPECT().GetRide(gomock.Any(), "r1").Return(&models.Ride{
		ID:       "r1",
		Status:   models.RideStatusAssigned,
		DriverID: "d1",
		Version:  1,
	}, nil)

	_, err := uc.TransferRide(context.Background(), "r1", "d2", "d3")

	assert.ErrorIs(t, err, rides.ErrNotRideOwner)
}

func TestTransferRide_TargetIneligible(t *testing.T) {
	ctrl, rideRepo, driverRepo, _, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	rideRepo.EXPECT().GetRide(gomock.Any(), "r1").Return(&models.Ride{
		ID:       "r1",
		Status:   models.RideStatusAssigned,
		DriverID: "d1",
		Version:  1,
	}, nil)

	inactive := eligibleDriver("d2", nil)
	inactive.IsActive = false
	driverRepo.EXPECT().GetDriver(gomock.Any(), "d2").Return(inactive, nil)

	_, err := uc.TransferRide(context.Background(), "r1", "d1", "d2")

	assert.ErrorIs(t, err, rides.ErrDriverUnavailable)
}

func TestTransferRide_VersionConflict(t *testing.T) {
	ctrl, rideRepo, driverRepo, _, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	rideRepo.EXPECT().GetRide(gomock.Any(), "r1").Return(&models.Ride{
		ID:       "r1",
		Status:   models.RideStatusAssigned,
		DriverID: "d1",
		Version:  1,
	}, nil)
	driverRepo.EXPECT().GetDriver(gomock.Any(), "d2").Return(eligibleDriver("d2", nil), nil)
	rideRepo.EXPECT().TransferRide(gomock.Any(), "r1", "d1", "d2", 1).Return(rides.ErrRideConflict)

	_, err := uc.TransferRide(context.Background(), "r1", "d1", "d2")

	assert.ErrorIs(t, err, rides.ErrRideConflict)
}

func TestTransferRide_Success(t *testing.T) {
	ctrl, rideRepo, driverRepo, rideGW, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	before := &models.Ride{ID: "r1", Status: models.RideStatusAssigned, DriverID: "d1", Version: 1}
	after := &models.Ride{ID: "r1", Status: models.RideStatusTransferred, DriverID: "d2", PreviousDriverID: "d1", Version: 2}

	rideRepo.EXPECT().GetRide(gomock.Any(), "r1").Return(before, nil)
	driverRepo.EXPECT().GetDriver(gomock.Any(), "d2").Return(eligibleDriver("d2", nil), nil)
	rideRepo.EXPECT().TransferRide(gomock.Any(), "r1", "d1", "d2", 1).Return(nil)
	rideRepo.EXPECT().GetRide(gomock.Any(), "r1").Return(after, nil)
	rideGW.EXPECT().PublishRideTransferred(gomock.Any(), after).Return(nil)

	ride, err := uc.TransferRide(context.Background(), "r1", "d1", "d2")

	assert.NoError(t, err)
	// A direct transfer parks the ride in transferred until the new driver
	// confirms; ownership moves immediately.
	assert.Equal(t, models.RideStatusTransferred, ride.Status)
	assert.Equal(t, "d2", ride.DriverID)
	assert.Equal(t, "d1", ride.PreviousDriverID)
}

func TestCompleteRide_Success(t *testing.T) {
	ctrl, rideRepo, _, rideGW, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	before := &models.Ride{ID: "r1", Status: models.RideStatusAssigned, DriverID: "d1", Version: 2}
	after := &models.Ride{ID: "r1", Status: models.RideStatusCompleted, DriverID: "d1", Version: 3}

	rideRepo.EXPECT().GetRide(gomock.Any(), "r1").Return(before, nil)
	rideRepo.EXPECT().CompleteRide(gomock.Any(), "r1", "d1", 2).Return(nil)
	rideRepo.EXPECT().GetRide(gomock.Any(), "r1").Return(after, nil)
	rideGW.EXPECT().PublishRideCompleted(gomock.Any(), after).Return(nil)

	ride, err := uc.CompleteRide(context.Background(), "r1", "d1")

	assert.NoError(t, err)
	assert.Equal(t, models.RideStatusCompleted, ride.Status)
}

func TestCompleteRide_NotOwner(t *testing.T) {
	ctrl, rideRepo, _, _, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	rideRepo.EXPECT().GetRide(gomock.Any(), "r1").Return(&models.Ride{
		ID:       "r1",
		Status:   models.RideStatusAssigned,
		DriverID: "d1",
		Version:  1,
	}, nil)

	_, err := uc.CompleteRide(context.Background(), "r1", "d2")

	assert.ErrorIs(t, err, rides.ErrNotRideOwner)
}

func TestAcceptTransferRequest_Success(t *testing.T) {
	ctrl, rideRepo, _, rideGW, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	transfer := &models.RideTransfer{
		ID:               "t1",
		RideID:           "r1",
		OriginalDriverID: "d1",
		NewDriverID:      "d2",
		Status:           models.TransferStatusPending,
	}
	before := &models.Ride{ID: "r1", Status: models.RideStatusAssigned, DriverID: "d1", Version: 1}
	after := &models.Ride{ID: "r1", Status: models.RideStatusAssigned, DriverID: "d2", PreviousDriverID: "d1", Version: 2}

	rideRepo.EXPECT().GetTransfer(gomock.Any(), "t1").Return(transfer, nil)
	rideRepo.EXPECT().GetRide(gomock.Any(), "r1").Return(before, nil)
	rideRepo.EXPECT().AcceptTransfer(gomock.Any(), transfer, 1).Return(nil)
	rideRepo.EXPECT().GetRide(gomock.Any(), "r1").Return(after, nil)
	rideGW.EXPECT().PublishRideTransferred(gomock.Any(), after).Return(nil)

	ride, err := uc.AcceptTransferRequest(context.Background(), "t1", "d2")

	assert.NoError(t, err)
	assert.Equal(t, "d2", ride.DriverID)
}

func TestAcceptTransferRequest_NotTarget(t *testing.T) {
	ctrl, rideRepo, _, _, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	rideRepo.EXPECT().GetTransfer(gomock.Any(), "t1").Return(&models.RideTransfer{
		ID:          "t1",
		RideID:      "r1",
		NewDriverID: "d2",
		Status:      models.TransferStatusPending,
	}, nil)

	_, err := uc.AcceptTransferRequest(context.Background(), "t1", "d3")

	assert.ErrorIs(t, err, rides.ErrNotTransferTarget)
}

func TestAcceptTransferRequest_AlreadyDecided(t *testing.T) {
	ctrl, rideRepo, _, _, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	rideRepo.EXPECT().GetTransfer(gomock.Any(), "t1").Return(&models.RideTransfer{
		ID:          "t1",
		RideID:      "r1",
		NewDriverID: "d2",
		Status:      models.TransferStatusRejected,
	}, nil)

	_, err := uc.AcceptTransferRequest(context.Background(), "t1", "d2")

	assert.ErrorIs(t, err, rides.ErrTransferClosed)
}

func TestAcceptTransferRequest_RideMovedSinceRequest(t *testing.T) {
	ctrl, rideRepo, _, _, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	transfer := &models.RideTransfer{
		ID:               "t1",
		RideID:           "r1",
		OriginalDriverID: "d1",
		NewDriverID:      "d2",
		Status:           models.TransferStatusPending,
	}
	// Another transfer already moved the ride to d9.
	rideRepo.EXPECT().GetTransfer(gomock.Any(), "t1").Return(transfer, nil)
	rideRepo.EXPECT().GetRide(gomock.Any(), "r1").Return(&models.Ride{
		ID:       "r1",
		Status:   models.RideStatusAssigned,
		DriverID: "d9",
		Version:  4,
	}, nil)

	_, err := uc.AcceptTransferRequest(context.Background(), "t1", "d2")

	assert.ErrorIs(t, err, rides.ErrRideConflict)
}

func TestRejectTransferRequest_Success(t *testing.T) {
	ctrl, rideRepo, _, _, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	rideRepo.EXPECT().GetTransfer(gomock.Any(), "t1").Return(&models.RideTransfer{
		ID:          "t1",
		RideID:      "r1",
		NewDriverID: "d2",
		Status:      models.TransferStatusPending,
	}, nil)
	rideRepo.EXPECT().UpdateTransferStatus(gomock.Any(), "t1", models.TransferStatusRejected).Return(nil)

	err := uc.RejectTransferRequest(context.Background(), "t1", "d2")

	assert.NoError(t, err)
}

func TestCreateTransferRequest_TargetIneligible(t *testing.T) {
	ctrl, rideRepo, driverRepo, _, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	rideRepo.EXPECT().GetRide(gomock.Any(), "r1").Return(&models.Ride{
		ID:       "r1",
		Status:   models.RideStatusAssigned,
		DriverID: "d1",
		Version:  1,
	}, nil)

	busy := eligibleDriver("d2", nil)
	busy.Available = false
	driverRepo.EXPECT().GetDriver(gomock.Any(), "d2").Return(busy, nil)

	_, err := uc.CreateTransferRequest(context.Background(), "d1", models.CreateTransferRequest{
		RideID:      "r1",
		NewDriverID: "d2",
	})

	assert.ErrorIs(t, err, rides.ErrDriverUnavailable)
}

func TestCancelScheduledRide_DeletesRecord(t *testing.T) {
	ctrl, rideRepo, _, _, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	rideRepo.EXPECT().GetScheduled(gomock.Any(), "s1").Return(&models.ScheduledRide{
		ID:       "s1",
		DriverID: "d1",
		RiderID:  "u1",
	}, nil)
	rideRepo.EXPECT().DeleteScheduled(gomock.Any(), "s1").Return(nil)

	err := uc.CancelScheduledRide(context.Background(), "s1", "d1")

	assert.NoError(t, err)
}

func TestCancelScheduledRide_Stranger(t *testing.T) {
	ctrl, rideRepo, _, _, uc := newRideUCForTest(t)
	defer ctrl.Finish()

	rideRepo.EXPECT().GetScheduled(gomock.Any(), "s1").Return(&models.ScheduledRide{
		ID:       "s1",
		DriverID: "d1",
		RiderID:  "u1",
	}, nil)

	err := uc.CancelScheduledRide(context.Background(), "s1", "d2")

	assert.ErrorIs(t, err, rides.ErrNotRideOwner)
}
