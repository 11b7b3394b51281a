package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/openride/marketplace/internal/pkg/constants"
	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/services/messaging"
	"github.com/openride/marketplace/services/messaging/mocks"
	"github.com/stretchr/testify/assert"
)

func newMessagingUCForTest(t *testing.T) (*gomock.Controller, *mocks.MockMessagingRepo, *mocks.MockMessagingGW, messaging.MessagingUC) {
	ctrl := gomock.NewController(t)
	messagingRepo := mocks.NewMockMessagingRepo(ctrl)
	messagingGW := mocks.NewMockMessagingGW(ctrl)
	uc := NewMessagingUC(&models.Config{}, messagingRepo, messagingGW)
	return ctrl, messagingRepo, messagingGW, uc
}

func acceptedConnection() *models.Connection {
	return &models.Connection{
		ID:       "c1",
		DriverID: "d1",
		RiderID:  "u1",
		Status:   models.ConnectionStatusAccepted,
	}
}

func TestRequestConnection_Success(t *testing.T) {
	ctrl, messagingRepo, messagingGW, uc := newMessagingUCForTest(t)
	defer ctrl.Finish()

	messagingRepo.EXPECT().GetConnectionBetween(gomock.Any(), "d1", "u1").Return(nil, messaging.ErrConnectionNotFound)
	messagingRepo.EXPECT().CreateConnection(gomock.Any(), gomock.Any()).Return(nil)
	messagingGW.EXPECT().PushToUser("d1", constants.EventNotification, gomock.Any())

	connection, err := uc.RequestConnection(context.Background(), "d1", "u1")

	assert.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusPending, connection.Status)
}

func TestRequestConnection_AlreadyExists(t *testing.T) {
	ctrl, messagingRepo, _, uc := newMessagingUCForTest(t)
	defer ctrl.Finish()

	messagingRepo.EXPECT().GetConnectionBetween(gomock.Any(), "d1", "u1").Return(acceptedConnection(), nil)

	_, err := uc.RequestConnection(context.Background(), "d1", "u1")

	assert.ErrorIs(t, err, messaging.ErrConnectionExists)
}

func TestAcceptConnection_NotParty(t *testing.T) {
	ctrl, messagingRepo, _, uc := newMessagingUCForTest(t)
	defer ctrl.Finish()

	pending := acceptedConnection()
	pending.Status = models.ConnectionStatusPending
	messagingRepo.EXPECT().GetConnection(gomock.Any(), "c1").Return(pending, nil)

	_, err := uc.AcceptConnection(context.Background(), "c1", "stranger")

	assert.ErrorIs(t, err, messaging.ErrNotConnectionParty)
}

func TestSendMessage_Success(t *testing.T) {
	ctrl, messagingRepo, messagingGW, uc := newMessagingUCForTest(t)
	defer ctrl.Finish()

	messagingRepo.EXPECT().GetConnection(gomock.Any(), "c1").Return(acceptedConnection(), nil)
	messagingRepo.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)
	messagingGW.EXPECT().PushToUser("u1", constants.EventMessageReceived, gomock.Any())

	message, err := uc.SendMessage(context.Background(), "d1", models.SendMessageRequest{
		ConversationID: "c1",
		Body:           "On my way",
	})

	assert.NoError(t, err)
	assert.Equal(t, "d1", message.SenderID)
	assert.False(t, message.Read)
}

func TestSendMessage_RequiresAcceptedConnection(t *testing.T) {
	ctrl, messagingRepo, _, uc := newMessagingUCForTest(t)
	defer ctrl.Finish()

	pending := acceptedConnection()
	pending.Status = models.ConnectionStatusPending
	messagingRepo.EXPECT().GetConnection(gomock.Any(), "c1").Return(pending, nil)

	_, err := uc.SendMessage(context.Background(), "d1", models.SendMessageRequest{
		ConversationID: "c1",
		Body:           "hello",
	})

	assert.ErrorIs(t, err, messaging.ErrNotConnected)
}

func TestSendMessage_StrangerForbidden(t *testing.T) {
	ctrl, messagingRepo, _, uc := newMessagingUCForTest(t)
	defer ctrl.Finish()

	messagingRepo.EXPECT().GetConnection(gomock.Any(), "c1").Return(acceptedConnection(), nil)

	_, err := uc.SendMessage(context.Background(), "stranger", models.SendMessageRequest{
		ConversationID: "c1",
		Body:           "hello",
	})

	assert.ErrorIs(t, err, messaging.ErrNotConnectionParty)
}

func TestNotifyRideEvent_FansOutToParties(t *testing.T) {
	ctrl, messagingRepo, messagingGW, uc := newMessagingUCForTest(t)
	defer ctrl.Finish()

	event := models.RideEvent{
		RideID:           "r1",
		Status:           models.RideStatusAssigned,
		DriverID:         "d2",
		PreviousDriverID: "d1",
		RiderID:          "u1",
	}

	messagingRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	messagingGW.EXPECT().PushToUser("d2", constants.EventNotification, gomock.Any())
	messagingGW.EXPECT().PushToUser("d1", constants.EventNotification, gomock.Any())
	messagingGW.EXPECT().PushToUser("u1", constants.EventNotification, gomock.Any())

	err := uc.NotifyRideEvent(context.Background(), constants.SubjectRideTransferred, event)

	assert.NoError(t, err)
}

func TestNotifyRideEvent_StorageFailureSkipsPush(t *testing.T) {
	ctrl, messagingRepo, messagingGW, uc := newMessagingUCForTest(t)
	defer ctrl.Finish()

	event := models.RideEvent{RideID: "r1", Status: models.RideStatusCompleted, DriverID: "d1", RiderID: "u1"}

	messagingRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(assert.AnError)
	messagingRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
	messagingGW.EXPECT().PushToUser("u1", constants.EventNotification, gomock.Any())

	err := uc.NotifyRideEvent(context.Background(), constants.SubjectRideCompleted, event)

	assert.Error(t, err)
}

func TestRemoveConnection_DeletesRecord(t *testing.T) {
	ctrl, messagingRepo, _, uc := newMessagingUCForTest(t)
	defer ctrl.Finish()

	messagingRepo.EXPECT().GetConnection(gomock.Any(), "c1").Return(acceptedConnection(), nil)
	messagingRepo.EXPECT().DeleteConnection(gomock.Any(), "c1").Return(nil)

	err := uc.RemoveConnection(context.Background(), "c1", "u1")

	assert.NoError(t, err)
}

func TestSaveRider_Success(t *testing.T) {
	ctrl, messagingRepo, _, uc := newMessagingUCForTest(t)
	defer ctrl.Finish()

	messagingRepo.EXPECT().CreateSavedRider(gomock.Any(), gomock.Any()).Return(nil)

	savedRider, err := uc.SaveRider(context.Background(), "d1", "u1", "regular")

	assert.NoError(t, err)
	assert.Equal(t, "d1", savedRider.DriverID)
	assert.Equal(t, "regular", savedRider.Nickname)
}
