package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	jwtpkg "github.com/openride/marketplace/internal/pkg/jwt"
	"github.com/openride/marketplace/internal/pkg/models"
	"github.com/openride/marketplace/services/accounts"
	"github.com/openride/marketplace/services/accounts/mocks"
	"github.com/openride/marketplace/services/drivers"
	driverMocks "github.com/openride/marketplace/services/drivers/mocks"
	"github.com/stretchr/testify/assert"
)

func newAccountUCForTest(t *testing.T) (*gomock.Controller, *mocks.MockRiderRepo, *driverMocks.MockDriverRepo, accounts.AccountUC) {
	ctrl := gomock.NewController(t)
	riderRepo := mocks.NewMockRiderRepo(ctrl)
	driverRepo := driverMocks.NewMockDriverRepo(ctrl)
	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "marketplace-test",
		},
	}
	uc := NewAccountUC(cfg, riderRepo, driverRepo)
	return ctrl, riderRepo, driverRepo, uc
}

func TestRegisterRider_Success(t *testing.T) {
	ctrl, riderRepo, _, uc := newAccountUCForTest(t)
	defer ctrl.Finish()

	riderRepo.EXPECT().CreateRider(gomock.Any(), gomock.Any()).Return(nil)

	rider, err := uc.RegisterRider(context.Background(), models.RegisterRiderRequest{
		Name:  "Citra",
		Phone: "+628333",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, rider.ID)
	assert.False(t, rider.IsAdmin)
}

func TestLogin_DriverCarriesAdminClaim(t *testing.T) {
	ctrl, _, driverRepo, uc := newAccountUCForTest(t)
	defer ctrl.Finish()

	driverRepo.EXPECT().GetDriverByPhone(gomock.Any(), "+628222").Return(&models.Driver{
		ID:      "d1",
		IsAdmin: true,
	}, nil)

	token, err := uc.Login(context.Background(), models.LoginRequest{Phone: "+628222", Role: "driver"})

	assert.NoError(t, err)
	assert.Equal(t, "d1", token.UserID)
	assert.True(t, token.IsAdmin)

	claims, err := jwtpkg.ValidateToken(token.Token, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, "d1", (*claims)["user_id"])
	assert.Equal(t, "driver", (*claims)["role"])
	assert.Equal(t, true, (*claims)["admin"])
}

func TestLogin_UnknownPhone(t *testing.T) {
	ctrl, riderRepo, _, uc := newAccountUCForTest(t)
	defer ctrl.Finish()

	riderRepo.EXPECT().GetRiderByPhone(gomock.Any(), "+620000").Return(nil, accounts.ErrRiderNotFound)

	_, err := uc.Login(context.Background(), models.LoginRequest{Phone: "+620000", Role: "rider"})

	assert.ErrorIs(t, err, accounts.ErrAccountNotFound)
}

func TestLogin_InvalidRole(t *testing.T) {
	ctrl, _, _, uc := newAccountUCForTest(t)
	defer ctrl.Finish()

	_, err := uc.Login(context.Background(), models.LoginRequest{Phone: "+628222", Role: "dispatcher"})

	assert.ErrorIs(t, err, accounts.ErrInvalidRole)
}

func TestGrantAdmin_Rider(t *testing.T) {
	ctrl, riderRepo, _, uc := newAccountUCForTest(t)
	defer ctrl.Finish()

	riderRepo.EXPECT().UpdateAdmin(gomock.Any(), "u1", true).Return(nil)

	err := uc.GrantAdmin(context.Background(), models.GrantAdminRequest{UserID: "u1", Role: "rider"})

	assert.NoError(t, err)
}

func TestBootstrapAdmin_FallsBackToDriver(t *testing.T) {
	ctrl, riderRepo, driverRepo, uc := newAccountUCForTest(t)
	defer ctrl.Finish()

	riderRepo.EXPECT().GetRiderByEmail(gomock.Any(), "boss@example.com").Return(nil, accounts.ErrRiderNotFound)
	driverRepo.EXPECT().GetDriverByEmail(gomock.Any(), "boss@example.com").Return(&models.Driver{ID: "d1"}, nil)
	driverRepo.EXPECT().UpdateAdmin(gomock.Any(), "d1", true).Return(nil)

	err := uc.BootstrapAdmin(context.Background(), "boss@example.com")

	assert.NoError(t, err)
}

func TestBootstrapAdmin_NoAccount(t *testing.T) {
	ctrl, riderRepo, driverRepo, uc := newAccountUCForTest(t)
	defer ctrl.Finish()

	riderRepo.EXPECT().GetRiderByEmail(gomock.Any(), "ghost@example.com").Return(nil, accounts.ErrRiderNotFound)
	driverRepo.EXPECT().GetDriverByEmail(gomock.Any(), "ghost@example.com").Return(nil, drivers.ErrDriverNotFound)

	err := uc.BootstrapAdmin(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, accounts.ErrAccountNotFound)
}
