package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"marketplace-backend/apperrors"
	"marketplace-backend/models"
	"marketplace-backend/services"
)

type userFixture struct {
	users    *memUserRepo
	notifier *recordingNotifier
	svc      *services.UserService
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	f := &userFixture{
		users:    newMemUserRepo(),
		notifier: &recordingNotifier{},
	}
	logger, _ := zap.NewDevelopment()
	tokens := services.NewTokenService("test-secret", time.Hour)
	f.svc = services.NewUserService(f.users, tokens, f.notifier, logger)
	return f
}

func (f *userFixture) create(t *testing.T, email, role string) *models.User {
	t.Helper()
	created, err := f.svc.Create(context.Background(), &models.User{
		Username: "staffer", Email: email, Password: "s3cret", Role: role,
	})
	require.NoError(t, err)
	return created
}

func TestCreateUserHashesPasswordAndActivates(t *testing.T) {
	f := newUserFixture(t)

	created := f.create(t, "vendor@vendors.test", models.RoleVendor)
	assert.True(t, created.IsActive)
	assert.Empty(t, created.Password)

	stored, err := f.users.FindByEmail(context.Background(), "vendor@vendors.test")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.Password)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	f := newUserFixture(t)
	f.create(t, "vendor@vendors.test", models.RoleVendor)

	_, err := f.svc.Create(context.Background(), &models.User{
		Username: "other", Email: "vendor@vendors.test", Password: "x", Role: models.RoleCSR,
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrDuplicateEmail))
}

func TestUserLogin(t *testing.T) {
	f := newUserFixture(t)
	f.create(t, "admin@staff.test", models.RoleAdmin)

	resp, err := f.svc.Login(context.Background(), "admin@staff.test", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleAdmin, resp.Role)
}

func TestUserLoginDeactivatedAccount(t *testing.T) {
	f := newUserFixture(t)
	created := f.create(t, "csr@staff.test", models.RoleCSR)
	ctx := context.Background()

	require.NoError(t, f.svc.SetActive(ctx, created.ID, false))

	_, err := f.svc.Login(ctx, "csr@staff.test", "s3cret")
	assert.True(t, apperrors.Is(err, apperrors.ErrAccountInactive))
}

func TestUserLoginWrongPassword(t *testing.T) {
	f := newUserFixture(t)
	f.create(t, "admin@staff.test", models.RoleAdmin)

	_, err := f.svc.Login(context.Background(), "admin@staff.test", "nope")
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestSetActiveNotifiesUser(t *testing.T) {
	f := newUserFixture(t)
	created := f.create(t, "vendor@vendors.test", models.RoleVendor)

	require.NoError(t, f.svc.SetActive(context.Background(), created.ID, false))

	require.Eventually(t, func() bool {
		return f.notifier.statusChangeCount() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSetActiveUnknownUser(t *testing.T) {
	f := newUserFixture(t)

	err := f.svc.SetActive(context.Background(), primitive.NewObjectID(), true)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestGetByRoleBlanksPasswords(t *testing.T) {
	f := newUserFixture(t)
	f.create(t, "a@vendors.test", models.RoleVendor)
	f.create(t, "b@vendors.test", models.RoleVendor)
	f.create(t, "csr@staff.test", models.RoleCSR)

	vendors, err := f.svc.GetByRole(context.Background(), models.RoleVendor)
	require.NoError(t, err)
	require.Len(t, vendors, 2)
	for _, v := range vendors {
		assert.Empty(t, v.Password)
	}
}
