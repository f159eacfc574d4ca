package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"marketplace-backend/apperrors"
	"marketplace-backend/models"
	"marketplace-backend/repository"
)

// UserNotifier is the slice of the notification service staff account
// management needs.
type UserNotifier interface {
	NotifyUserStatusChange(email string, active bool)
}

// UserService manages staff accounts (Admin, Vendor, CSR).
type UserService struct {
	users    repository.UserRepository
	tokens   *TokenService
	notifier UserNotifier
	logger   *zap.Logger
}

func NewUserService(users repository.UserRepository, tokens *TokenService, notifier UserNotifier, logger *zap.Logger) *UserService {
	return &UserService{users: users, tokens: tokens, notifier: notifier, logger: logger}
}

// Create registers a staff account, active by default.
func (s *UserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	existing, err := s.users.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Wrap(apperrors.ErrDuplicateEmail, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.ID = primitive.NewObjectID()
	user.Password = string(hash)
	user.IsActive = true
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	created := *user
	created.Password = ""
	return &created, nil
}

func (s *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	user.Password = ""
	return user, nil
}

// GetByRole lists staff accounts with the given role; backing the admin
// listings of admins, vendors and CSRs.
func (s *UserService) GetByRole(ctx context.Context, role string) ([]models.User, error) {
	users, err := s.users.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, user *models.User) (*models.User, error) {
	found, err := s.users.Replace(ctx, id, user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	found, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return nil
}

// SetActive toggles a staff account and notifies the user, fire-and-forget.
func (s *UserService) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	if _, err := s.users.SetActive(ctx, id, active); err != nil {
		return err
	}
	go s.notifier.NotifyUserStatusChange(user.Email, active)
	return nil
}

// Login verifies staff credentials; deactivated accounts cannot sign in.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidCredentials, nil)
	}
	if !user.IsActive {
		return nil, apperrors.Wrap(apperrors.ErrAccountInactive, nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidCredentials, nil)
	}

	token, err := s.tokens.GenerateToken(user.Email, user.Role, user.Username, user.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: token, Role: user.Role}, nil
}
