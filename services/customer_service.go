package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"marketplace-backend/apperrors"
	"marketplace-backend/models"
	"marketplace-backend/repository"
)

// notifyLookupTimeout bounds the store lookups done from notification
// goroutines, which run detached from any request context.
const notifyLookupTimeout = 5 * time.Second

// CustomerNotifier is the slice of the notification service the customer
// account flow needs. All of it is fire-and-forget.
type CustomerNotifier interface {
	NotifyCustomerActivation(email string)
	NotifyCustomerDeactivation(email string)
	NotifyCSRNewCustomer(csrEmail, customerEmail string)
}

// CustomerService manages shopper accounts. Registrations start inactive
// and wait for CSR/Admin activation before login succeeds.
type CustomerService struct {
	customers repository.CustomerRepository
	users     repository.UserRepository
	tokens    *TokenService
	notifier  CustomerNotifier
	logger    *zap.Logger
}

func NewCustomerService(
	customers repository.CustomerRepository,
	users repository.UserRepository,
	tokens *TokenService,
	notifier CustomerNotifier,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customers: customers,
		users:     users,
		tokens:    tokens,
		notifier:  notifier,
		logger:    logger,
	}
}

// Register creates an inactive customer account. A second registration with
// the same email is a conflict and leaves the first record untouched.
func (s *CustomerService) Register(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	existing, err := s.customers.FindByEmail(ctx, customer.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Wrap(apperrors.ErrDuplicateEmail, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(customer.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer.ID = primitive.NewObjectID()
	customer.Password = string(hash)
	customer.IsActive = false
	if err := s.customers.Insert(ctx, customer); err != nil {
		return nil, err
	}

	go s.notifyCSRs(customer.Email)

	created := *customer
	created.Password = ""
	return &created, nil
}

// notifyCSRs tells every CSR a registration awaits activation. Best-effort.
func (s *CustomerService) notifyCSRs(customerEmail string) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyLookupTimeout)
	defer cancel()

	csrs, err := s.users.FindByRole(ctx, models.RoleCSR)
	if err != nil {
		s.logger.Warn("CSR lookup for registration notice failed", zap.Error(err))
		return
	}
	for _, csr := range csrs {
		s.notifier.NotifyCSRNewCustomer(csr.Email, customerEmail)
	}
}

func (s *CustomerService) GetAll(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		customers[i].Password = ""
	}
	return customers, nil
}

func (s *CustomerService) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	customer, err := s.customers.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	customer.Password = ""
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id primitive.ObjectID, customer *models.Customer) (*models.Customer, error) {
	found, err := s.customers.Replace(ctx, id, customer)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return customer, nil
}

// Activate enables the account and notifies the customer. The notification
// is fire-and-forget: activation succeeds even when mail delivery fails.
func (s *CustomerService) Activate(ctx context.Context, email string) error {
	found, err := s.customers.SetActiveByEmail(ctx, email, true)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	go s.notifier.NotifyCustomerActivation(email)
	return nil
}

func (s *CustomerService) Deactivate(ctx context.Context, email string) error {
	found, err := s.customers.SetActiveByEmail(ctx, email, false)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	go s.notifier.NotifyCustomerDeactivation(email)
	return nil
}

// Reactivate re-enables a previously deactivated account, silently.
func (s *CustomerService) Reactivate(ctx context.Context, email string) error {
	found, err := s.customers.SetActiveByEmail(ctx, email, true)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return nil
}

func (s *CustomerService) Delete(ctx context.Context, email string) error {
	return s.customers.DeleteByEmail(ctx, email)
}

// Login verifies credentials and returns a token. Unknown emails and wrong
// passwords are both invalid credentials; a deactivated account is reported
// as such only after the email resolves.
func (s *CustomerService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	customer, err := s.customers.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidCredentials, nil)
	}
	if !customer.IsActive {
		return nil, apperrors.Wrap(apperrors.ErrAccountInactive, nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidCredentials, nil)
	}

	token, err := s.tokens.GenerateToken(customer.Email, "Customer", customer.FullName, customer.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: token, Role: "Customer"}, nil
}
