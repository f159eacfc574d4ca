package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"marketplace-backend/apperrors"
	"marketplace-backend/models"
	"marketplace-backend/repository"
)

// VendorService handles customer feedback on vendors.
//
// Rankings are write-once: a customer scores a vendor exactly once and the
// score cannot be changed later. Comments upsert: the customer's latest
// comment for a vendor replaces the previous one.
type VendorService struct {
	vendors repository.VendorRepository
	users   repository.UserRepository
	logger  *zap.Logger
}

func NewVendorService(vendors repository.VendorRepository, users repository.UserRepository, logger *zap.Logger) *VendorService {
	return &VendorService{vendors: vendors, users: users, logger: logger}
}

// ensureVendor verifies the target account exists and is a vendor.
func (s *VendorService) ensureVendor(ctx context.Context, vendorID primitive.ObjectID) error {
	user, err := s.users.FindByID(ctx, vendorID)
	if err != nil {
		return err
	}
	if user == nil || user.Role != models.RoleVendor {
		return apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return nil
}

// AddRanking records a customer's score for a vendor. A second ranking by
// the same customer is rejected.
func (s *VendorService) AddRanking(ctx context.Context, vendorID primitive.ObjectID, req *models.AddRankingRequest) (*models.VendorRanking, error) {
	if req.Score < 1 || req.Score > 5 {
		return nil, apperrors.Wrap(apperrors.ErrValidation, nil)
	}
	if err := s.ensureVendor(ctx, vendorID); err != nil {
		return nil, err
	}

	existing, err := s.vendors.FindRanking(ctx, req.CustomerID, vendorID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Wrap(apperrors.ErrRankingExists, nil)
	}

	ranking := &models.VendorRanking{
		ID:         primitive.NewObjectID(),
		CustomerID: req.CustomerID,
		VendorID:   vendorID,
		Score:      req.Score,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.vendors.InsertRanking(ctx, ranking); err != nil {
		return nil, err
	}
	s.logger.Info("vendor ranked",
		zap.String("vendor_id", vendorID.Hex()),
		zap.String("customer_id", req.CustomerID.Hex()),
		zap.Int("score", req.Score))
	return ranking, nil
}

// GetAverageRanking computes the vendor's mean score; 0 when unranked.
func (s *VendorService) GetAverageRanking(ctx context.Context, vendorID primitive.ObjectID) (float64, error) {
	rankings, err := s.vendors.FindRankingsByVendorID(ctx, vendorID)
	if err != nil {
		return 0, err
	}
	if len(rankings) == 0 {
		return 0, nil
	}
	total := 0
	for _, r := range rankings {
		total += r.Score
	}
	return float64(total) / float64(len(rankings)), nil
}

func (s *VendorService) GetRankings(ctx context.Context, vendorID primitive.ObjectID) ([]models.VendorRanking, error) {
	return s.vendors.FindRankingsByVendorID(ctx, vendorID)
}

// AddOrUpdateComment stores the customer's comment for the vendor,
// replacing any previous one.
func (s *VendorService) AddOrUpdateComment(ctx context.Context, vendorID primitive.ObjectID, req *models.AddVendorCommentRequest) error {
	if err := s.ensureVendor(ctx, vendorID); err != nil {
		return err
	}
	comment := &models.VendorComment{
		CustomerID: req.CustomerID,
		VendorID:   vendorID,
		Comment:    req.Comment,
	}
	return s.vendors.UpsertComment(ctx, comment)
}

func (s *VendorService) GetComment(ctx context.Context, customerID, vendorID primitive.ObjectID) (*models.VendorComment, error) {
	comment, err := s.vendors.FindComment(ctx, customerID, vendorID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return comment, nil
}
