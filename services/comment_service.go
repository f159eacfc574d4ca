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

// CommentService manages product and vendor reviews.
type CommentService struct {
	comments repository.CommentRepository
	logger   *zap.Logger
}

func NewCommentService(comments repository.CommentRepository, logger *zap.Logger) *CommentService {
	return &CommentService{comments: comments, logger: logger}
}

func (s *CommentService) Add(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	if comment.Rating != 0 && (comment.Rating < 1 || comment.Rating > 5) {
		return nil, apperrors.Wrap(apperrors.ErrValidation, nil)
	}
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now().UTC()
	if err := s.comments.Insert(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, id primitive.ObjectID) error {
	found, err := s.comments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return nil
}

func (s *CommentService) GetByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Comment, error) {
	return s.comments.FindByProductID(ctx, productID)
}

func (s *CommentService) GetByVendor(ctx context.Context, vendorID primitive.ObjectID) ([]models.Comment, error) {
	return s.comments.FindByVendorID(ctx, vendorID)
}

func (s *CommentService) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Comment, error) {
	return s.comments.FindByUserID(ctx, userID)
}

// GetProductRating averages the rated comments on a product. Comments
// without a rating are skipped; 0 means the product has no ratings yet.
func (s *CommentService) GetProductRating(ctx context.Context, productID primitive.ObjectID) (float64, error) {
	comments, err := s.comments.FindByProductID(ctx, productID)
	if err != nil {
		return 0, err
	}
	total, rated := 0, 0
	for _, c := range comments {
		if c.Rating > 0 {
			total += c.Rating
			rated++
		}
	}
	if rated == 0 {
		return 0, nil
	}
	return float64(total) / float64(rated), nil
}
