package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"marketplace-backend/apperrors"
	"marketplace-backend/models"
	"marketplace-backend/repository"
)

// CategoryService manages categories and keeps the category name that
// products denormalize in sync on rename.
type CategoryService struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	logger     *zap.Logger
}

func NewCategoryService(categories repository.CategoryRepository, products repository.ProductRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{categories: categories, products: products, logger: logger}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *CategoryService) GetByActive(ctx context.Context, active bool) ([]models.Category, error) {
	return s.categories.FindByActive(ctx, active)
}

func (s *CategoryService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	category.ID = primitive.NewObjectID()
	if err := s.categories.Insert(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update replaces the category; a rename rewrites the denormalized name on
// every product in the category.
func (s *CategoryService) Update(ctx context.Context, id primitive.ObjectID, category *models.Category) (*models.Category, error) {
	existing, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, nil)
	}

	found, err := s.categories.Replace(ctx, id, category)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, nil)
	}

	if existing.Name != category.Name {
		if err := s.products.RefreshCategoryName(ctx, id, category.Name); err != nil {
			// The rename itself succeeded; stale product names heal on the
			// next rename.
			s.logger.Warn("category name refresh failed",
				zap.String("category_id", id.Hex()),
				zap.Error(err))
		}
	}
	return category, nil
}

func (s *CategoryService) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	found, err := s.categories.SetActive(ctx, id, active)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return nil
}

func (s *CategoryService) Delete(ctx context.Context, id primitive.ObjectID) error {
	found, err := s.categories.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return nil
}
