package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"marketplace-backend/apperrors"
	"marketplace-backend/models"
	"marketplace-backend/repository"
)

// ProductCache is a read-through cache for single-product lookups. A nil
// implementation is fine; cache misses and failures fall back to the store.
type ProductCache interface {
	Get(ctx context.Context, id primitive.ObjectID) (*models.Product, bool)
	Set(ctx context.Context, product *models.Product)
	Invalidate(ctx context.Context, id primitive.ObjectID)
}

// ProductService manages the catalog. Category names are denormalized onto
// products at write time; CategoryService refreshes them on rename.
type ProductService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	inventory  *InventoryService
	cache      ProductCache
	logger     *zap.Logger
}

func NewProductService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	inventory *InventoryService,
	cache ProductCache,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		inventory:  inventory,
		cache:      cache,
		logger:     logger,
	}
}

func (s *ProductService) GetAll(ctx context.Context) ([]models.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *ProductService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	if s.cache != nil {
		if product, ok := s.cache.Get(ctx, id); ok {
			return product, nil
		}
	}
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	if s.cache != nil {
		s.cache.Set(ctx, product)
	}
	return product, nil
}

// GetByCategory lists a category's products. Unknown categories are
// NotFound, unlike the empty list an empty category yields.
func (s *ProductService) GetByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	exists, err := s.categories.Exists(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	return s.products.FindByCategoryID(ctx, categoryID)
}

// GetAvailable lists products with stock on hand.
func (s *ProductService) GetAvailable(ctx context.Context) ([]models.Product, error) {
	return s.products.FindAvailable(ctx)
}

// Create mints an id and snapshots the category name onto the product.
func (s *ProductService) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	product.ID = primitive.NewObjectID()
	if !product.CategoryID.IsZero() {
		category, err := s.categories.FindByID(ctx, product.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, nil)
		}
		product.CategoryName = category.Name
	}
	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, product *models.Product) (*models.Product, error) {
	found, err := s.products.Replace(ctx, id, product)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	return product, nil
}

// Delete removes a product unless a Pending order still references it.
func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	pending, err := s.inventory.HasPendingOrders(ctx, id)
	if err != nil {
		return err
	}
	if pending {
		return apperrors.Wrap(apperrors.ErrPendingOrders, nil)
	}
	found, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	return nil
}

func (s *ProductService) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	found, err := s.products.SetActive(ctx, id, active)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.Wrap(apperrors.ErrNotFound, nil)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	return nil
}
