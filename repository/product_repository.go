package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"marketplace-backend/models"
)

// ProductRepository persists catalog products. Stock mutations are atomic
// $inc updates; DecrementStockIf carries the non-negative guard in its
// filter so stock can never go below zero.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByCategoryID(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error)
	FindAvailable(ctx context.Context) ([]models.Product, error)
	FindIDsByVendorID(ctx context.Context, vendorID primitive.ObjectID) ([]primitive.ObjectID, error)
	Insert(ctx context.Context, product *models.Product) error
	Replace(ctx context.Context, id primitive.ObjectID, product *models.Product) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) (bool, error)
	IncrementStock(ctx context.Context, id primitive.ObjectID, qty int) (bool, error)
	// DecrementStockIf subtracts qty only when the current stock covers it.
	// Returns (found, decremented).
	DecrementStockIf(ctx context.Context, id primitive.ObjectID, qty int) (bool, bool, error)
	// RefreshCategoryName rewrites the denormalized category name on every
	// product in the category.
	RefreshCategoryName(ctx context.Context, categoryID primitive.ObjectID, name string) error
}

type mongoProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{collection: db.Collection("products")}
}

func (r *mongoProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *mongoProductRepository) FindByCategoryID(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	return r.find(ctx, bson.M{"category_id": categoryID})
}

func (r *mongoProductRepository) FindAvailable(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{"stock_quantity": bson.M{"$gt": 0}})
}

func (r *mongoProductRepository) FindIDsByVendorID(ctx context.Context, vendorID primitive.ObjectID) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"vendor_id": vendorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ids []primitive.ObjectID
	for cursor.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ID)
	}
	return ids, cursor.Err()
}

func (r *mongoProductRepository) Insert(ctx context.Context, product *models.Product) error {
	_, err := r.collection.InsertOne(ctx, product)
	return err
}

func (r *mongoProductRepository) Replace(ctx context.Context, id primitive.ObjectID, product *models.Product) (bool, error) {
	product.ID = id
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, product)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoProductRepository) SetActive(ctx context.Context, id primitive.ObjectID, active bool) (bool, error) {
	update := bson.M{"$set": bson.M{"is_active": active}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoProductRepository) IncrementStock(ctx context.Context, id primitive.ObjectID, qty int) (bool, error) {
	update := bson.M{"$inc": bson.M{"stock_quantity": qty}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoProductRepository) DecrementStockIf(ctx context.Context, id primitive.ObjectID, qty int) (bool, bool, error) {
	filter := bson.M{"_id": id, "stock_quantity": bson.M{"$gte": qty}}
	update := bson.M{"$inc": bson.M{"stock_quantity": -qty}}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, false, err
	}
	if res.MatchedCount > 0 {
		return true, true, nil
	}
	// Distinguish "not found" from "insufficient stock".
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, false, err
	}
	return count > 0, false, nil
}

func (r *mongoProductRepository) RefreshCategoryName(ctx context.Context, categoryID primitive.ObjectID, name string) error {
	update := bson.M{"$set": bson.M{"category_name": name}}
	_, err := r.collection.UpdateMany(ctx, bson.M{"category_id": categoryID}, update)
	return err
}

func (r *mongoProductRepository) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
