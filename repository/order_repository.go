package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"marketplace-backend/models"
)

// OrderRepository persists orders. State transitions go through
// UpdateStatusIf so a concurrent writer can never overwrite a terminal
// status.
type OrderRepository interface {
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]models.Order, error)
	Insert(ctx context.Context, order *models.Order) error
	// Replace swaps the whole document; callers get found=false when the id
	// does not exist.
	Replace(ctx context.Context, id primitive.ObjectID, order *models.Order) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	// UpdateStatusIf sets the status only when the current status matches
	// `from`. Returns whether the transition fired.
	UpdateStatusIf(ctx context.Context, id primitive.ObjectID, from, to string) (bool, error)
	// CountPendingByCartIDs counts Pending orders referencing any of the carts.
	CountPendingByCartIDs(ctx context.Context, cartIDs []primitive.ObjectID) (int64, error)
}

type mongoOrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &mongoOrderRepository{collection: db.Collection("orders")}
}

func (r *mongoOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *mongoOrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *mongoOrderRepository) FindByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]models.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"customer_id": customerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *mongoOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

func (r *mongoOrderRepository) Replace(ctx context.Context, id primitive.ObjectID, order *models.Order) (bool, error) {
	order.ID = id
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, order)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoOrderRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoOrderRepository) UpdateStatusIf(ctx context.Context, id primitive.ObjectID, from, to string) (bool, error) {
	filter := bson.M{"_id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to}}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoOrderRepository) CountPendingByCartIDs(ctx context.Context, cartIDs []primitive.ObjectID) (int64, error) {
	if len(cartIDs) == 0 {
		return 0, nil
	}
	filter := bson.M{"cart_id": bson.M{"$in": cartIDs}, "status": models.OrderStatusPending}
	return r.collection.CountDocuments(ctx, filter)
}
