package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"marketplace-backend/models"
)

type CustomerRepository interface {
	FindAll(ctx context.Context) ([]models.Customer, error)
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	Insert(ctx context.Context, customer *models.Customer) error
	Replace(ctx context.Context, id primitive.ObjectID, customer *models.Customer) (bool, error)
	SetActiveByEmail(ctx context.Context, email string, active bool) (bool, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type mongoCustomerRepository struct {
	collection *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) CustomerRepository {
	return &mongoCustomerRepository{collection: db.Collection("customers")}
}

func (r *mongoCustomerRepository) FindAll(ctx context.Context) ([]models.Customer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *mongoCustomerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *mongoCustomerRepository) Insert(ctx context.Context, customer *models.Customer) error {
	_, err := r.collection.InsertOne(ctx, customer)
	return err
}

func (r *mongoCustomerRepository) Replace(ctx context.Context, id primitive.ObjectID, customer *models.Customer) (bool, error) {
	customer.ID = id
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, customer)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoCustomerRepository) SetActiveByEmail(ctx context.Context, email string, active bool) (bool, error) {
	update := bson.M{"$set": bson.M{"is_active": active}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoCustomerRepository) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"email": email})
	return err
}
