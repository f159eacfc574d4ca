package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"marketplace-backend/models"
)

type CommentRepository interface {
	FindByProductID(ctx context.Context, productID primitive.ObjectID) ([]models.Comment, error)
	FindByVendorID(ctx context.Context, vendorID primitive.ObjectID) ([]models.Comment, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Comment, error)
	Insert(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type mongoCommentRepository struct {
	collection *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) CommentRepository {
	return &mongoCommentRepository{collection: db.Collection("comments")}
}

func (r *mongoCommentRepository) FindByProductID(ctx context.Context, productID primitive.ObjectID) ([]models.Comment, error) {
	return r.find(ctx, bson.M{"product_id": productID})
}

func (r *mongoCommentRepository) FindByVendorID(ctx context.Context, vendorID primitive.ObjectID) ([]models.Comment, error) {
	return r.find(ctx, bson.M{"vendor_id": vendorID})
}

func (r *mongoCommentRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Comment, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *mongoCommentRepository) Insert(ctx context.Context, comment *models.Comment) error {
	_, err := r.collection.InsertOne(ctx, comment)
	return err
}

func (r *mongoCommentRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoCommentRepository) find(ctx context.Context, filter bson.M) ([]models.Comment, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
