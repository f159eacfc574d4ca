package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"marketplace-backend/models"
)

// VendorRepository persists customer feedback on vendors: write-once
// rankings and upserted comments.
type VendorRepository interface {
	InsertRanking(ctx context.Context, ranking *models.VendorRanking) error
	FindRanking(ctx context.Context, customerID, vendorID primitive.ObjectID) (*models.VendorRanking, error)
	FindRankingsByVendorID(ctx context.Context, vendorID primitive.ObjectID) ([]models.VendorRanking, error)
	// UpsertComment inserts or replaces the customer's comment for the
	// vendor; latest write wins.
	UpsertComment(ctx context.Context, comment *models.VendorComment) error
	FindComment(ctx context.Context, customerID, vendorID primitive.ObjectID) (*models.VendorComment, error)
}

type mongoVendorRepository struct {
	rankings *mongo.Collection
	comments *mongo.Collection
}

func NewVendorRepository(db *mongo.Database) VendorRepository {
	return &mongoVendorRepository{
		rankings: db.Collection("rankings"),
		comments: db.Collection("vendor_comments"),
	}
}

func (r *mongoVendorRepository) InsertRanking(ctx context.Context, ranking *models.VendorRanking) error {
	_, err := r.rankings.InsertOne(ctx, ranking)
	return err
}

func (r *mongoVendorRepository) FindRanking(ctx context.Context, customerID, vendorID primitive.ObjectID) (*models.VendorRanking, error) {
	filter := bson.M{"customer_id": customerID, "vendor_id": vendorID}
	var ranking models.VendorRanking
	err := r.rankings.FindOne(ctx, filter).Decode(&ranking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ranking, nil
}

func (r *mongoVendorRepository) FindRankingsByVendorID(ctx context.Context, vendorID primitive.ObjectID) ([]models.VendorRanking, error) {
	cursor, err := r.rankings.Find(ctx, bson.M{"vendor_id": vendorID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rankings []models.VendorRanking
	if err := cursor.All(ctx, &rankings); err != nil {
		return nil, err
	}
	return rankings, nil
}

func (r *mongoVendorRepository) UpsertComment(ctx context.Context, comment *models.VendorComment) error {
	filter := bson.M{"customer_id": comment.CustomerID, "vendor_id": comment.VendorID}
	update := bson.M{
		"$set": bson.M{
			"comment":    comment.Comment,
			"updated_at": time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"_id":         primitive.NewObjectID(),
			"customer_id": comment.CustomerID,
			"vendor_id":   comment.VendorID,
			"created_at":  time.Now().UTC(),
		},
	}
	_, err := r.comments.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoVendorRepository) FindComment(ctx context.Context, customerID, vendorID primitive.ObjectID) (*models.VendorComment, error) {
	filter := bson.M{"customer_id": customerID, "vendor_id": vendorID}
	var comment models.VendorComment
	err := r.comments.FindOne(ctx, filter).Decode(&comment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
