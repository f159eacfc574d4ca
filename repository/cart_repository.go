package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"marketplace-backend/models"
)

// CartRepository persists carts. All mutations are field-scoped updates, not
// whole-document replaces, so concurrent writers on the same cart cannot
// lose each other's changes.
type CartRepository interface {
	GetActiveCartByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	GetCartByID(ctx context.Context, cartID primitive.ObjectID) (*models.Cart, error)
	// EnsureActiveCart returns the user's active cart, creating it if absent.
	// The find-or-create is a single conditional upsert so two racing calls
	// converge on one cart.
	EnsureActiveCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	// IncrementItemQuantity bumps the quantity of an existing line for the
	// product. Returns false when the cart has no such line.
	IncrementItemQuantity(ctx context.Context, cartID, productID primitive.ObjectID, qty int) (bool, error)
	// PushItem appends a new line unless one for the same product already
	// exists. Returns false when the guard rejected the push.
	PushItem(ctx context.Context, cartID primitive.ObjectID, item models.CartItem) (bool, error)
	SetItemQuantity(ctx context.Context, cartID, itemID primitive.ObjectID, qty int) (bool, error)
	PullItem(ctx context.Context, cartID, itemID primitive.ObjectID) (bool, error)
	ClearItems(ctx context.Context, cartID primitive.ObjectID) (bool, error)
	SetCartStatus(ctx context.Context, cartID primitive.ObjectID, status bool) (bool, error)
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error
	DeleteByID(ctx context.Context, cartID primitive.ObjectID) error
	// AcceptItemsForProducts flips every pending line for one of the given
	// products to accepted. Returns the number of lines modified.
	AcceptItemsForProducts(ctx context.Context, cartID primitive.ObjectID, productIDs []primitive.ObjectID) (int64, error)
	// FindCartIDsContainingProduct lists carts holding a line for the product.
	FindCartIDsContainingProduct(ctx context.Context, productID primitive.ObjectID) ([]primitive.ObjectID, error)
}

type mongoCartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) CartRepository {
	return &mongoCartRepository{collection: db.Collection("carts")}
}

func (r *mongoCartRepository) GetActiveCartByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	filter := bson.M{"user_id": userID, "status": true}
	var cart models.Cart
	err := r.collection.FindOne(ctx, filter).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *mongoCartRepository) GetCartByID(ctx context.Context, cartID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"_id": cartID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *mongoCartRepository) EnsureActiveCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	filter := bson.M{"user_id": userID, "status": true}
	update := bson.M{"$setOnInsert": bson.M{
		"_id":     primitive.NewObjectID(),
		"user_id": userID,
		"items":   []models.CartItem{},
		"status":  true,
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var cart models.Cart
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *mongoCartRepository) IncrementItemQuantity(ctx context.Context, cartID, productID primitive.ObjectID, qty int) (bool, error) {
	filter := bson.M{"_id": cartID, "items.product_id": productID}
	update := bson.M{"$inc": bson.M{"items.$.quantity": qty}}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoCartRepository) PushItem(ctx context.Context, cartID primitive.ObjectID, item models.CartItem) (bool, error) {
	// The $ne guard keeps a racing duplicate add from producing two lines
	// for the same product.
	filter := bson.M{"_id": cartID, "items.product_id": bson.M{"$ne": item.ProductID}}
	update := bson.M{"$push": bson.M{"items": item}}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoCartRepository) SetItemQuantity(ctx context.Context, cartID, itemID primitive.ObjectID, qty int) (bool, error) {
	filter := bson.M{"_id": cartID, "items._id": itemID}
	update := bson.M{"$set": bson.M{"items.$.quantity": qty}}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0 || res.MatchedCount > 0, nil
}

func (r *mongoCartRepository) PullItem(ctx context.Context, cartID, itemID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": cartID}
	update := bson.M{"$pull": bson.M{"items": bson.M{"_id": itemID}}}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (r *mongoCartRepository) ClearItems(ctx context.Context, cartID primitive.ObjectID) (bool, error) {
	update := bson.M{"$set": bson.M{"items": []models.CartItem{}}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": cartID}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoCartRepository) SetCartStatus(ctx context.Context, cartID primitive.ObjectID, status bool) (bool, error) {
	update := bson.M{"$set": bson.M{"status": status}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": cartID}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoCartRepository) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "status": true})
	return err
}

func (r *mongoCartRepository) DeleteByID(ctx context.Context, cartID primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": cartID})
	return err
}

func (r *mongoCartRepository) AcceptItemsForProducts(ctx context.Context, cartID primitive.ObjectID, productIDs []primitive.ObjectID) (int64, error) {
	if len(productIDs) == 0 {
		return 0, nil
	}
	filter := bson.M{"_id": cartID}
	update := bson.M{"$set": bson.M{"items.$[it].status": models.ItemStatusAccepted}}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{
			"it.product_id": bson.M{"$in": productIDs},
			"it.status":     models.ItemStatusPending,
		}},
	})
	res, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *mongoCartRepository) FindCartIDsContainingProduct(ctx context.Context, productID primitive.ObjectID) ([]primitive.ObjectID, error) {
	filter := bson.M{"items.product_id": productID}
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
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
