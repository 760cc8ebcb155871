package repository

import (
	"context"
	"errors"

	"smartkuliner-seller-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("record not found")

// Mongo implementation
type MongoOrderRepository struct {
	col *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{col: db.Collection("orders")}
}

func (m *MongoOrderRepository) Insert(ctx context.Context, o *model.Order) error {
	_, err := m.col.InsertOne(ctx, o)
	return err
}

func (m *MongoOrderRepository) FindByID(ctx context.Context, orderID string) (*model.Order, error) {
	var res model.Order
	err := m.col.FindOne(ctx, bson.M{"_id": orderID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

// FindBySeller returns every order containing at least one of the
// seller's line items.
func (m *MongoOrderRepository) FindBySeller(ctx context.Context, sellerID string) ([]model.Order, error) {
	cur, err := m.col.Find(ctx, bson.M{"items.seller_id": sellerID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []model.Order
	for cur.Next(ctx) {
		var v model.Order
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, cur.Err()
}

// UpdateStatus writes the new status and its timestamp in one document
// update, so the store never holds one without the other.
func (m *MongoOrderRepository) UpdateStatus(ctx context.Context, orderID, newStatus, stampField, stampedAt string) error {
	update := bson.M{
		"$set": bson.M{
			"status":   newStatus,
			stampField: stampedAt,
		},
	}
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": orderID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
