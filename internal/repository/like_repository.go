package repository

import (
	"context"
	"errors"

	"smartkuliner-seller-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrAlreadyLiked = errors.New("recipe already liked by this user")
	ErrNotLiked     = errors.New("recipe not liked by this user")
)

// MongoLikeRepository keeps the like join-records and the denormalized
// likes_count on the recipe consistent with the store's multi-document
// transaction.
type MongoLikeRepository struct {
	client  *mongo.Client
	likes   *mongo.Collection
	recipes *mongo.Collection
}

func NewMongoLikeRepository(client *mongo.Client, db *mongo.Database) *MongoLikeRepository {
	return &MongoLikeRepository{
		client:  client,
		likes:   db.Collection("recipe_likes"),
		recipes: db.Collection("recipes"),
	}
}

func (m *MongoLikeRepository) Like(ctx context.Context, like *model.RecipeLike) error {
	session, err := m.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		n, err := m.likes.CountDocuments(sc, bson.M{"recipe_id": like.RecipeID, "user_id": like.UserID})
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, ErrAlreadyLiked
		}
		if _, err := m.likes.InsertOne(sc, like); err != nil {
			return nil, err
		}
		res, err := m.recipes.UpdateOne(sc, bson.M{"_id": like.RecipeID}, bson.M{"$inc": bson.M{"likes_count": 1}})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, ErrNotFound
		}
		return nil, nil
	})
	return err
}

func (m *MongoLikeRepository) Unlike(ctx context.Context, recipeID, userID string) error {
	session, err := m.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := m.likes.DeleteOne(sc, bson.M{"recipe_id": recipeID, "user_id": userID})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, ErrNotLiked
		}
		if _, err := m.recipes.UpdateOne(sc, bson.M{"_id": recipeID}, bson.M{"$inc": bson.M{"likes_count": -1}}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}
