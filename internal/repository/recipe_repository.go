package repository

import (
	"context"

	"smartkuliner-seller-service/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoRecipeRepository struct {
	col *mongo.Collection
}

func NewMongoRecipeRepository(db *mongo.Database) *MongoRecipeRepository {
	return &MongoRecipeRepository{col: db.Collection("recipes")}
}

func (m *MongoRecipeRepository) Insert(ctx context.Context, r *model.Recipe) error {
	_, err := m.col.InsertOne(ctx, r)
	return err
}

func (m *MongoRecipeRepository) FindByID(ctx context.Context, recipeID string) (*model.Recipe, error) {
	var res model.Recipe
	err := m.col.FindOne(ctx, bson.M{"_id": recipeID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	return &res, err
}

func (m *MongoRecipeRepository) FindAll(ctx context.Context) ([]model.Recipe, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []model.Recipe
	for cur.Next(ctx) {
		var v model.Recipe
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, cur.Err()
}

// Update rewrites the editable fields; likes_count stays untouched so
// concurrent likes are never overwritten by an edit.
func (m *MongoRecipeRepository) Update(ctx context.Context, r *model.Recipe) error {
	update := bson.M{
		"$set": bson.M{
			"title":       r.Title,
			"description": r.Description,
			"category":    r.Category,
			"ingredients": r.Ingredients,
			"steps":       r.Steps,
			"image_url":   r.ImageURL,
			"updated_at":  r.UpdatedAt,
		},
	}
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": r.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRecipeRepository) Delete(ctx context.Context, recipeID string) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": recipeID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
