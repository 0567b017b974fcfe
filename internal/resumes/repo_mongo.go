package resumes

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoRepo implements Repo over a MongoDB collection.
type MongoRepo struct {
	Coll *mongo.Collection
}

// EnsureIndexes creates the secondary index on userId.
// FindByUser depends on it to stay performant as record volume grows.
func (r *MongoRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.Coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create userId index: %w", err)
	}
	return nil
}

// Insert stores a new record and returns its generated id.
func (r *MongoRepo) Insert(ctx context.Context, rec ParsedResume) (primitive.ObjectID, error) {
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	if _, err := r.Coll.InsertOne(ctx, rec); err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: insert: %v", ErrStorage, err)
	}
	return rec.ID, nil
}

// FindByID fetches one record by its id.
func (r *MongoRepo) FindByID(ctx context.Context, id primitive.ObjectID) (ParsedResume, error) {
	var rec ParsedResume
	err := r.Coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ParsedResume{}, ErrNotFound
		}
		return ParsedResume{}, fmt.Errorf("%w: find by id: %v", ErrStorage, err)
	}
	return rec, nil
}

// FindByUser fetches all records owned by a user.
func (r *MongoRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]ParsedResume, error) {
	cursor, err := r.Coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("%w: find by user: %v", ErrStorage, err)
	}
	defer cursor.Close(ctx)

	var out []ParsedResume
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%w: decode results: %v", ErrStorage, err)
	}
	if out == nil {
		out = []ParsedResume{}
	}
	return out, nil
}

// Ping verifies connectivity with the store.
func (r *MongoRepo) Ping(ctx context.Context) error {
	return r.Coll.Database().Client().Ping(ctx, readpref.Primary())
}

var _ Repo = (*MongoRepo)(nil)
