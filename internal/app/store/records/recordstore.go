// Package recordstore wraps one schemaless document collection.
//
// The club's simple entities (blogs, team, events, committee members,
// announcements) share the same access pattern: list, get by id, insert,
// delete. Records are kept as raw documents rather than typed structs; the
// per-entity required-field validation lives in the HTTP layer.
package recordstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = errors.New("record not found")

// Store provides find/insert/delete over a single collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database, collection string) *Store {
	return &Store{c: db.Collection(collection)}
}

// List returns all records, newest-first by creation time. Documents
// predating this backend (no createdAt field) sort last.
func (s *Store) List(ctx context.Context) ([]bson.M, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetByID returns the record with the given id, or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Insert adds a record, assigning _id and createdAt/updatedAt timestamps.
// The stored document is returned so handlers can echo it back.
func (s *Store) Insert(ctx context.Context, doc bson.M) (bson.M, error) {
	now := time.Now().UTC()
	doc["_id"] = primitive.NewObjectID()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes the record with the given id. Returns the number of
// documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
