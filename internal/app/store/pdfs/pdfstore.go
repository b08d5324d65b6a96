// internal/app/store/pdfs/pdfstore.go
package pdfstore

import (
	"context"
	"errors"
	"time"

	"github.com/cumuna/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no resource record matches the given id.
var ErrNotFound = errors.New("resource not found")

// Store owns the pdfs collection: one record per uploaded PDF, mapping the
// metadata to a file in the blob area.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("pdfs")}
}

// Insert adds a new resource record, assigning the ID and upload timestamp.
// Returns the stored record.
func (s *Store) Insert(ctx context.Context, res models.Resource) (models.Resource, error) {
	res.ID = primitive.NewObjectID()
	if res.UploadedAt.IsZero() {
		res.UploadedAt = time.Now().UTC()
	}

	if _, err := s.c.InsertOne(ctx, res); err != nil {
		return models.Resource{}, err
	}
	return res, nil
}

// GetByID returns the resource record with the given id, or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Resource, error) {
	var res models.Resource
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&res)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Resource{}, ErrNotFound
	}
	if err != nil {
		return models.Resource{}, err
	}
	return res, nil
}

// List returns resource records newest-first. A non-empty category narrows
// the result to that category; validating the category against the closed
// set is the caller's concern (unknown values are simply not passed in).
func (s *Store) List(ctx context.Context, category string) ([]models.Resource, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	resources := []models.Resource{}
	if err := cur.All(ctx, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// Delete removes the resource record. Returns the number of documents
// deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
