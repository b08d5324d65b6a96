// internal/app/store/banners/bannerstore.go
package bannerstore

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

// ErrNotFound is returned when no banner matches the given id.
var ErrNotFound = errors.New("banner not found")

// Store owns the banners collection. Banners are display-ordered; the store
// appends new banners at the end and keeps orders dense after deletes.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("banners")}
}

// Create inserts a banner at the end of the current order.
func (s *Store) Create(ctx context.Context, b models.Banner) (models.Banner, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.Banner{}, err
	}

	now := time.Now().UTC()
	b.ID = primitive.NewObjectID()
	b.Order = int(n)
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, b); err != nil {
		return models.Banner{}, err
	}
	return b, nil
}

// GetByID returns the banner with the given id, or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Banner, error) {
	var b models.Banner
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Banner{}, ErrNotFound
	}
	if err != nil {
		return models.Banner{}, err
	}
	return b, nil
}

// List returns all banners in display order.
func (s *Store) List(ctx context.Context) ([]models.Banner, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	banners := []models.Banner{}
	if err := cur.All(ctx, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// Delete removes a banner and re-indexes the remaining banners so orders
// stay dense (0..n-1). Returns ErrNotFound if the id does not resolve.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return s.reindex(ctx)
}

// reindex rewrites order fields to match the current display sequence.
func (s *Store) reindex(ctx context.Context) error {
	banners, err := s.List(ctx)
	if err != nil {
		return err
	}

	var writes []mongo.WriteModel
	for i, b := range banners {
		if b.Order == i {
			continue
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": b.ID}).
			SetUpdate(bson.M{"$set": bson.M{"order": i, "updatedAt": time.Now().UTC()}}))
	}
	if len(writes) == 0 {
		return nil
	}

	_, err = s.c.BulkWrite(ctx, writes)
	return err
}
