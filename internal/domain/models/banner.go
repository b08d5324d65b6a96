// internal/domain/models/banner.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Banner is one homepage banner image. Banners carry an explicit display
// order; the store keeps orders dense (0..n-1), re-indexing after deletes.
type Banner struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ImageURL string             `bson:"imageUrl" json:"imageUrl"`
	Title    string             `bson:"title,omitempty" json:"title,omitempty"`
	Subtitle string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Order    int                `bson:"order" json:"order"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
