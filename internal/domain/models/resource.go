// internal/domain/models/resource.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resource is a catalog entry for one uploaded PDF. The bytes live in the
// blob area on disk; this record holds the metadata and the mapping to the
// stored file.
//
// FilePath is the server-local storage path. It is persisted but never
// serialized to clients; the filesystem layout stays private and PDF bytes
// are only reachable through the view/download endpoints.
type Resource struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FileName    string             `bson:"file_name" json:"filename"`
	FilePath    string             `bson:"file_path" json:"-"`
	Size        int64              `bson:"size" json:"size"`
	ContentType string             `bson:"content_type" json:"contentType"`
	Category    string             `bson:"category" json:"category"`
	UploadedAt  time.Time          `bson:"uploaded_at" json:"uploadedAt"`
}
