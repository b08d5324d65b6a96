// internal/app/features/records/handler.go
//
// Package records serves the thin pass-through entity routers (blog posts,
// team members, events, extra events, committee members, announcements).
// Every endpoint is the same shape: read the request, run one store
// operation, return the envelope. Entity-specific behavior is data, not
// code; see the Entity descriptors in entities.go.
package records

import (
	uierrors "github.com/cumuna/clubhub/internal/app/features/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves one entity's routes.
//
// It is constructed once per entity at startup in bootstrap, using the
// shared Mongo database handle and logger.
type Handler struct {
	DB     *mongo.Database
	Entity Entity
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs a Handler for the given entity.
func NewHandler(db *mongo.Database, entity Entity, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Entity: entity,
		Log:    logger,
		ErrLog: errLog,
	}
}
