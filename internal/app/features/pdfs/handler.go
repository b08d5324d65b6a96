// internal/app/features/pdfs/handler.go
package pdfs

import (
	uierrors "github.com/cumuna/clubhub/internal/app/features/errors"
	"github.com/cumuna/clubhub/internal/app/system/blobstore"
	"github.com/cumuna/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// allowedContentType is the only MIME type this catalog accepts.
const allowedContentType = "application/pdf"

// Config carries the catalog's tunables from bootstrap.
type Config struct {
	// Categories overrides the built-in category set. Nil means
	// models.PDFCategories.
	Categories []string

	// MaxUploadBytes is the upload size ceiling. Zero or negative means the
	// 10 MiB default.
	MaxUploadBytes int64
}

// Handler owns the PDF resource catalog: upload, category-filtered listing,
// inline view, attachment download, and delete. It holds the record
// collection and the blob area together because keeping them consistent is
// the catalog's whole job.
//
// It is constructed once at startup in bootstrap, using the shared Mongo
// database handle, the blob store, and the logger.
type Handler struct {
	DB     *mongo.Database
	Blobs  *blobstore.Store
	Cfg    Config
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs a catalog Handler bound to the given Mongo database,
// blob store, and logger.
func NewHandler(db *mongo.Database, blobs *blobstore.Store, cfg Config, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	if cfg.Categories == nil {
		cfg.Categories = models.PDFCategories
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 << 20
	}
	return &Handler{
		DB:     db,
		Blobs:  blobs,
		Cfg:    cfg,
		Log:    logger,
		ErrLog: errLog,
	}
}
