// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	if err := ensurePDFs(ctx, db); err != nil {
		problems = append(problems, "pdfs: "+err.Error())
	}
	if err := ensureBanners(ctx, db); err != nil {
		problems = append(problems, "banners: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	logger.Info("indexes ensured")
	return nil
}

// ensurePDFs supports the catalog's two read paths: the newest-first listing
// and the category filter.
func ensurePDFs(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("pdfs").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "uploaded_at", Value: -1}},
			Options: options.Index().SetName("uploaded_at_desc"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "uploaded_at", Value: -1}},
			Options: options.Index().SetName("category_uploaded_at"),
		},
	})
	return err
}

// ensureBanners supports the ordered banner listing.
func ensureBanners(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("banners").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "order", Value: 1}},
			Options: options.Index().SetName("order_asc"),
		},
	})
	return err
}
