// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the club backend.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, upload_root, etc.
//   - Environment variables: CLUBHUB_MONGO_URI, CLUBHUB_UPLOAD_ROOT, etc.
//   - Command-line flags: --mongo_uri, --upload_root, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "cumuna", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	// Upload storage
	{Name: "upload_root", Default: "./uploads", Desc: "Root directory for uploaded files"},
	{Name: "pdf_max_bytes", Default: 10 << 20, Desc: "Upload size ceiling for PDF resources in bytes (default 10 MiB)"},
	{Name: "pdf_categories", Default: "", Desc: "Comma-separated override of the PDF category set (blank uses built-ins)"},

	// Browser clients
	{Name: "cors_origins", Default: "*", Desc: "Comma-separated allowed CORS origins"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CLUBHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		UploadRoot:  appValues.String("upload_root"),
		PDFMaxBytes: int64(appValues.Int("pdf_max_bytes")),

		PDFCategories: splitList(appValues.String("pdf_categories")),
		CORSOrigins:   splitList(appValues.String("cors_origins")),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI is validated here to catch configuration errors early,
// before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if strings.TrimSpace(appCfg.UploadRoot) == "" {
		return fmt.Errorf("upload_root must not be empty")
	}
	if appCfg.PDFMaxBytes <= 0 {
		return fmt.Errorf("pdf_max_bytes must be positive, got %d", appCfg.PDFMaxBytes)
	}
	return nil
}

// splitList parses a comma-separated config value, trimming whitespace and
// dropping empty entries. An empty input yields nil.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
