// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cumuna/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. The club
// backend makes sure the upload area exists so the static file server has a
// directory to serve from the first request on.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("handler timeouts overridden from environment", zap.Int("count", n))
	}

	assetsDir := filepath.Join(appCfg.UploadRoot, "assets")
	if err := os.MkdirAll(assetsDir, 0o755); err != nil {
		return err
	}
	logger.Info("upload area ready",
		zap.String("root", appCfg.UploadRoot))
	return nil
}
