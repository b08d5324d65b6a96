// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"path/filepath"

	bannersfeature "github.com/cumuna/clubhub/internal/app/features/banners"
	errorsfeature "github.com/cumuna/clubhub/internal/app/features/errors"
	healthfeature "github.com/cumuna/clubhub/internal/app/features/health"
	pdfsfeature "github.com/cumuna/clubhub/internal/app/features/pdfs"
	recordsfeature "github.com/cumuna/clubhub/internal/app/features/records"
	"github.com/cumuna/clubhub/internal/app/system/authz"
	"github.com/cumuna/clubhub/internal/app/system/blobstore"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// ClubHub mounts the health check, the static upload area, the PDF resource
// catalog, and a router per club entity (blogs, president/team, events,
// extra events, committee, announcements, banners).
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	// Mutating routes carry a capability check. Until an identity layer is
	// wired in, every capability is granted.
	var az authz.Authorizer = authz.AllowAll{}

	r := chi.NewRouter()

	// The frontend is served from a different origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appCfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Publicly served static uploads (banner images and the like). PDFs are
	// deliberately not under this mount; they go through the catalog handlers.
	r.Handle("/uploads/*", fileserver.Handler("/uploads", filepath.Join(appCfg.UploadRoot, "assets")))

	db := deps.MongoDatabase

	// PDF resource catalog
	blobs := blobstore.New(filepath.Join(appCfg.UploadRoot, "pdfs"))
	pdfHandler := pdfsfeature.NewHandler(db, blobs, pdfsfeature.Config{
		Categories:     appCfg.PDFCategories,
		MaxUploadBytes: appCfg.PDFMaxBytes,
	}, errLog, logger)
	r.Mount("/api/pdfs", pdfsfeature.Routes(pdfHandler, az))

	// Club entities
	mountEntity := func(path string, entity recordsfeature.Entity) {
		h := recordsfeature.NewHandler(db, entity, errLog, logger)
		r.Mount(path, recordsfeature.Routes(h, az))
	}
	mountEntity("/blogs", recordsfeature.Blogs)
	mountEntity("/president", recordsfeature.Team)
	mountEntity("/events", recordsfeature.Events)
	mountEntity("/extraevents", recordsfeature.ExtraEvents)
	mountEntity("/committee", recordsfeature.Committee)
	mountEntity("/announcements", recordsfeature.Announcements)

	// Banners keep a display order, so they get their own feature.
	bannerHandler := bannersfeature.NewHandler(db, errLog, logger)
	r.Mount("/banners", bannersfeature.Routes(bannerHandler, az))

	return r, nil
}
