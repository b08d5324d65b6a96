// internal/app/features/pdfs/routes.go
package pdfs

import (
	"github.com/cumuna/clubhub/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the catalog under whatever base path the caller chooses
// (typically "/api/pdfs" from bootstrap).
//
// Example from bootstrap:
//
//	h := pdfs.NewHandler(db, blobs, cfg, errLog, logger)
//	r.Mount("/api/pdfs", pdfs.Routes(h, az))
func Routes(h *Handler, az authz.Authorizer) chi.Router {
	r := chi.NewRouter()

	// Read side
	r.Get("/", h.HandleList)
	r.Get("/categories", h.HandleCategories)
	r.Get("/{id}/view", h.HandleView)
	r.Get("/{id}/download", h.HandleDownload)

	// Mutations go through the capability check
	r.Group(func(pr chi.Router) {
		pr.Use(authz.Require(az, "pdfs.write"))
		pr.Post("/", h.HandleUpload)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
