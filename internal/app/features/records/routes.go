// internal/app/features/records/routes.go
package records

import (
	"github.com/cumuna/clubhub/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes mounts one entity's router under whatever base path the caller
// chooses (e.g. "/blogs" from bootstrap).
//
// Example from bootstrap:
//
//	blogs := records.NewHandler(db, records.Blogs, errLog, logger)
//	r.Mount("/blogs", records.Routes(blogs, az))
func Routes(h *Handler, az authz.Authorizer) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Get("/{id}", h.HandleGet)

	r.Group(func(pr chi.Router) {
		pr.Use(authz.Require(az, h.Entity.Collection+".write"))
		pr.Post("/", h.HandleCreate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
