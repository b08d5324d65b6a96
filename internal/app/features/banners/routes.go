// internal/app/features/banners/routes.go
package banners

import (
	"github.com/cumuna/clubhub/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes returns the banner router, mounted at /banners from bootstrap.
func Routes(h *Handler, az authz.Authorizer) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Get("/{id}", h.HandleGet)

	r.Group(func(pr chi.Router) {
		pr.Use(authz.Require(az, "banners.write"))
		pr.Post("/", h.HandleCreate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
