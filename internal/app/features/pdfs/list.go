package pdfs

import (
	"context"
	"net/http"
	"strings"

	pdfstore "github.com/cumuna/clubhub/internal/app/store/pdfs"
	"github.com/cumuna/clubhub/internal/app/system/respond"
	"github.com/cumuna/clubhub/internal/app/system/timeouts"
	"github.com/cumuna/clubhub/internal/domain/models"
)

// HandleList returns resource records newest-first. An optional ?category=
// narrows the result; a value outside the closed set is silently ignored and
// the full set is returned. Stored paths never appear in the output.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if !models.IsValidPDFCategory(category, h.Cfg.Categories) {
		category = ""
	}

	store := pdfstore.New(h.DB)
	resources, err := store.List(ctx, category)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list resources failed", err, "Failed to fetch resources.")
		return
	}

	respond.Data(w, http.StatusOK, resources)
}

// HandleCategories returns the closed category enumeration. Pure and static;
// no store access.
func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	respond.Data(w, http.StatusOK, h.Cfg.Categories)
}
