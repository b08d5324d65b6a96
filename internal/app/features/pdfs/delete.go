package pdfs

import (
	"context"
	"net/http"

	uierrors "github.com/cumuna/clubhub/internal/app/features/errors"
	pdfstore "github.com/cumuna/clubhub/internal/app/store/pdfs"
	"github.com/cumuna/clubhub/internal/app/system/respond"
	"github.com/cumuna/clubhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleDelete removes the resource's file and record.
// DELETE /api/pdfs/{id}
//
// Ordering is record lookup → file unlink attempt → record delete. A failed
// unlink is logged and does not block the record delete: the record is what
// clients see, and leaking a file beats resurrecting a phantom entry. The
// resulting orphaned-byte window is accepted.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	res, ok := h.lookup(ctx, w, r)
	if !ok {
		return
	}

	if err := h.Blobs.Remove(res.FilePath); err != nil {
		h.Log.Warn("failed to delete resource file",
			zap.String("resource_id", res.ID.Hex()),
			zap.String("file_path", res.FilePath),
			zap.Error(err))
	}

	store := pdfstore.New(h.DB)
	deleted, err := store.Delete(ctx, res.ID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete resource record failed", err, "Failed to delete resource.")
		return
	}
	if deleted == 0 {
		// Lost a race with a concurrent delete.
		uierrors.RenderNotFound(w, "Resource not found or already deleted.")
		return
	}

	respond.Message(w, http.StatusOK, "Resource deleted successfully")
}
