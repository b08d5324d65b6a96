package pdfs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	uierrors "github.com/cumuna/clubhub/internal/app/features/errors"
	pdfstore "github.com/cumuna/clubhub/internal/app/store/pdfs"
	"github.com/cumuna/clubhub/internal/app/system/timeouts"
	"github.com/cumuna/clubhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleView streams the PDF inline with the record's MIME type.
// GET /api/pdfs/{id}/view
func (h *Handler) HandleView(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, false)
}

// HandleDownload streams the PDF as an attachment, suggesting the original
// filename as the save name.
// GET /api/pdfs/{id}/download
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, true)
}

// serveFile resolves the record, opens the stored file, and streams it. A
// record whose file is missing on disk is an inconsistency; it is surfaced
// as a server error, not masked.
func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, asAttachment bool) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, ok := h.lookup(ctx, w, r)
	if !ok {
		return
	}

	f, err := h.Blobs.Open(res.FilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			h.Log.Error("stored file missing for resource record",
				zap.String("resource_id", res.ID.Hex()),
				zap.String("file_path", res.FilePath))
			uierrors.RenderServerError(w, "Stored file is missing.")
			return
		}
		h.ErrLog.LogServerError(w, r, "open stored file failed", err, "Failed to read stored file.")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", res.ContentType)
	if asAttachment {
		filename := res.FileName
		if filename == "" {
			filename = "download.pdf"
		}
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}

	http.ServeContent(w, r, "", res.UploadedAt, f)
}

// lookup parses the id parameter and fetches the record, writing the error
// response itself when either step fails.
func (h *Handler) lookup(ctx context.Context, w http.ResponseWriter, r *http.Request) (models.Resource, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, "Invalid resource ID format.")
		return models.Resource{}, false
	}

	store := pdfstore.New(h.DB)
	res, err := store.GetByID(ctx, oid)
	if errors.Is(err, pdfstore.ErrNotFound) {
		uierrors.RenderNotFound(w, "Resource not found.")
		return models.Resource{}, false
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "fetch resource record failed", err, "Failed to fetch resource.")
		return models.Resource{}, false
	}
	return res, true
}
