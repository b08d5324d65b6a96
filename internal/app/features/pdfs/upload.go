package pdfs

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/cumuna/clubhub/internal/app/features/errors"
	pdfstore "github.com/cumuna/clubhub/internal/app/store/pdfs"
	"github.com/cumuna/clubhub/internal/app/system/respond"
	"github.com/cumuna/clubhub/internal/app/system/timeouts"
	"github.com/cumuna/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleUpload accepts a multipart upload (field "pdf" plus "category"),
// persists the bytes to the blob area, then inserts the resource record.
//
// Validation happens before any I/O: the file must be present, the declared
// MIME type must be application/pdf, and the category must belong to the
// closed set. The size ceiling is enforced by MaxBytesReader, so an oversize
// body is cut off while the form is still being parsed: no file, no record.
//
// The file is persisted first and the record inserted second. If the insert
// fails, the file stays on disk; there is no rollback, only a log line
// naming the orphan.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			uierrors.RenderBadRequest(w, "File exceeds the upload size limit.")
			return
		}
		h.ErrLog.LogBadRequest(w, r, "parse multipart form failed", err, "Invalid form data.")
		return
	}

	file, header, err := r.FormFile("pdf")
	if err != nil {
		uierrors.RenderBadRequest(w, "PDF file is required.")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != allowedContentType {
		uierrors.RenderBadRequest(w, "Only PDF files are accepted.")
		return
	}

	category := strings.TrimSpace(r.FormValue("category"))
	if !models.IsValidPDFCategory(category, h.Cfg.Categories) {
		uierrors.RenderBadRequest(w, "Invalid resource category.")
		return
	}

	// File first, record second.
	path, size, err := h.Blobs.Save(header.Filename, file)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "persist uploaded file failed", err, "Failed to store uploaded file.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	store := pdfstore.New(h.DB)
	res, err := store.Insert(ctx, models.Resource{
		FileName:    header.Filename,
		FilePath:    path,
		Size:        size,
		ContentType: contentType,
		Category:    category,
	})
	if err != nil {
		// The written file is now orphaned; accepted inconsistency window.
		h.Log.Warn("resource record insert failed, file orphaned on disk",
			zap.String("file_path", path),
			zap.Error(err))
		h.ErrLog.LogServerError(w, r, "insert resource record failed", err, "Failed to save resource.")
		return
	}

	respond.Created(w, "Resource uploaded successfully", res)
}
