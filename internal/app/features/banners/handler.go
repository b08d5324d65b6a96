// internal/app/features/banners/handler.go
//
// Package banners serves the homepage banner carousel. Banners carry a
// display order maintained by the store: new banners append at the end and
// deletes close the gap.
package banners

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	uierrors "github.com/cumuna/clubhub/internal/app/features/errors"
	bannerstore "github.com/cumuna/clubhub/internal/app/store/banners"
	"github.com/cumuna/clubhub/internal/app/system/inputval"
	"github.com/cumuna/clubhub/internal/app/system/respond"
	"github.com/cumuna/clubhub/internal/app/system/timeouts"
	"github.com/cumuna/clubhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the banner routes.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs a banner Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger, ErrLog: errLog}
}

type createBannerInput struct {
	ImageURL string `json:"imageUrl" validate:"required" label:"Image URL"`
	Title    string `json:"title" validate:"max=200" label:"Title"`
	Subtitle string `json:"subtitle" validate:"max=300" label:"Subtitle"`
}

// HandleList returns all banners in display order.
// GET /banners
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := bannerstore.New(h.DB)
	banners, err := store.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list banners failed", err, "Failed to fetch banners.")
		return
	}

	respond.Data(w, http.StatusOK, banners)
}

// HandleGet returns one banner by id.
// GET /banners/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, "Invalid ID format.")
		return
	}

	store := bannerstore.New(h.DB)
	b, err := store.GetByID(ctx, oid)
	if errors.Is(err, bannerstore.ErrNotFound) {
		uierrors.RenderNotFound(w, "Banner not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "get banner failed", err, "Failed to fetch banner.")
		return
	}

	respond.Data(w, http.StatusOK, b)
}

// HandleCreate appends a banner at the end of the display order.
// POST /banners
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input createBannerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode banner body failed", err, "Invalid JSON body.")
		return
	}

	if result := inputval.Validate(input); result.HasErrors() {
		uierrors.RenderBadRequest(w, result.First())
		return
	}
	if !urlutil.IsValidAbsHTTPURL(input.ImageURL) {
		uierrors.RenderBadRequest(w, "Image URL must be a valid http(s) URL.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := bannerstore.New(h.DB)
	b, err := store.Create(ctx, models.Banner{
		ImageURL: input.ImageURL,
		Title:    input.Title,
		Subtitle: input.Subtitle,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "insert banner failed", err, "Failed to add banner.")
		return
	}

	respond.Created(w, "Banner added successfully", b)
}

// HandleDelete removes a banner and closes the order gap.
// DELETE /banners/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, "Invalid ID format.")
		return
	}

	store := bannerstore.New(h.DB)
	err = store.Delete(ctx, oid)
	if errors.Is(err, bannerstore.ErrNotFound) {
		uierrors.RenderNotFound(w, "Banner not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete banner failed", err, "Failed to delete banner.")
		return
	}

	respond.Message(w, http.StatusOK, "Banner deleted successfully")
}
