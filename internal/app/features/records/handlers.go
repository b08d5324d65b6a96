package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	uierrors "github.com/cumuna/clubhub/internal/app/features/errors"
	recordstore "github.com/cumuna/clubhub/internal/app/store/records"
	"github.com/cumuna/clubhub/internal/app/system/htmlsanitize"
	"github.com/cumuna/clubhub/internal/app/system/respond"
	"github.com/cumuna/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleList returns all records for the entity, newest-first.
// GET /{entity}
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := recordstore.New(h.DB, h.Entity.Collection)
	docs, err := store.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list "+h.Entity.Collection+" failed", err,
			fmt.Sprintf("Failed to fetch %ss.", h.Entity.Name))
		return
	}

	respond.Data(w, http.StatusOK, docs)
}

// HandleGet returns one record by id.
// GET /{entity}/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, "Invalid ID format.")
		return
	}

	store := recordstore.New(h.DB, h.Entity.Collection)
	doc, err := store.GetByID(ctx, oid)
	if errors.Is(err, recordstore.ErrNotFound) {
		uierrors.RenderNotFound(w, upperFirst(h.Entity.Name)+" not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "get "+h.Entity.Collection+" failed", err,
			fmt.Sprintf("Failed to fetch %s.", h.Entity.Name))
		return
	}

	respond.Data(w, http.StatusOK, doc)
}

// HandleCreate validates the entity's required fields and inserts the
// document as-is otherwise: these collections are schemaless by design and
// the frontend owns the field set.
// POST /{entity}
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var doc bson.M
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode "+h.Entity.Collection+" body failed", err, "Invalid JSON body.")
		return
	}

	if msg := h.validate(doc); msg != "" {
		uierrors.RenderBadRequest(w, msg)
		return
	}

	for _, f := range h.Entity.HTMLFields {
		if s, ok := doc[f].(string); ok {
			doc[f] = htmlsanitize.Sanitize(s)
		}
	}
	for _, f := range h.Entity.IntFields {
		doc[f] = coerceInt(doc[f])
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := recordstore.New(h.DB, h.Entity.Collection)
	inserted, err := store.Insert(ctx, doc)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "insert "+h.Entity.Collection+" failed", err,
			fmt.Sprintf("Failed to add %s.", h.Entity.Name))
		return
	}

	respond.Created(w, upperFirst(h.Entity.Name)+" added successfully", inserted)
}

// HandleDelete removes one record by id.
// DELETE /{entity}/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, "Invalid ID format.")
		return
	}

	store := recordstore.New(h.DB, h.Entity.Collection)
	deleted, err := store.Delete(ctx, oid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete "+h.Entity.Collection+" failed", err,
			fmt.Sprintf("Failed to delete %s.", h.Entity.Name))
		return
	}
	if deleted == 0 {
		uierrors.RenderNotFound(w, upperFirst(h.Entity.Name)+" not found.")
		return
	}

	respond.Message(w, http.StatusOK, upperFirst(h.Entity.Name)+" deleted successfully")
}

// validate enforces the entity's create rules and returns a client-facing
// message, or "" when the document passes.
func (h *Handler) validate(doc bson.M) string {
	for _, f := range h.Entity.Required {
		v, ok := doc[f]
		if !ok || v == nil {
			return missingFieldsMessage(h.Entity.Required)
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			return missingFieldsMessage(h.Entity.Required)
		}
	}
	for _, f := range h.Entity.URLFields {
		if s, ok := doc[f].(string); ok && s != "" && !urlutil.IsValidAbsHTTPURL(s) {
			return fmt.Sprintf("%s must be a valid http(s) URL.", f)
		}
	}
	return ""
}

func missingFieldsMessage(required []string) string {
	return fmt.Sprintf("Missing required fields (%s)", strings.Join(required, ", "))
}

// coerceInt mirrors the legacy Number(x) || 0 handling: clients send these
// fields as numbers or numeric strings, and anything unparseable becomes 0.
func coerceInt(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return int64(f)
		}
		return 0
	default:
		return 0
	}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
