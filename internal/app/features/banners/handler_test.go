package banners

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/cumuna/clubhub/internal/app/features/errors"
	"github.com/cumuna/clubhub/internal/app/system/authz"
	"github.com/cumuna/clubhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	h := NewHandler(db, uierrors.NewErrorLogger(logger), logger)
	return Routes(h, authz.AllowAll{})
}

func createBanner(t *testing.T, router chi.Router, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	req := testutil.NewJSONRequest(t, http.MethodPost, "/", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateAssignsSequentialOrder(t *testing.T) {
	router := newTestRouter(t)

	for i := 0; i < 3; i++ {
		rec := createBanner(t, router, map[string]any{
			"imageUrl": "https://cdn.example.com/banner.jpg",
			"title":    "Welcome",
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("create status: got %d, want 201 (body %s)", rec.Code, rec.Body.String())
		}
		_, _, data := testutil.DecodeEnvelope(t, rec.Body)
		var created struct {
			Order int `json:"order"`
		}
		if err := json.Unmarshal(data, &created); err != nil {
			t.Fatalf("failed to decode created banner: %v", err)
		}
		if created.Order != i {
			t.Errorf("banner %d: order got %d, want %d", i, created.Order, i)
		}
	}
}

func TestCreateValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing imageUrl", map[string]any{"title": "no image"}},
		{"relative imageUrl", map[string]any{"imageUrl": "/local/banner.jpg"}},
		{"non-http scheme", map[string]any{"imageUrl": "ftp://example.com/banner.jpg"}},
	}
	for _, tc := range tests {
		rec := createBanner(t, router, tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status got %d, want 400", tc.name, rec.Code)
		}
	}
}

func TestDeleteClosesOrderGap(t *testing.T) {
	router := newTestRouter(t)

	var ids []string
	for i := 0; i < 3; i++ {
		rec := createBanner(t, router, map[string]any{
			"imageUrl": "https://cdn.example.com/banner.jpg",
		})
		_, _, data := testutil.DecodeEnvelope(t, rec.Body)
		var created struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(data, &created); err != nil {
			t.Fatalf("failed to decode created banner: %v", err)
		}
		ids = append(ids, created.ID)
	}

	req := httptest.NewRequest(http.MethodDelete, "/"+ids[0], nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status: got %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	_, _, data := testutil.DecodeEnvelope(t, rec.Body)
	var listed []struct {
		ID    string `json:"id"`
		Order int    `json:"order"`
	}
	if err := json.Unmarshal(data, &listed); err != nil {
		t.Fatalf("failed to decode banner list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("list returned %d banners, want 2", len(listed))
	}
	for i, b := range listed {
		if b.Order != i {
			t.Errorf("banner %d: order got %d, want %d", i, b.Order, i)
		}
	}
}

func TestDeleteMissingBanner(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/ffffffffffffffffffffffff", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}
