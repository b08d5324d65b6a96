package pdfs

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/cumuna/clubhub/internal/app/features/errors"
	"github.com/cumuna/clubhub/internal/app/system/authz"
	"github.com/cumuna/clubhub/internal/app/system/blobstore"
	"github.com/cumuna/clubhub/internal/domain/models"
	"github.com/cumuna/clubhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// newTestRouter builds the catalog router against a fresh test database and a
// temp-dir blob area. Tests that never reach Mongo still get a router; the
// ones that do are skipped when no database is available.
func newTestRouter(t *testing.T, cfg Config) chi.Router {
	t.Helper()

	db := testutil.SetupTestDB(t)
	blobs := blobstore.New(t.TempDir())
	logger := zap.NewNop()
	h := NewHandler(db, blobs, cfg, uierrors.NewErrorLogger(logger), logger)
	return Routes(h, authz.AllowAll{})
}

func uploadResource(t *testing.T, router chi.Router, body []byte, contentType, category string) *httptest.ResponseRecorder {
	t.Helper()

	req := testutil.NewMultipartRequest(t, "/", "pdf", "guide.pdf", contentType, body,
		map[string]string{"category": category})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUploadListViewDownloadDeleteLifecycle(t *testing.T) {
	router := newTestRouter(t, Config{})

	// The catalog trusts the declared MIME type; the bytes themselves are
	// not inspected.
	fileBody := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	rec := uploadResource(t, router, fileBody, "application/pdf", models.CategoryRulesOfProcedure)
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload status: got %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	success, msg, data := testutil.DecodeEnvelope(t, rec.Body)
	if !success || msg != "Resource uploaded successfully" {
		t.Errorf("upload envelope: success=%v message=%q", success, msg)
	}

	var created struct {
		ID          string `json:"id"`
		FileName    string `json:"filename"`
		Size        int64  `json:"size"`
		ContentType string `json:"contentType"`
		Category    string `json:"category"`
	}
	if err := json.Unmarshal(data, &created); err != nil {
		t.Fatalf("failed to decode created resource: %v", err)
	}
	if created.FileName != "guide.pdf" || created.Size != int64(len(fileBody)) {
		t.Errorf("created resource mismatch: %+v", created)
	}

	// List shows the record and never the stored path.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status: got %d, want 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "file_path") {
		t.Error("list response leaks the stored path")
	}
	_, _, data = testutil.DecodeEnvelope(t, rec.Body)
	var listed []json.RawMessage
	if err := json.Unmarshal(data, &listed); err != nil {
		t.Fatalf("failed to decode list data: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("list returned %d resources, want 1", len(listed))
	}

	// View streams the original bytes inline.
	req = httptest.NewRequest(http.MethodGet, "/"+created.ID+"/view", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("view status: got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("view Content-Type: got %q", ct)
	}
	got, _ := io.ReadAll(rec.Body)
	if !bytes.Equal(got, fileBody) {
		t.Errorf("view body: got %v, want %v", got, fileBody)
	}

	// Download adds the attachment disposition with the original name.
	req = httptest.NewRequest(http.MethodGet, "/"+created.ID+"/download", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("download status: got %d, want 200", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, `attachment`) || !strings.Contains(cd, "guide.pdf") {
		t.Errorf("download Content-Disposition: got %q", cd)
	}

	// Delete removes record and file.
	req = httptest.NewRequest(http.MethodDelete, "/"+created.ID, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status: got %d, want 200", rec.Code)
	}

	// The record is gone from both the list and the fetch path.
	req = httptest.NewRequest(http.MethodGet, "/"+created.ID+"/view", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("view after delete: got %d, want 404", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	_, _, data = testutil.DecodeEnvelope(t, rec.Body)
	listed = nil
	if err := json.Unmarshal(data, &listed); err != nil {
		t.Fatalf("failed to decode list data: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("list after delete returned %d resources, want 0", len(listed))
	}
}

func TestUploadRejectsWrongContentType(t *testing.T) {
	router := newTestRouter(t, Config{})

	rec := uploadResource(t, router, []byte("plain text"), "text/plain", models.CategoryOther)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
	success, msg, _ := testutil.DecodeEnvelope(t, rec.Body)
	if success || msg != "Only PDF files are accepted." {
		t.Errorf("envelope: success=%v message=%q", success, msg)
	}
}

func TestUploadRejectsUnknownCategory(t *testing.T) {
	router := newTestRouter(t, Config{})

	rec := uploadResource(t, router, []byte("%PDF-"), "application/pdf", "Memes")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
	_, msg, _ := testutil.DecodeEnvelope(t, rec.Body)
	if msg != "Invalid resource category." {
		t.Errorf("message: got %q", msg)
	}
}

func TestUploadRequiresFile(t *testing.T) {
	router := newTestRouter(t, Config{})

	body := strings.NewReader("category=" + models.CategoryOther)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	router := newTestRouter(t, Config{MaxUploadBytes: 1024})

	rec := uploadResource(t, router, bytes.Repeat([]byte("a"), 4096), "application/pdf", models.CategoryOther)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
	_, msg, _ := testutil.DecodeEnvelope(t, rec.Body)
	if msg != "File exceeds the upload size limit." {
		t.Errorf("message: got %q", msg)
	}
}

func TestListIgnoresUnknownCategoryFilter(t *testing.T) {
	router := newTestRouter(t, Config{})

	for _, cat := range []string{models.CategoryOther, models.CategoryPublicSpeaking} {
		rec := uploadResource(t, router, []byte("%PDF-"), "application/pdf", cat)
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed upload failed: %d %s", rec.Code, rec.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/?category=NotARealCategory", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	_, _, data := testutil.DecodeEnvelope(t, rec.Body)
	var listed []json.RawMessage
	if err := json.Unmarshal(data, &listed); err != nil {
		t.Fatalf("failed to decode list data: %v", err)
	}
	if len(listed) != 2 {
		t.Errorf("unknown filter should return everything: got %d, want 2", len(listed))
	}
}

func TestListFiltersByCategory(t *testing.T) {
	router := newTestRouter(t, Config{})

	for _, cat := range []string{models.CategoryOther, models.CategoryOther, models.CategoryPublicSpeaking} {
		rec := uploadResource(t, router, []byte("%PDF-"), "application/pdf", cat)
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed upload failed: %d %s", rec.Code, rec.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/?category="+strings.ReplaceAll(models.CategoryPublicSpeaking, " ", "%20"), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	_, _, data := testutil.DecodeEnvelope(t, rec.Body)
	var listed []struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal(data, &listed); err != nil {
		t.Fatalf("failed to decode list data: %v", err)
	}
	if len(listed) != 1 || listed[0].Category != models.CategoryPublicSpeaking {
		t.Errorf("filtered list: %+v", listed)
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	// Static response; no database needed, but the handler still wants one.
	router := newTestRouter(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	_, _, data := testutil.DecodeEnvelope(t, rec.Body)
	var cats []string
	if err := json.Unmarshal(data, &cats); err != nil {
		t.Fatalf("failed to decode categories: %v", err)
	}
	if len(cats) != len(models.PDFCategories) {
		t.Errorf("categories: got %d, want %d", len(cats), len(models.PDFCategories))
	}
}

func TestFetchInvalidAndMissingID(t *testing.T) {
	router := newTestRouter(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/not-a-hex-id/view", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid id: got %d, want 400", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/ffffffffffffffffffffffff/view", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing id: got %d, want 404", rec.Code)
	}
}

func TestDeleteMissingResource(t *testing.T) {
	router := newTestRouter(t, Config{})

	req := httptest.NewRequest(http.MethodDelete, "/ffffffffffffffffffffffff", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}
