package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) Result {
	t.Helper()
	var res Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	return res
}

func TestNotFoundHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)

	NotFoundHandler()(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	res := decodeResult(t, rec)
	if res.Success {
		t.Error("expected success false")
	}
	if res.Message != "Resource not found" {
		t.Errorf("unexpected message: %s", res.Message)
	}
}

func TestMethodNotAllowedSetsAllowHeader(t *testing.T) {
	router := chi.NewRouter()
	router.MethodNotAllowed(MethodNotAllowedHandler())
	router.Get("/v1/contacts", func(w http.ResponseWriter, r *http.Request) {})
	router.Post("/v1/contacts", func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/contacts", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	allow := rec.Header().Get("Allow")
	if allow == "" {
		t.Fatal("expected Allow header")
	}
	res := decodeResult(t, rec)
	if res.Success || res.Message != "Method not allowed" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestRecovererConvertsPanic(t *testing.T) {
	h := Recoverer()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	res := decodeResult(t, rec)
	if res.Success || res.Message != "Internal server error" {
		t.Errorf("unexpected result: %+v", res)
	}
}
