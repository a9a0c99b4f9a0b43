package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/msomdec/course-api/internal/handler"
)

func TestHandleHome(t *testing.T) {
	auth, courses, db := newTestServices(t)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, courses, db)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Welcome to the Course API!" {
		t.Fatalf("unexpected message %q", body["message"])
	}
}

func TestHandleNotFound(t *testing.T) {
	auth, courses, db := newTestServices(t)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, courses, db)

	for _, path := range []string{"/nonexistent", "/course/1", "/courses/1/extra"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, w.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("%s: decode body: %v", path, err)
		}
		if body["message"] != "Route Not Found" {
			t.Fatalf("%s: unexpected message %q", path, body["message"])
		}
	}
}
