package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Theepak90/torrobankdiscovvery-sub000/src/internal/domain"
)

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	app := NewApp(domain.Config{Version: "test"})
	rr := httptest.NewRecorder()
	app.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestHealth(t *testing.T) {
	rr := get(t, "/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var status domain.HealthStatus
	if err := json.NewDecoder(rr.Body).Decode(&status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.Status != "ok" || status.Version != "test" {
		t.Fatalf("unexpected payload: %+v", status)
	}
}

func TestDocPages(t *testing.T) {
	for _, path := range []string{"/", "/docs", "/redoc"} {
		rr := get(t, path)
		if rr.Code != http.StatusOK {
			t.Errorf("%s: status = %d", path, rr.Code)
		}
		if ct := rr.Header().Get("Content-Type"); ct != "text/html" {
			t.Errorf("%s: content-type = %q", path, ct)
		}
	}
}

func TestUnknownPathIs404(t *testing.T) {
	if rr := get(t, "/nope"); rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
}
