package skyfinder

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/king-open/SkyFinder/internal/pkg/pkgconfig"
	"github.com/king-open/SkyFinder/internal/pkg/pkgrouter"
	"github.com/king-open/SkyFinder/internal/pkg/pkguid"
)

func TestNew_DefaultCatalog(t *testing.T) {
	router := pkgrouter.NewRouter(pkguid.NewUUID())
	cfg := pkgconfig.NewMap(map[string]any{"modules.skyfinder.session.ttl_seconds": 60})

	if err := New(Dependency{Config: cfg, Router: router}); err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/flights?origin=PEK&destination=SHA", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"CA1501"`) {
		t.Errorf("GET /flights = %d %s", rec.Code, rec.Body.String())
	}
}

func TestLoadCatalog_Overrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	body := `{"flights":[{"id":"X1","origin":"AAA","destination":"BBB","departure_time":"08:00 AM","transfers":"direct","price":"€90"}],
		"airports":[{"code":"AAA","city":"Alpha","country":"Nowhere"}]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := pkgconfig.NewMap(map[string]any{
		"modules.skyfinder.catalog.path": path,
		"modules.skyfinder.currency":     "€",
		"modules.skyfinder.home_country": "Nowhere",
	})
	c, err := loadCatalog(cfg)
	if err != nil {
		t.Fatalf("loadCatalog() error = %v", err)
	}
	if len(c.Flights) != 1 || c.Currency != "€" || c.HomeCountry != "Nowhere" {
		t.Errorf("catalog = %+v", c)
	}
}

func TestLoadCatalog_Errors(t *testing.T) {
	if _, err := loadCatalog(pkgconfig.NewMap(map[string]any{"modules.skyfinder.catalog.path": "missing.json"})); err == nil {
		t.Error("missing file accepted")
	}

	path := filepath.Join(t.TempDir(), "dup.json")
	body := `{"flights":[{"id":"X1","origin":"AAA","destination":"BBB"},{"id":"X1","origin":"AAA","destination":"CCC"}]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadCatalog(pkgconfig.NewMap(map[string]any{"modules.skyfinder.catalog.path": path})); err == nil {
		t.Error("duplicate ids accepted")
	}
}
