package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dulpromax/dulpromax-b2b/internal/app"
	"github.com/dulpromax/dulpromax-b2b/internal/config"
	"github.com/dulpromax/dulpromax-b2b/pkg/publishers"
	"gopkg.in/yaml.v3"
)

const (
	categoryJSON = `{"id":"c1","name":"Snacks","slug":"snacks","is_active":true,"created_at":"2024-01-02T03:04:05Z","updated_at":"2024-01-02T03:04:05Z"}`
	productJSON  = `{"id":"p1","name":"Barra de avena","slug":"barra-avena","price_retail":2.5,"price_wholesale":1.8,"stock_quantity":40,"min_stock_alert":10,"min_order_quantity":1,"is_active":true,"is_featured":false,"created_at":"2024-01-02T03:04:05Z","updated_at":"2024-01-02T03:04:05Z"}`
)

type call struct {
	Method   string
	Path     string
	RawQuery string
	Body     string
}

// catalogServer is an in-memory stand-in for the catalog API.
type catalogServer struct {
	mu    sync.Mutex
	calls []call
	fail  int
}

func (s *catalogServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	s.calls = append(s.calls, call{Method: r.Method, Path: r.URL.Path, RawQuery: r.URL.RawQuery, Body: string(body)})
	fail := s.fail
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if fail != 0 {
		w.WriteHeader(fail)
		_, _ = io.WriteString(w, `{"detail":"boom"}`)
		return
	}

	switch {
	case r.URL.Path == "/health":
		_, _ = io.WriteString(w, `{"status":"healthy","service":"dulpromax-b2b"}`)
	case r.URL.Path == "/api/v1/categories/" && r.Method == http.MethodGet:
		_, _ = io.WriteString(w, "["+categoryJSON+"]")
	case strings.HasPrefix(r.URL.Path, "/api/v1/categories/"):
		_, _ = io.WriteString(w, categoryJSON)
	case r.URL.Path == "/api/v1/products/" && r.Method == http.MethodGet:
		_, _ = io.WriteString(w, `{"products":[`+productJSON+`],"total":1,"page":1,"per_page":100,"total_pages":1}`)
	case r.Method == http.MethodDelete:
		w.WriteHeader(http.StatusNoContent)
	default:
		_, _ = io.WriteString(w, productJSON)
	}
}

func (s *catalogServer) last(t *testing.T) call {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		t.Fatalf("no request recorded")
	}
	return s.calls[len(s.calls)-1]
}

// recordingPublisher captures emitted events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishers.Event
}

func (p *recordingPublisher) ID() string   { return "recorder" }
func (p *recordingPublisher) Type() string { return "recorder" }
func (p *recordingPublisher) Publish(_ context.Context, evt publishers.Event) error {
	p.mu.Lock()
	p.events = append(p.events, evt)
	p.mu.Unlock()
	return nil
}

type harness struct {
	srv    *catalogServer
	cfg    *config.Config
	events *recordingPublisher
	opts   []app.Option
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	srv := &catalogServer{}
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	dir := t.TempDir()
	pubFile := filepath.Join(dir, "publishers.yaml")
	if err := os.WriteFile(pubFile, []byte("publishers:\n  - id: recorder\n    type: recorder\n"), 0o644); err != nil {
		t.Fatalf("write publishers file: %v", err)
	}

	rec := &recordingPublisher{}
	reg := publishers.NewRegistry(map[string]publishers.Builder{
		"recorder": func(context.Context, publishers.PublisherConfig, publishers.Logger) (publishers.Publisher, error) {
			return rec, nil
		},
	})

	return &harness{
		srv: srv,
		cfg: &config.Config{
			AppName:             "test",
			APIBaseURL:          ts.URL,
			HTTPTimeout:         2 * time.Second,
			SnapshotStorageType: "bbolt",
			SnapshotPath:        filepath.Join(dir, "catalog.db"),
			PublishersFile:      pubFile,
		},
		events: rec,
		opts:   []app.Option{app.WithPublisherRegistry(reg)},
	}
}

func (h *harness) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(h.cfg, nil, h.opts...)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	err := Execute(context.Background(), cmd, args)
	return out.String(), err
}

func TestHealthPrintsJSON(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "", "health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if got["status"] != "healthy" {
		t.Fatalf("unexpected output %v", got)
	}
}

func TestCategoriesListActiveOnlyFlag(t *testing.T) {
	h := newHarness(t)

	if _, err := h.run(t, "", "categories", "list"); err != nil {
		t.Fatalf("categories list: %v", err)
	}
	if got := h.srv.last(t); got.RawQuery != "" {
		t.Fatalf("expected no query without flag, got %q", got.RawQuery)
	}

	if _, err := h.run(t, "", "categories", "list", "--active-only=false"); err != nil {
		t.Fatalf("categories list: %v", err)
	}
	if got := h.srv.last(t); got.Path != "/api/v1/categories/" || got.RawQuery != "active_only=false" {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestCategoriesCreateFromYAMLStdinEmitsEvent(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "name: Snacks\n", "categories", "create", "--file", "-", "-o", "yaml")
	if err != nil {
		t.Fatalf("categories create: %v", err)
	}

	got := h.srv.last(t)
	if got.Method != http.MethodPost || strings.TrimSpace(got.Body) != `{"name":"Snacks"}` {
		t.Fatalf("unexpected request %+v", got)
	}

	var printed map[string]any
	if err := yaml.Unmarshal([]byte(out), &printed); err != nil {
		t.Fatalf("decode yaml output: %v", err)
	}
	if printed["slug"] != "snacks" {
		t.Fatalf("unexpected yaml output %q", out)
	}

	if len(h.events.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(h.events.events))
	}
	evt := h.events.events[0]
	if evt.Resource != publishers.ResourceCategory || evt.Action != publishers.ActionCreated || evt.ResourceID != "c1" {
		t.Fatalf("unexpected event %#v", evt)
	}
}

func TestProductsCreateFromJSONFile(t *testing.T) {
	h := newHarness(t)
	payload := filepath.Join(t.TempDir(), "product.json")
	if err := os.WriteFile(payload, []byte(`{"name":"Barra de avena","slug":"barra-avena","price_retail":2.5,"price_wholesale":1.8}`), 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	if _, err := h.run(t, "", "products", "create", "-f", payload); err != nil {
		t.Fatalf("products create: %v", err)
	}
	got := h.srv.last(t)
	if got.Path != "/api/v1/products/" || !strings.Contains(got.Body, `"slug":"barra-avena"`) {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestProductsDeletePrintsResult(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "", "products", "delete", "42")
	if err != nil {
		t.Fatalf("products delete: %v", err)
	}
	if got := h.srv.last(t); got.Method != http.MethodDelete || got.Path != "/api/v1/products/42/" {
		t.Fatalf("unexpected request %+v", got)
	}
	if !strings.Contains(out, `"deleted": true`) {
		t.Fatalf("unexpected output %q", out)
	}
	if len(h.events.events) != 1 || h.events.events[0].Action != publishers.ActionDeleted {
		t.Fatalf("expected delete event, got %#v", h.events.events)
	}
}

func TestProductsDeleteFailureReturnsDomainError(t *testing.T) {
	h := newHarness(t)
	h.srv.fail = http.StatusInternalServerError

	_, err := h.run(t, "", "products", "delete", "42")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.HasPrefix(err.Error(), "Error al eliminar producto: ") {
		t.Fatalf("unexpected error %q", err.Error())
	}
	if len(h.events.events) != 0 {
		t.Fatalf("failed mutations must not emit events")
	}
}

func TestProductsListFlags(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "", "products", "list", "--page", "2", "--search", "avena", "--featured-only", "--min-price", "1.5")
	if err != nil {
		t.Fatalf("products list: %v", err)
	}
	want := "featured_only=true&min_price=1.5&page=2&search=avena"
	if got := h.srv.last(t); got.RawQuery != want {
		t.Fatalf("query = %q, want %q", got.RawQuery, want)
	}
}

func TestProductsStock(t *testing.T) {
	h := newHarness(t)

	if _, err := h.run(t, "", "products", "stock", "p1", "12"); err != nil {
		t.Fatalf("products stock: %v", err)
	}
	got := h.srv.last(t)
	if got.Method != http.MethodPatch || got.Path != "/api/v1/products/p1/stock/" || got.RawQuery != "new_stock=12" {
		t.Fatalf("unexpected request %+v", got)
	}

	if _, err := h.run(t, "", "products", "stock", "p1", "many"); err == nil {
		t.Fatalf("expected error for non-numeric stock")
	}
}

func TestSnapshotSaveAndShow(t *testing.T) {
	h := newHarness(t)

	if _, err := h.run(t, "", "snapshot", "show"); err == nil {
		t.Fatalf("expected error before any snapshot is saved")
	}

	if _, err := h.run(t, "", "snapshot", "save"); err != nil {
		t.Fatalf("snapshot save: %v", err)
	}

	out, err := h.run(t, "", "snapshot", "show")
	if err != nil {
		t.Fatalf("snapshot show: %v", err)
	}
	var snap struct {
		Categories []map[string]any `json:"categories"`
		Products   []map[string]any `json:"products"`
	}
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(snap.Categories) != 1 || len(snap.Products) != 1 {
		t.Fatalf("unexpected snapshot %s", out)
	}
}

func TestSnapshotRequiresStorage(t *testing.T) {
	h := newHarness(t)
	h.cfg.SnapshotStorageType = "none"

	if _, err := h.run(t, "", "snapshot", "save"); err == nil {
		t.Fatalf("expected error when storage is disabled")
	}
}

func TestBaseURLFlagOverridesConfig(t *testing.T) {
	h := newHarness(t)
	target := h.cfg.APIBaseURL
	h.cfg.APIBaseURL = "http://127.0.0.1:1"

	if _, err := h.run(t, "", "ping", "--base-url", target+"/"); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if got := h.srv.last(t); got.Path != "/ping" {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestRejectsUnknownOutputFormat(t *testing.T) {
	h := newHarness(t)

	if _, err := h.run(t, "", "health", "-o", "xml"); err == nil {
		t.Fatalf("expected error for xml output")
	}
}
