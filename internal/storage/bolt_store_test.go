package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/dulpromax/dulpromax-b2b/internal/domain"
)

func TestBoltStoreReplacesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")

	storeRaw, err := openBolt(path, Options{OpenTimeout: time.Second})
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	store := storeRaw.(*boltStore)
	defer store.Close()

	fixed := time.Unix(1700000000, 0)
	store.now = func() time.Time { return fixed }

	if ts, err := store.SavedAt(); err != nil || !ts.IsZero() {
		t.Fatalf("expected zero SavedAt before first save, got %v err=%v", ts, err)
	}

	if err := store.SaveCategories([]domain.Category{{ID: "b", Name: "Bebidas"}, {ID: "a", Name: "Snacks"}}); err != nil {
		t.Fatalf("SaveCategories: %v", err)
	}
	cats, err := store.Categories()
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 2 || cats[0].ID != "a" || cats[1].ID != "b" {
		t.Fatalf("unexpected categories %#v", cats)
	}

	if err := store.SaveCategories([]domain.Category{{ID: "c", Name: "Cereales"}}); err != nil {
		t.Fatalf("SaveCategories again: %v", err)
	}
	cats, err = store.Categories()
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 1 || cats[0].Name != "Cereales" {
		t.Fatalf("expected replaced categories, got %#v", cats)
	}

	ts, err := store.SavedAt()
	if err != nil || !ts.Equal(fixed) {
		t.Fatalf("unexpected SavedAt %v err=%v", ts, err)
	}
}

func TestBoltStoreProducts(t *testing.T) {
	storeRaw, err := openBolt(filepath.Join(t.TempDir(), "catalog.db"), Options{})
	if err != nil {
		t.Fatalf("openBolt: %v", err)
	}
	defer storeRaw.Close()

	if err := storeRaw.SaveProducts([]domain.Product{{ID: "p1", Name: "Barra", StockQuantity: 5, Category: &domain.CategoryRef{ID: "c1"}}}); err != nil {
		t.Fatalf("SaveProducts: %v", err)
	}
	products, err := storeRaw.Products()
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 1 || products[0].StockQuantity != 5 || products[0].Category.ID != "c1" {
		t.Fatalf("unexpected products %#v", products)
	}

	if err := storeRaw.SaveProducts([]domain.Product{{Name: "no id"}}); err == nil {
		t.Fatalf("expected error for product without id")
	}
}

func TestNewStoreSupportsNoop(t *testing.T) {
	store, err := NewStore("none", "", Options{})
	if err != nil {
		t.Fatalf("NewStore none: %v", err)
	}
	if err := store.SaveCategories([]domain.Category{{ID: "x"}}); err != nil {
		t.Fatalf("noop store SaveCategories: %v", err)
	}
	if cats, _ := store.Categories(); cats != nil {
		t.Fatalf("noop store must not return data")
	}
}

func TestNewStoreRejectsUnknownType(t *testing.T) {
	if _, err := NewStore("redis", "x", Options{}); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
	if _, err := NewStore("bbolt", " ", Options{}); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
