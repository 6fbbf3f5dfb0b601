package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dulpromax/dulpromax-b2b/internal/domain"
	bolt "go.etcd.io/bbolt"
)

const (
	categoryBucket = "categories"
	productBucket  = "products"
	metaBucket     = "meta"
	savedAtKey     = "saved_at"
	timeValueBytes = 8
)

// boltStore implements a Store backed by BoltDB.
type boltStore struct {
	db  *bolt.DB
	now func() time.Time
}

// openBolt initializes a BoltDB-backed Store.
func openBolt(path string, opts Options) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: opts.OpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{categoryBucket, productBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init buckets: %w", err)
	}

	return &boltStore{db: db, now: time.Now}, nil
}

// Close closes the BoltDB store.
func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// SaveCategories replaces the stored categories.
func (b *boltStore) SaveCategories(cats []domain.Category) error {
	entries := make(map[string]any, len(cats))
	for _, c := range cats {
		entries[c.ID] = c
	}
	return b.replace(categoryBucket, entries)
}

// SaveProducts replaces the stored products.
func (b *boltStore) SaveProducts(products []domain.Product) error {
	entries := make(map[string]any, len(products))
	for _, p := range products {
		entries[p.ID] = p
	}
	return b.replace(productBucket, entries)
}

// Categories returns the stored categories ordered by id.
func (b *boltStore) Categories() ([]domain.Category, error) {
	var out []domain.Category
	err := b.each(categoryBucket, func(v []byte) error {
		var c domain.Category
		if err := json.Unmarshal(v, &c); err != nil {
			return err
		}
		out = append(out, c)
		return nil
	})
	return out, err
}

// Products returns the stored products ordered by id.
func (b *boltStore) Products() ([]domain.Product, error) {
	var out []domain.Product
	err := b.each(productBucket, func(v []byte) error {
		var p domain.Product
		if err := json.Unmarshal(v, &p); err != nil {
			return err
		}
		out = append(out, p)
		return nil
	})
	return out, err
}

// SavedAt returns the time of the last successful save.
func (b *boltStore) SavedAt() (time.Time, error) {
	if b == nil || b.db == nil {
		return time.Time{}, nil
	}

	var ts time.Time
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(metaBucket))
		if bucket == nil {
			return fmt.Errorf("meta bucket missing")
		}
		if t, ok := decodeTime(bucket.Get([]byte(savedAtKey))); ok {
			ts = t
		}
		return nil
	})
	return ts, err
}

// replace drops and recreates bucket with entries in a single transaction.
func (b *boltStore) replace(name string, entries map[string]any) error {
	if b == nil || b.db == nil {
		return nil
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(name)); err != nil && err != bolt.ErrBucketNotFound {
			return fmt.Errorf("reset %s bucket: %w", name, err)
		}
		bucket, err := tx.CreateBucket([]byte(name))
		if err != nil {
			return fmt.Errorf("create %s bucket: %w", name, err)
		}
		for id, v := range entries {
			if id == "" {
				return fmt.Errorf("%s entry without id", name)
			}
			raw, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("encode %s %q: %w", name, id, err)
			}
			if err := bucket.Put([]byte(id), raw); err != nil {
				return err
			}
		}

		meta := tx.Bucket([]byte(metaBucket))
		if meta == nil {
			return fmt.Errorf("meta bucket missing")
		}
		return meta.Put([]byte(savedAtKey), encodeTime(b.now()))
	})
}

func (b *boltStore) each(name string, fn func(v []byte) error) error {
	if b == nil || b.db == nil {
		return nil
	}

	return b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(name))
		if bucket == nil {
			return fmt.Errorf("%s bucket missing", name)
		}
		return bucket.ForEach(func(k, v []byte) error {
			if err := fn(v); err != nil {
				return fmt.Errorf("decode %s %q: %w", name, k, err)
			}
			return nil
		})
	})
}

func encodeTime(t time.Time) []byte {
	buf := make([]byte, timeValueBytes)
	binary.BigEndian.PutUint64(buf, uint64(t.Unix()))
	return buf
}

// decodeTime decodes a unix timestamp stored by encodeTime.
func decodeTime(value []byte) (time.Time, bool) {
	if len(value) != timeValueBytes {
		return time.Time{}, false
	}
	unix := int64(binary.BigEndian.Uint64(value))
	if unix <= 0 {
		return time.Time{}, false
	}
	return time.Unix(unix, 0), true
}
