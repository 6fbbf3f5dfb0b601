package publishers

import (
	"context"
	"errors"
	"testing"
)

type stubPublisher struct {
	id    string
	typ   string
	err   error
	calls int
}

func (s *stubPublisher) ID() string   { return s.id }
func (s *stubPublisher) Type() string { return s.typ }
func (s *stubPublisher) Publish(context.Context, Event) error {
	s.calls++
	return s.err
}

func TestFanoutPublishAggregatesErrors(t *testing.T) {
	fanout := NewFanout([]Publisher{
		&stubPublisher{id: "ok", typ: "http"},
		&stubPublisher{id: "bad", typ: "http", err: errors.New("failed")},
		nil,
	}, nil)

	if fanout.Size() != 2 {
		t.Fatalf("expected nil publishers to be dropped, size=%d", fanout.Size())
	}
	count, err := fanout.Publish(context.Background(), Event{})
	if count != 1 {
		t.Fatalf("expected 1 success, got %d", count)
	}
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
}

func TestNilFanoutIsNoop(t *testing.T) {
	var f *Fanout
	if n, err := f.Publish(context.Background(), Event{}); n != 0 || err != nil {
		t.Fatalf("expected noop, got n=%d err=%v", n, err)
	}
}

func TestBuildAllWithDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	pubs, err := BuildAll(context.Background(), reg, []PublisherConfig{
		{ID: "http", Type: TypeHTTP, HTTP: &HTTPPublisherConfig{URL: "https://example.com"}},
	}, nil)
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}
	if len(pubs) != 1 {
		t.Fatalf("expected 1 publisher, got %d", len(pubs))
	}
}

func TestBuildAllAppliesResourceFilter(t *testing.T) {
	stub := &stubPublisher{id: "products-only", typ: "stub"}
	reg := NewRegistry(map[string]Builder{
		"stub": func(context.Context, PublisherConfig, Logger) (Publisher, error) { return stub, nil },
	})

	pubs, err := BuildAll(context.Background(), reg, []PublisherConfig{
		{ID: "products-only", Type: "stub", Resources: []string{ResourceProduct}},
	}, nil)
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}

	fanout := NewFanout(pubs, nil)
	if _, err := fanout.Publish(context.Background(), NewEvent(ResourceCategory, ActionCreated, "c1", nil)); err != nil {
		t.Fatalf("Publish category: %v", err)
	}
	if _, err := fanout.Publish(context.Background(), NewEvent(ResourceProduct, ActionCreated, "p1", nil)); err != nil {
		t.Fatalf("Publish product: %v", err)
	}
	if stub.calls != 1 {
		t.Fatalf("expected only the product event to be delivered, got %d calls", stub.calls)
	}
}
