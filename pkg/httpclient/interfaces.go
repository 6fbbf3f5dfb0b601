package httpclient

import (
	"context"
	"net/url"
)

// Request describes a single outbound call.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Query   url.Values
	// Body is passed to the transport unmodified; structs and maps are JSON encoded.
	Body any
}

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
// A non-nil error means no HTTP response was obtained.
type Client interface {
	Do(ctx context.Context, req Request) (Response, error)
}
