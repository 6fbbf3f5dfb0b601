package apiclient

import (
	"encoding/json"
	"fmt"
	"strings"
)

const maxErrorSnippet = 512

// TransportError reports a request that never produced an HTTP response
// (unreachable host, DNS failure, timeout).
type TransportError struct {
	Method string
	URL    string
	Cause  error
}

// Error returns the message of the underlying failure.
func (e *TransportError) Error() string {
	if e.Cause == nil {
		return "transport failure"
	}
	return e.Cause.Error()
}

func (e *TransportError) Unwrap() error { return e.Cause }

// HTTPStatusError reports a completed request answered with a non-2xx status.
type HTTPStatusError struct {
	StatusCode int
	// Data holds the body's "data" field, falling back to FastAPI's "detail"
	// field and then to a raw body snippet. Nil when the body was empty.
	Data json.RawMessage
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// Detail returns Data as text when the server sent a plain string.
func (e *HTTPStatusError) Detail() string {
	if len(e.Data) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(e.Data, &s); err == nil {
		return s
	}
	return string(e.Data)
}

func newHTTPStatusError(status int, body []byte) *HTTPStatusError {
	e := &HTTPStatusError{StatusCode: status}
	if len(body) == 0 {
		return e
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		switch {
		case len(envelope.Data) > 0 && string(envelope.Data) != "null":
			e.Data = envelope.Data
			return e
		case len(envelope.Detail) > 0 && string(envelope.Detail) != "null":
			e.Data = envelope.Detail
			return e
		}
	}

	snippet := strings.TrimSpace(string(body))
	if len(snippet) > maxErrorSnippet {
		snippet = snippet[:maxErrorSnippet]
	}
	if raw, err := json.Marshal(snippet); err == nil {
		e.Data = raw
	}
	return e
}

// DomainError scopes a failure to one resource operation. Its message follows
// the "Error <operation>: <cause>" template.
type DomainError struct {
	Op  string
	Err error
}

func (e *DomainError) Error() string {
	cause := "<nil>"
	if e.Err != nil {
		cause = e.Err.Error()
	}
	return "Error " + e.Op + ": " + cause
}

func (e *DomainError) Unwrap() error { return e.Err }

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DomainError{Op: op, Err: err}
}

// Operation names used in DomainError messages.
const (
	OpConnection     = "de conexión"
	OpListCategories = "al obtener categorías"
	OpGetCategory    = "al obtener categoría"
	OpCreateCategory = "al crear categoría"
	OpUpdateCategory = "al actualizar categoría"
	OpDeleteCategory = "al eliminar categoría"
	OpListProducts   = "al obtener productos"
	OpGetProduct     = "al obtener producto"
	OpCreateProduct  = "al crear producto"
	OpUpdateProduct  = "al actualizar producto"
	OpDeleteProduct  = "al eliminar producto"
	OpUpdateStock    = "al actualizar stock"
)
