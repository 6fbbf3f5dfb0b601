package publishers

import (
	"time"

	"github.com/google/uuid"
)

// Catalog resources and actions carried by events.
const (
	ResourceCategory = "category"
	ResourceProduct  = "product"

	ActionCreated      = "created"
	ActionUpdated      = "updated"
	ActionDeleted      = "deleted"
	ActionStockUpdated = "stock_updated"
)

// Event represents a catalog change published downstream.
type Event struct {
	EventID    string    `json:"event_id"`
	Resource   string    `json:"resource"`
	Action     string    `json:"action"`
	ResourceID string    `json:"resource_id"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent constructs an Event for a change applied through the API.
func NewEvent(resource, action, resourceID string, payload any) Event {
	return Event{
		EventID:    uuid.NewString(),
		Resource:   resource,
		Action:     action,
		ResourceID: resourceID,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}
