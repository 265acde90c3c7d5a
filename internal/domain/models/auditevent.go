// internal/domain/models/auditevent.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditEvent is a best-effort record of an admin action.
type AuditEvent struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Actor    string `bson:"actor" json:"actor"` // account email, or "system"
	Action   string `bson:"action" json:"action"`
	Entity   string `bson:"entity" json:"entity"`
	EntityID string `bson:"entity_id,omitempty" json:"entityId,omitempty"`
	Detail   string `bson:"detail,omitempty" json:"detail,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
