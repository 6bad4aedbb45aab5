package domain

import "time"

// AuditEntry records a single admin mutation for the audit trail.
type AuditEntry struct {
	Actor      string    `json:"actor" bson:"actor"`
	Action     string    `json:"action" bson:"action"`
	Resource   string    `json:"resource" bson:"resource"`
	ResourceID string    `json:"resource_id,omitempty" bson:"resource_id,omitempty"`
	At         time.Time `json:"at" bson:"at"`
}
