package ports

import (
	"context"

	"github.com/amanj01/catalog-admin/internal/core/domain"
)

// AuditRepository persists audit entries to the audit_events collection.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}
