package ports

import (
	"context"

	"github.com/authbase/person-api/internal/core/domain"
)

// AuditRepository persists auth events to the audit trail.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuthEvent) error
}

// AuditService processes a single auth event.
type AuditService interface {
	Process(ctx context.Context, event domain.AuthEvent) error
}

// AuditSink accepts auth events for asynchronous recording. Implementations
// must not block the caller beyond a bounded buffer.
type AuditSink interface {
	Record(event domain.AuthEvent)
}
