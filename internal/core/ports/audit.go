package ports

import (
	"context"

	"github.com/mercatto/commerce-api/internal/core/domain"
)

// AuditSink accepts authentication events for asynchronous recording.
// Record must never block the caller; events may be dropped under pressure.
type AuditSink interface {
	Record(event domain.AuthEvent)
}

// AuditRepository persists the authentication audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
	// ListByActor returns the most recent events for one actor, newest first.
	ListByActor(ctx context.Context, actorEmail string, limit int) ([]*domain.AuthEvent, error)
}
