package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mercatto/commerce-api/internal/core/domain"
)

// AuditRepository persists the authentication audit trail.
type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}

func (r *AuditRepository) ListByActor(ctx context.Context, actorEmail string, limit int) ([]*domain.AuthEvent, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	var events []*domain.AuthEvent
	err := r.db.WithContext(ctx).
		Where("actor_email = ?", actorEmail).
		Order("at DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("list auth events: %w", err)
	}
	return events, nil
}
