package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/authbase/person-api/internal/core/domain"
)

// AuditRepository appends auth events to the auth_events table.
type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) InsertEvent(ctx context.Context, event *domain.AuthEvent) error {
	query := `INSERT INTO auth_events (login, action, outcome, occurred_at)
	          VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query,
		event.Login, event.Action, event.Outcome, event.Timestamp)
	if err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
