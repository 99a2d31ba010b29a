package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/authbase/person-api/internal/core/domain"
	"github.com/authbase/person-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists auth events to the
// audit trail.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, event domain.AuthEvent) error {
	if err := s.repo.InsertEvent(ctx, &event); err != nil {
		return fmt.Errorf("process auth event: %w", err)
	}

	s.log.Debug().
		Str("login", event.Login).
		Str("action", string(event.Action)).
		Str("outcome", event.Outcome).
		Msg("auth event recorded")

	return nil
}
