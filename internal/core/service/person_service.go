package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/authbase/person-api/internal/core/domain"
	"github.com/authbase/person-api/internal/core/ports"
)

// LoginThrottle abstracts the failed-attempt counter (Redis). A throttled
// login is rejected before the password is even checked.
type LoginThrottle interface {
	Allowed(ctx context.Context, login string) (bool, error)
	RecordFailure(ctx context.Context, login string) error
	Reset(ctx context.Context, login string) error
}

// PersonService implements account registration, authentication, and CRUD
// over the credential store.
type PersonService struct {
	repo     ports.PersonRepository
	issuer   ports.TokenIssuer
	throttle LoginThrottle
	audit    ports.AuditSink
	log      zerolog.Logger
}

func NewPersonService(
	repo ports.PersonRepository,
	issuer ports.TokenIssuer,
	throttle LoginThrottle,
	audit ports.AuditSink,
	log zerolog.Logger,
) *PersonService {
	return &PersonService{
		repo:     repo,
		issuer:   issuer,
		throttle: throttle,
		audit:    audit,
		log:      log,
	}
}

// SignUp hashes the password and persists a new account. The store's unique
// index on login decides conflicts atomically; the service never pre-checks.
func (s *PersonService) SignUp(ctx context.Context, login, password string) (*domain.Person, error) {
	created, err := s.create(ctx, login, password)
	if err != nil {
		return nil, err
	}

	s.record(login, domain.ActionSignUp, domain.OutcomeOK)
	s.log.Info().Str("login", login).Int64("id", created.ID).Msg("person signed up")
	return created, nil
}

// Create persists a new account. Same semantics as SignUp; kept separate so
// the two HTTP paths stay independent.
func (s *PersonService) Create(ctx context.Context, login, password string) (*domain.Person, error) {
	created, err := s.create(ctx, login, password)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("login", login).Int64("id", created.ID).Msg("person created")
	return created, nil
}

func (s *PersonService) create(ctx context.Context, login, password string) (*domain.Person, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	person := &domain.Person{
		Login:        login,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, person)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Authenticate verifies credentials and returns a signed session token.
// Failed attempts are counted per login; past the limit the login is
// rejected with domain.ErrTooManyAttempts until the window expires.
func (s *PersonService) Authenticate(ctx context.Context, login, password string) (string, error) {
	allowed, err := s.throttle.Allowed(ctx, login)
	if err != nil {
		// Fail open: a broken throttle must not lock everyone out.
		s.log.Warn().Err(err).Str("login", login).Msg("throttle check failed, proceeding")
	} else if !allowed {
		s.record(login, domain.ActionLogin, domain.OutcomeDenied)
		return "", domain.ErrTooManyAttempts
	}

	person, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		return "", err
	}

	if !VerifyPassword(password, person.PasswordHash) {
		if err := s.throttle.RecordFailure(ctx, login); err != nil {
			s.log.Warn().Err(err).Str("login", login).Msg("failed to record login failure")
		}
		s.record(login, domain.ActionLogin, domain.OutcomeDenied)
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(person.Login)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	if err := s.throttle.Reset(ctx, login); err != nil {
		s.log.Warn().Err(err).Str("login", login).Msg("failed to reset throttle")
	}
	s.record(login, domain.ActionLogin, domain.OutcomeOK)
	s.log.Info().Str("login", login).Msg("person authenticated")
	return token, nil
}

func (s *PersonService) FindAll(ctx context.Context) ([]*domain.Person, error) {
	return s.repo.FindAll(ctx)
}

func (s *PersonService) FindByID(ctx context.Context, id int64) (*domain.Person, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PersonService) FindByLogin(ctx context.Context, login string) (*domain.Person, error) {
	return s.repo.FindByLogin(ctx, login)
}

// Update replaces login and password of the record with the given id. The
// lookup is strictly by primary key, and the password is re-hashed like on
// every other write path.
func (s *PersonService) Update(ctx context.Context, id int64, login, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	person := &domain.Person{
		ID:           id,
		Login:        login,
		PasswordHash: hash,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Update(ctx, person); err != nil {
		return err
	}

	s.log.Info().Int64("id", id).Msg("person updated")
	return nil
}

// UpdatePassword overwrites the password of the account with the given login.
func (s *PersonService) UpdatePassword(ctx context.Context, login, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, login, hash); err != nil {
		return err
	}

	s.record(login, domain.ActionPasswordChange, domain.OutcomeOK)
	s.log.Info().Str("login", login).Msg("password changed")
	return nil
}

// Delete removes the record with the given id. Deleting an absent id yields
// domain.ErrPersonNotFound, so a repeated delete reports the same failure.
// The record is resolved first so the audit trail carries its real login.
func (s *PersonService) Delete(ctx context.Context, id int64) error {
	person, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.record(person.Login, domain.ActionDelete, domain.OutcomeOK)
	s.log.Info().Int64("id", id).Str("login", person.Login).Msg("person deleted")
	return nil
}

func (s *PersonService) record(login string, action domain.AuthAction, outcome string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuthEvent{
		Login:     login,
		Action:    action,
		Outcome:   outcome,
		Timestamp: time.Now().UTC(),
	})
}
