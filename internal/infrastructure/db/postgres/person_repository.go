package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/authbase/person-api/internal/core/domain"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint breach.
const uniqueViolation = "23505"

// PersonRepository implements ports.PersonRepository on PostgreSQL.
type PersonRepository struct {
	db *sql.DB
}

func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) Create(ctx context.Context, p *domain.Person) (*domain.Person, error) {
	query := `INSERT INTO person (login, password_hash, created_at, updated_at)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	stored := *p
	err := r.db.QueryRowContext(ctx, query,
		p.Login, p.PasswordHash, p.CreatedAt, p.UpdatedAt).Scan(&stored.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrLoginTaken
		}
		return nil, fmt.Errorf("insert person: %w", err)
	}

	return &stored, nil
}

func (r *PersonRepository) FindAll(ctx context.Context) ([]*domain.Person, error) {
	query := `SELECT id, login, password_hash, created_at, updated_at
	          FROM person
	          ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	var out []*domain.Person
	for rows.Next() {
		var p domain.Person
		if err := rows.Scan(&p.ID, &p.Login, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	return out, nil
}

func (r *PersonRepository) FindByID(ctx context.Context, id int64) (*domain.Person, error) {
	query := `SELECT id, login, password_hash, created_at, updated_at
	          FROM person
	          WHERE id = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PersonRepository) FindByLogin(ctx context.Context, login string) (*domain.Person, error) {
	query := `SELECT id, login, password_hash, created_at, updated_at
	          FROM person
	          WHERE login = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, login))
}

// Update replaces login and password hash strictly by primary key.
func (r *PersonRepository) Update(ctx context.Context, p *domain.Person) error {
	query := `UPDATE person
	          SET login = $2, password_hash = $3, updated_at = $4
	          WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, p.ID, p.Login, p.PasswordHash, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrLoginTaken
		}
		return fmt.Errorf("update person: %w", err)
	}
	return requireRow(res)
}

func (r *PersonRepository) UpdatePassword(ctx context.Context, login, passwordHash string) error {
	query := `UPDATE person
	          SET password_hash = $2, updated_at = now()
	          WHERE login = $1`

	res, err := r.db.ExecContext(ctx, query, login, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return requireRow(res)
}

func (r *PersonRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM person WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	return requireRow(res)
}

func (r *PersonRepository) scanOne(row *sql.Row) (*domain.Person, error) {
	var p domain.Person
	err := row.Scan(&p.ID, &p.Login, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPersonNotFound
		}
		return nil, fmt.Errorf("find person: %w", err)
	}
	return &p, nil
}

// requireRow maps a zero-row mutation to domain.ErrPersonNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrPersonNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
