package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists identities. Implementations enforce email uniqueness
// and report collisions as ErrDuplicateEmail.
type Repository interface {
	Create(ctx context.Context, identity Identity) (Identity, error)
	FindByID(ctx context.Context, id int64) (Identity, error)
	FindByEmail(ctx context.Context, email string) (Identity, error)
}

const uniqueViolation = "23505"

const selectIdentity = `SELECT id, email, password, full_name, phone, created_at, last_modified_at FROM users`

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed identity repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new user and returns it with the store assigned id and timestamps.
func (r *PostgresRepository) Create(ctx context.Context, identity Identity) (Identity, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO users (email, password, full_name, phone)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, last_modified_at`,
		identity.Email, identity.PasswordDigest, identity.FullName, nullable(identity.Phone))

	var createdAt, modifiedAt time.Time
	if err := row.Scan(&identity.ID, &createdAt, &modifiedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Identity{}, ErrDuplicateEmail
		}
		return Identity{}, fmt.Errorf("insert user: %w", err)
	}
	identity.CreatedAt = createdAt.UTC()
	identity.ModifiedAt = modifiedAt.UTC()
	return identity, nil
}

// FindByID fetches a user by primary key.
func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (Identity, error) {
	return scanIdentity(r.db.QueryRow(ctx, selectIdentity+` WHERE id = $1`, id))
}

// FindByEmail fetches a user by email address.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (Identity, error) {
	return scanIdentity(r.db.QueryRow(ctx, selectIdentity+` WHERE email = $1`, email))
}

func scanIdentity(row pgx.Row) (Identity, error) {
	var (
		identity   Identity
		phone      *string
		createdAt  time.Time
		modifiedAt time.Time
	)
	err := row.Scan(&identity.ID, &identity.Email, &identity.PasswordDigest, &identity.FullName, &phone, &createdAt, &modifiedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Identity{}, ErrNotFound
		}
		return Identity{}, fmt.Errorf("select user: %w", err)
	}
	if phone != nil {
		identity.Phone = *phone
	}
	identity.CreatedAt = createdAt.UTC()
	identity.ModifiedAt = modifiedAt.UTC()
	return identity, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
