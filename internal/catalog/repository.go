package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository stores catalog entries.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Garment, error)
	Create(ctx context.Context, g Garment) (Garment, error)
}

// PostgresRepository reads the clothes table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a catalog repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns garments ordered by id. Empty filter fields are ignored.
func (r *PostgresRepository) List(ctx context.Context, filter Filter) ([]Garment, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, color, size, COALESCE(photo_url, ''), created_at, last_modified_at
        FROM clothes
        WHERE ($1 = '' OR color::text = $1) AND ($2 = '' OR size::text = $2)
        ORDER BY id`, string(filter.Color), string(filter.Size))
	if err != nil {
		return nil, fmt.Errorf("select clothes: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Garment, error) {
		var (
			g          Garment
			color      string
			size       string
			createdAt  time.Time
			modifiedAt time.Time
		)
		if err := row.Scan(&g.ID, &g.Name, &color, &size, &g.PhotoURL, &createdAt, &modifiedAt); err != nil {
			return Garment{}, err
		}
		g.Color = Color(color)
		g.Size = Size(size)
		g.CreatedAt = createdAt.UTC()
		g.ModifiedAt = modifiedAt.UTC()
		return g, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan clothes: %w", err)
	}
	return items, nil
}

// Create inserts a garment.
func (r *PostgresRepository) Create(ctx context.Context, g Garment) (Garment, error) {
	var createdAt, modifiedAt time.Time
	err := r.db.QueryRow(ctx, `INSERT INTO clothes (name, color, size, photo_url)
        VALUES ($1, $2, $3, NULLIF($4, ''))
        RETURNING id, created_at, last_modified_at`,
		g.Name, string(g.Color), string(g.Size), g.PhotoURL).Scan(&g.ID, &createdAt, &modifiedAt)
	if err != nil {
		return Garment{}, fmt.Errorf("insert garment: %w", err)
	}
	g.CreatedAt = createdAt.UTC()
	g.ModifiedAt = modifiedAt.UTC()
	return g, nil
}
