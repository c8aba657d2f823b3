package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/AnthoniusHendriyanto/blacklist-service/internal/blacklist/domain"
	"github.com/jackc/pgx/v5"
)

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts entry and sets its store-assigned ID.
func (r *PostgresRepository) Create(ctx context.Context, entry *domain.BlacklistEntry) error {
	query := `
		INSERT INTO blacklists (email, app_uuid, blocked_reason, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		entry.Email, entry.AppUUID, entry.BlockedReason, entry.IPAddress, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to insert blacklist entry: %w", err)
	}

	return nil
}

func (r *PostgresRepository) FindFirstByEmail(ctx context.Context, email string) (*domain.BlacklistEntry, error) {
	query := `
		SELECT id, email, app_uuid, blocked_reason, ip_address, created_at
		FROM blacklists
		WHERE email = $1
		ORDER BY id ASC
		LIMIT 1
	`
	row := r.db.QueryRow(ctx, query, email)

	var entry domain.BlacklistEntry
	err := row.Scan(&entry.ID, &entry.Email, &entry.AppUUID, &entry.BlockedReason, &entry.IPAddress, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blacklist entry by email: %w", err)
	}

	return &entry, nil
}
