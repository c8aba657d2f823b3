package domain

//go:generate mockgen -destination=../../mocks/mock_blacklist_repository.go -package=mocks github.com/AnthoniusHendriyanto/blacklist-service/internal/blacklist/domain BlacklistRepository

import "context"

type BlacklistRepository interface {
	Create(ctx context.Context, entry *BlacklistEntry) error
	// FindFirstByEmail returns the earliest entry for email, or nil when none exists.
	FindFirstByEmail(ctx context.Context, email string) (*BlacklistEntry, error)
}
