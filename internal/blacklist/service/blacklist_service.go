package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AnthoniusHendriyanto/blacklist-service/internal/blacklist/domain"
	"github.com/AnthoniusHendriyanto/blacklist-service/internal/blacklist/dto"
	blacklisterror "github.com/AnthoniusHendriyanto/blacklist-service/internal/errors"
	"github.com/AnthoniusHendriyanto/blacklist-service/pkg/constant"
	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type BlacklistService struct {
	repo     domain.BlacklistRepository
	validate *validator.Validate
	timeout  time.Duration
	now      func() time.Time
}

func NewBlacklistService(repo domain.BlacklistRepository, storeTimeout time.Duration) *BlacklistService {
	validate := validator.New()
	// Registration only fails for an empty tag or a nil func.
	_ = validate.RegisterValidation("app_uuid", isAppUUID)

	return &BlacklistService{
		repo:     repo,
		validate: validate,
		timeout:  storeTimeout,
		now:      time.Now,
	}
}

func isAppUUID(fl validator.FieldLevel) bool {
	_, err := uuid.Parse(fl.Field().String())
	return err == nil
}

// Add validates input and appends a new blacklist entry.
func (s *BlacklistService) Add(ctx context.Context, input dto.CreateBlacklistInput) (*domain.BlacklistEntry, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	// Validated above; parsing again yields the canonical 36-character form.
	appUUID := uuid.MustParse(input.AppUUID).String()

	ip := input.IPAddress
	if ip == "" {
		ip = constant.FallbackIPAddress
	}

	entry := &domain.BlacklistEntry{
		Email:         input.Email,
		AppUUID:       appUUID,
		BlockedReason: input.BlockedReason,
		IPAddress:     ip,
		CreatedAt:     s.now().UTC(),
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	if err := s.repo.Create(ctx, entry); err != nil {
		log.Error("failed to store blacklist entry", "email", input.Email, "err", err)
		return nil, fmt.Errorf("%w: %w", blacklisterror.ErrStoreUnavailable, err)
	}

	return entry, nil
}

// Check reports whether email has at least one blacklist entry. When several
// exist, the reason of the earliest one is returned.
func (s *BlacklistService) Check(ctx context.Context, email string) (*dto.BlacklistStatusOutput, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	entry, err := s.repo.FindFirstByEmail(ctx, email)
	if err != nil {
		log.Error("failed to look up blacklist entry", "email", email, "err", err)
		return nil, fmt.Errorf("%w: %w", blacklisterror.ErrStoreUnavailable, err)
	}

	if entry == nil {
		return &dto.BlacklistStatusOutput{Blacklisted: false}, nil
	}

	return &dto.BlacklistStatusOutput{
		Blacklisted:   true,
		BlockedReason: entry.BlockedReason,
	}, nil
}

// validateInput maps validator failures onto the API's error kinds. A missing
// field outranks a malformed app_uuid.
func (s *BlacklistService) validateInput(input dto.CreateBlacklistInput) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate input: %w", err)
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return blacklisterror.ErrMissingRequiredFields
		}
	}
	return blacklisterror.ErrInvalidAppUUID
}

func (s *BlacklistService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
