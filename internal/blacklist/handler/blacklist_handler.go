package handler

import (
	"errors"
	"net/url"

	"github.com/AnthoniusHendriyanto/blacklist-service/internal/blacklist/dto"
	"github.com/AnthoniusHendriyanto/blacklist-service/internal/blacklist/service"
	blacklisterror "github.com/AnthoniusHendriyanto/blacklist-service/internal/errors"
	"github.com/AnthoniusHendriyanto/blacklist-service/pkg/constant"
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
)

type BlacklistHandler struct {
	blacklistService *service.BlacklistService
}

func NewBlacklistHandler(blacklistService *service.BlacklistService) *BlacklistHandler {
	return &BlacklistHandler{blacklistService: blacklistService}
}

func (h *BlacklistHandler) Create(c *fiber.Ctx) error {
	input, err := decodeCreateInput(c)
	if err != nil {
		return respondError(c, err)
	}

	// Never trusted from the body.
	input.IPAddress = c.IP()

	entry, err := h.blacklistService.Add(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}

	log.Info("email blacklisted", "id", entry.ID, "app_uuid", entry.AppUUID, "ip", entry.IPAddress)

	return c.Status(fiber.StatusCreated).JSON(dto.MessageOutput{Message: constant.MsgBlacklistCreated})
}

func (h *BlacklistHandler) Check(c *fiber.Ctx) error {
	email := c.Params("email")
	if unescaped, err := url.PathUnescape(email); err == nil {
		email = unescaped
	}

	status, err := h.blacklistService.Check(c.UserContext(), email)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(status)
}

func (h *BlacklistHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(dto.HealthOutput{Healthy: true})
}

// decodeCreateInput accepts any Content-Type. The body must be a non-empty JSON
// object. Fields are matched by exact key; JSON null counts as absent and any
// other non-string value makes the body unusable.
func decodeCreateInput(c *fiber.Ctx) (dto.CreateBlacklistInput, error) {
	var input dto.CreateBlacklistInput

	body := c.Body()
	if len(body) == 0 {
		return input, blacklisterror.ErrNoInputData
	}

	var fields map[string]any
	if err := c.App().Config().JSONDecoder(body, &fields); err != nil || len(fields) == 0 {
		return input, blacklisterror.ErrNoInputData
	}

	email, ok := stringField(fields, "email")
	if !ok {
		return input, blacklisterror.ErrNoInputData
	}
	appUUID, ok := stringField(fields, "app_uuid")
	if !ok {
		return input, blacklisterror.ErrNoInputData
	}
	reason, ok := stringField(fields, "blocked_reason")
	if !ok {
		return input, blacklisterror.ErrNoInputData
	}

	if email != nil {
		input.Email = *email
	}
	if appUUID != nil {
		input.AppUUID = *appUUID
	}
	input.BlockedReason = reason

	return input, nil
}

// stringField returns nil for a missing or null key and false for a non-string value.
func stringField(fields map[string]any, key string) (*string, bool) {
	raw, found := fields[key]
	if !found || raw == nil {
		return nil, true
	}
	value, ok := raw.(string)
	if !ok {
		return nil, false
	}
	return &value, true
}

func respondError(c *fiber.Ctx, err error) error {
	status, message := fiber.StatusInternalServerError, constant.MsgInternalError

	switch {
	case errors.Is(err, blacklisterror.ErrNoInputData):
		status, message = fiber.StatusBadRequest, constant.MsgNoInputData
	case errors.Is(err, blacklisterror.ErrMissingRequiredFields):
		status, message = fiber.StatusBadRequest, constant.MsgMissingFields
	case errors.Is(err, blacklisterror.ErrInvalidAppUUID):
		status, message = fiber.StatusBadRequest, constant.MsgInvalidAppUUID
	case errors.Is(err, blacklisterror.ErrUnauthorized):
		status, message = fiber.StatusUnauthorized, constant.MsgInvalidToken
	case errors.Is(err, blacklisterror.ErrStoreUnavailable):
		status, message = fiber.StatusServiceUnavailable, constant.MsgStoreUnavailable
	default:
		log.Error("unhandled error", "path", c.Path(), "err", err)
	}

	return c.Status(status).JSON(dto.MessageOutput{Message: message})
}
