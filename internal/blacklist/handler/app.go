package handler

import (
	"errors"

	"github.com/AnthoniusHendriyanto/blacklist-service/internal/blacklist/dto"
	"github.com/AnthoniusHendriyanto/blacklist-service/pkg/constant"
	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// NewApp builds the Fiber application with the service's codec, error
// rendering and common middleware. Routes are added by RegisterRoutes.
func NewApp(proxyHeader string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "blacklist-service",
		DisableStartupMessage: true,
		ProxyHeader:           proxyHeader,
		EnableIPValidation:    true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger())

	return app
}

var fiberErrorMessages = map[int]string{
	fiber.StatusBadRequest:            constant.MsgBadRequest,
	fiber.StatusNotFound:              constant.MsgNotFound,
	fiber.StatusMethodNotAllowed:      constant.MsgMethodNotAllowed,
	fiber.StatusRequestTimeout:        constant.MsgRequestTimeout,
	fiber.StatusRequestEntityTooLarge: constant.MsgBodyTooLarge,
}

func errorHandler(c *fiber.Ctx, err error) error {
	status, message := fiber.StatusInternalServerError, constant.MsgInternalError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		if msg, ok := fiberErrorMessages[fe.Code]; ok {
			message = msg
		} else if fe.Code < fiber.StatusInternalServerError {
			message = constant.MsgBadRequest
		}
	}

	if status >= fiber.StatusInternalServerError {
		log.Error("request failed", "path", c.Path(), "err", err)
	}

	return c.Status(status).JSON(dto.MessageOutput{Message: message})
}
