package app

import (
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	_ "github.com/DIMO-Network/whatsapp-relay/docs" // Import Swagger docs
	"github.com/DIMO-Network/whatsapp-relay/internal/clients/messaging"
	"github.com/DIMO-Network/whatsapp-relay/internal/config"
	"github.com/DIMO-Network/whatsapp-relay/internal/controllers/inbound"
	"github.com/DIMO-Network/whatsapp-relay/internal/controllers/outbound"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, settings *config.Settings) (*fiber.App, error) {
	logger.Info().Msg("Starting WhatsApp Relay API...")

	messagingClient, err := messaging.New(settings.MessagingServiceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging client: %w", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the WhatsApp Relay API!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	messageController := inbound.NewMessageController(logger)
	sendController := outbound.NewSendController(messagingClient)
	logger.Info().Str("messagingServiceURL", settings.MessagingServiceURL).Msg("Registering routes...")

	app.Post("/whatsapp/message", messageController.ReceiveMessage)
	app.Post("/send-whatsapp", sendController.SendWhatsApp)

	return app, nil
}
