// Command mock-messaging-service stands in for the local messaging service during development.
// It accepts send requests on :8081 and answers every valid one as sent.
package main

import (
	"flag"

	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SendMessagePayload represents the request posted by the relay.
type SendMessagePayload struct {
	JID  string `json:"jid"`
	Text string `json:"text"`
}

func main() {
	addr := flag.String("addr", ":8081", "listen address")
	flag.Parse()

	logger := logging.GetAndSetDefaultLogger("mock-messaging-service")

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Post("/api/send-message", func(c *fiber.Ctx) error {
		var payload SendMessagePayload
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"sent": false, "error": "invalid payload"})
		}
		id := uuid.NewString()
		logger.Info().Str("jid", payload.JID).Str("text", payload.Text).Str("id", id).Msg("Message received")
		return c.JSON(fiber.Map{"sent": true, "id": id})
	})

	logger.Info().Str("addr", *addr).Msg("Mock messaging service listening")
	if err := app.Listen(*addr); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
