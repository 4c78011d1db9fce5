//go:generate go tool mockgen -source=send_controller.go -destination=send_controller_mock_test.go -package=outbound
package outbound

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/DIMO-Network/whatsapp-relay/internal/clients/messaging"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Sender delivers a message to the messaging service.
type Sender interface {
	SendMessage(ctx context.Context, req messaging.SendMessageRequest) (*messaging.Response, error)
}

// SendController forwards send requests to the messaging service.
type SendController struct {
	sender Sender
}

// NewSendController creates a new SendController.
func NewSendController(sender Sender) *SendController {
	return &SendController{sender: sender}
}

// SendWhatsApp godoc
// @Summary      Send a WhatsApp message
// @Description  Forwards the message to the local messaging service and returns its JSON response unmodified, including its status code.
// @Tags         WhatsApp
// @Accept       json
// @Produce      json
// @Param        request  body      SendWhatsAppRequest  true  "Recipient and message text"
// @Success      200      {object}  object               "Messaging service response"
// @Failure      422      "Missing or invalid jid or text"
// @Failure      502      "Messaging service unreachable or returned an invalid response"
// @Router       /send-whatsapp [post]
func (s *SendController) SendWhatsApp(c *fiber.Ctx) error {
	req, err := parseSendRequest(c.Body())
	if err != nil {
		return err
	}

	resp, err := s.sender.SendMessage(c.Context(), req)
	if err != nil {
		zerolog.Ctx(c.UserContext()).Error().Err(err).Str("jid", req.JID).Msg("Failed to forward WhatsApp message")
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(resp.StatusCode).Send(resp.Body)
}

// parseSendRequest decodes and validates body. Both fields must be present under their exact
// lowercase keys and be strings.
func parseSendRequest(body []byte) (messaging.SendMessageRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		if err == nil {
			err = errors.New("payload must be a JSON object")
		}
		return messaging.SendMessageRequest{}, validationError("Invalid request payload", err)
	}

	var payload SendWhatsAppRequest
	if err := stringField(fields, "jid", &payload.JID); err != nil {
		return messaging.SendMessageRequest{}, err
	}
	if err := stringField(fields, "text", &payload.Text); err != nil {
		return messaging.SendMessageRequest{}, err
	}
	return messaging.SendMessageRequest{
		JID:  payload.JID,
		Text: payload.Text,
	}, nil
}

// stringField stores fields[key] in dst. A missing or null value is reported as required.
func stringField(fields map[string]json.RawMessage, key string, dst *string) error {
	raw, ok := fields[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return validationError(fmt.Sprintf("Field '%s' is required", key), nil)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return validationError(fmt.Sprintf("Field '%s' must be a string", key), err)
	}
	return nil
}

func validationError(msg string, err error) error {
	if err == nil {
		err = errors.New(msg)
	}
	return richerrors.Error{
		ExternalMsg: msg,
		Err:         err,
		Code:        fiber.StatusUnprocessableEntity,
	}
}
