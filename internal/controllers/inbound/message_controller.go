package inbound

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/DIMO-Network/whatsapp-relay/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StatusReceived is the acknowledgment returned for every accepted webhook message.
const StatusReceived = "received"

// ReceiveMessageResponse acknowledges an inbound webhook message.
type ReceiveMessageResponse struct {
	Status string `json:"status"`
}

// MessageController receives WhatsApp webhook notifications.
type MessageController struct {
	logger zerolog.Logger
}

// NewMessageController creates a new MessageController that writes received messages to logger.
func NewMessageController(logger zerolog.Logger) *MessageController {
	return &MessageController{logger: logger}
}

// ReceiveMessage godoc
// @Summary      Receive a WhatsApp webhook message
// @Description  Accepts a webhook notification of any shape, logs it and acknowledges it. The payload is not stored or forwarded.
// @Tags         WhatsApp
// @Accept       json
// @Produce      json
// @Param        request  body      object                  true  "Webhook payload"
// @Success      200      {object}  ReceiveMessageResponse  "Message received"
// @Failure      400      "Body is not a JSON object"
// @Router       /whatsapp/message [post]
func (m *MessageController) ReceiveMessage(c *fiber.Ctx) error {
	payload, err := decodeEvent(c.Body())
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	m.logger.Info().
		Str("eventId", uuid.NewString()).
		RawJSON("payload", payload).
		Msg("Received WhatsApp message")
	metrics.InboundMessagesTotal.Inc()

	return c.JSON(ReceiveMessageResponse{Status: StatusReceived})
}

// decodeEvent checks that body is a single JSON object and returns it with insignificant
// whitespace removed. Values are kept byte for byte so large integers survive logging.
func decodeEvent(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("payload is empty")
	}
	if trimmed[0] != '{' {
		return nil, errors.New("payload must be a JSON object")
	}
	if !json.Valid(trimmed) {
		return nil, errors.New("payload is not valid JSON")
	}
	var compacted bytes.Buffer
	if err := json.Compact(&compacted, trimmed); err != nil {
		return nil, fmt.Errorf("failed to compact payload: %w", err)
	}
	return compacted.Bytes(), nil
}
