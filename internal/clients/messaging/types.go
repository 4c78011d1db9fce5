package messaging

import "encoding/json"

// SendMessageRequest is the body posted to the messaging service.
type SendMessageRequest struct {
	// JID identifies the recipient chat.
	JID string `json:"jid"`
	// Text is the message body.
	Text string `json:"text"`
}

// Response is the messaging service reply as it was received.
type Response struct {
	StatusCode int
	Body       json.RawMessage
}
