package outbound

// SendWhatsAppRequest is the payload to send a WhatsApp message through the messaging service.
// Keys are matched exactly; both must be present and hold strings.
type SendWhatsAppRequest struct {
	// JID is the recipient identifier, e.g. "123@s.whatsapp.net".
	JID string `json:"jid"`
	// Text is the message body.
	Text string `json:"text"`
}
