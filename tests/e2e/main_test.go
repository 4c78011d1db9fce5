package e2e_test

import (
	"bytes"
	"net/http"
	"os"
	"testing"

	"github.com/DIMO-Network/whatsapp-relay/internal/app"
	"github.com/DIMO-Network/whatsapp-relay/internal/config"
	"github.com/caarlos0/env/v11"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type TestRelay struct {
	App       *fiber.App
	Messaging *MessagingServer
	Settings  config.Settings
	Logs      *bytes.Buffer
}

// NewTestRelay builds the full relay app pointed at a fresh mock messaging service.
func NewTestRelay(t *testing.T) *TestRelay {
	t.Helper()
	messaging := NewMessagingServer()
	t.Cleanup(messaging.Close)

	settings, err := env.ParseAsWithOptions[config.Settings](env.Options{Environment: map[string]string{
		"MESSAGING_SERVICE_URL": messaging.SendMessageURL(),
	}})
	require.NoError(t, err)

	logs := &bytes.Buffer{}
	fiberApp, err := app.CreateFiberApp(zerolog.New(logs), &settings)
	require.NoError(t, err)

	return &TestRelay{
		App:       fiberApp,
		Messaging: messaging,
		Settings:  settings,
		Logs:      logs,
	}
}

func (tr *TestRelay) Post(t *testing.T, path string, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := tr.App.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestMain(m *testing.M) {
	logger := zerolog.New(os.Stdout).Level(zerolog.WarnLevel)
	zerolog.DefaultContextLogger = &logger
	os.Exit(m.Run())
}
