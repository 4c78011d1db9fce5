package e2e_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

const sendMessagePath = "/api/send-message"

// MessagingServer is a mock of the local messaging service that records every send request.
type MessagingServer struct {
	server     *httptest.Server
	received   []SendCall
	mu         sync.RWMutex
	statusCode int
	response   string
}

type SendCall struct {
	Method      string    `json:"method"`
	Path        string    `json:"path"`
	ContentType string    `json:"contentType"`
	Body        string    `json:"body"`
	Time        time.Time `json:"time"`
}

func NewMessagingServer() *MessagingServer {
	ms := &MessagingServer{
		received:   make([]SendCall, 0),
		statusCode: http.StatusOK,
		response:   `{"sent": true, "id": "abc"}`,
	}

	ms.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read body", http.StatusBadRequest)
			return
		}

		ms.mu.Lock()
		ms.received = append(ms.received, SendCall{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(body),
			Time:        time.Now(),
		})
		statusCode, response := ms.statusCode, ms.response
		ms.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(response))
	}))
	return ms
}

// SendMessageURL is the full URL the relay should post to.
func (ms *MessagingServer) SendMessageURL() string {
	return ms.server.URL + sendMessagePath
}

// SetResponse changes the status code and raw body returned for subsequent calls.
func (ms *MessagingServer) SetResponse(statusCode int, body string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.statusCode = statusCode
	ms.response = body
}

func (ms *MessagingServer) GetReceivedCalls() []SendCall {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	result := make([]SendCall, len(ms.received))
	copy(result, ms.received)
	return result
}

func (ms *MessagingServer) Close() {
	ms.server.Close()
}
