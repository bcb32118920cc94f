package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	ws "billforge/internal/transport/websocket"
)

func dialHub(t *testing.T, hub *ws.Hub, userID int64) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.HandleWebSocket(w, r, userID)
	}))
	t.Cleanup(server.Close)

	wsURL := "ws" + server.URL[4:]
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// give the hub time to register the connection
	time.Sleep(100 * time.Millisecond)
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) (ws.Message, map[string]interface{}) {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var received ws.Message
	if err := conn.ReadJSON(&received); err != nil {
		t.Fatalf("Failed to read message: %v", err)
	}

	dataBytes, err := json.Marshal(received.Data)
	if err != nil {
		t.Fatalf("Failed to marshal data: %v", err)
	}
	var data map[string]interface{}
	if err := json.Unmarshal(dataBytes, &data); err != nil {
		t.Fatalf("Failed to unmarshal data: %v", err)
	}
	return received, data
}

func TestWebSocketClient_NotifyExportProgress(t *testing.T) {
	hub := ws.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	conn := dialHub(t, hub, 1)
	client := NewWebSocketClient(hub)

	if err := client.NotifyExportProgress(context.Background(), 1, "exports:abc", 50.5, "encoding"); err != nil {
		t.Fatalf("Failed to notify progress: %v", err)
	}

	received, data := readMessage(t, conn)
	if received.Type != "export_progress" {
		t.Errorf("Expected type 'export_progress', got '%s'", received.Type)
	}
	if received.UserID != 1 {
		t.Errorf("Expected userID 1, got %d", received.UserID)
	}
	if received.Channel != "exports.progress#1" {
		t.Errorf("Expected channel 'exports.progress#1', got '%s'", received.Channel)
	}
	if data["id"] != "exports:abc" {
		t.Errorf("Expected id 'exports:abc', got '%v'", data["id"])
	}
	if data["progress"].(float64) != 50.5 {
		t.Errorf("Expected progress 50.5, got %v", data["progress"])
	}
	if data["stage"] != "encoding" {
		t.Errorf("Expected stage 'encoding', got '%v'", data["stage"])
	}
}

func TestWebSocketClient_NotifyExportComplete(t *testing.T) {
	hub := ws.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	conn := dialHub(t, hub, 1)
	client := NewWebSocketClient(hub)

	err := client.NotifyExportComplete(context.Background(), 1, "exports:abc", "https://example.com/file.pdf", "invoice_INV-001.pdf")
	if err != nil {
		t.Fatalf("Failed to notify complete: %v", err)
	}

	received, data := readMessage(t, conn)
	if received.Type != "export_complete" {
		t.Errorf("Expected type 'export_complete', got '%s'", received.Type)
	}
	if received.Channel != "exports.complete#1" {
		t.Errorf("Expected channel 'exports.complete#1', got '%s'", received.Channel)
	}
	if data["url"] != "https://example.com/file.pdf" {
		t.Errorf("Expected url 'https://example.com/file.pdf', got '%v'", data["url"])
	}
	if data["filename"] != "invoice_INV-001.pdf" {
		t.Errorf("Expected filename 'invoice_INV-001.pdf', got '%v'", data["filename"])
	}
}

func TestWebSocketClient_NotifyExportFailed(t *testing.T) {
	hub := ws.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	conn := dialHub(t, hub, 1)
	client := NewWebSocketClient(hub)

	if err := client.NotifyExportFailed(context.Background(), 1, "exports:abc", "encode failed"); err != nil {
		t.Fatalf("Failed to notify failed: %v", err)
	}

	received, data := readMessage(t, conn)
	if received.Type != "export_failed" {
		t.Errorf("Expected type 'export_failed', got '%s'", received.Type)
	}
	if received.Channel != "exports.failed#1" {
		t.Errorf("Expected channel 'exports.failed#1', got '%s'", received.Channel)
	}
	if data["message"] != "encode failed" {
		t.Errorf("Expected message 'encode failed', got '%v'", data["message"])
	}
}

func TestWebSocketClient_NilHub(t *testing.T) {
	client := NewWebSocketClient(nil)

	if err := client.NotifyExportProgress(context.Background(), 1, "exports:abc", 50.5, ""); err != nil {
		t.Errorf("Should not return error with nil hub, got: %v", err)
	}
	if err := client.NotifyExportComplete(context.Background(), 1, "exports:abc", "https://example.com/f.pdf", "f.pdf"); err != nil {
		t.Errorf("Should not return error with nil hub, got: %v", err)
	}
	if err := client.NotifyExportFailed(context.Background(), 1, "exports:abc", "boom"); err != nil {
		t.Errorf("Should not return error with nil hub, got: %v", err)
	}
}
