package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendMessage(t *testing.T) {
	var got SendMessageRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sendMessage" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	bot := NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	if err := bot.SendMessageWithMode(context.Background(), 42, "ranked list", "Markdown"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ChatID != 42 || got.Text != "ranked list" || got.ParseMode != "Markdown" {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestSendMessageAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer ts.Close()

	bot := NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	if err := bot.SendMessage(context.Background(), 1, "hello"); err == nil {
		t.Error("expected error on non-200 response")
	}
}

func TestSendMessageCancelledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	defer ts.Close()

	bot := NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := bot.SendMessage(ctx, 1, "hello"); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestSetWebhook(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/setWebhook" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	bot := NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	if err := bot.SetWebhook(context.Background(), "https://example.com/webhook/telegram"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
