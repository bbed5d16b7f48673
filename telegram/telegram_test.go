package telegram

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := New("TEST-TOKEN")
	c.BaseURL = srv.URL
	c.http = srv.Client()
	return c, srv
}

func TestSendMessage(t *testing.T) {
	c, srv := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTEST-TOKEN/sendMessage", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "42", r.Form.Get("chat_id"))
		assert.Equal(t, "<b>hi</b>", r.Form.Get("text"))
		assert.Equal(t, "HTML", r.Form.Get("parse_mode"))
		fmt.Fprint(w, `{"ok": true, "result": {}}`)
	})
	defer srv.Close()

	require.NoError(t, c.SendMessage(42, "<b>hi</b>"))
}

func TestSendMessage_APIError(t *testing.T) {
	c, srv := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ok": false, "description": "Bad Request: chat not found"}`)
	})
	defer srv.Close()

	err := c.SendMessage(42, "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestPoll(t *testing.T) {
	var calls atomic.Int64
	c, srv := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/botTEST-TOKEN/sendMessage" {
			fmt.Fprint(w, `{"ok": true, "result": {}}`)
			return
		}
		require.NoError(t, r.ParseForm())
		if calls.Add(1) == 1 {
			assert.Equal(t, "0", r.Form.Get("offset"))
			fmt.Fprint(w, `{"ok": true, "result": [
  {"update_id": 10, "message": {"text": "/help", "chat": {"id": 7}}},
  {"update_id": 11, "message": null}
]}`)
			return
		}
		// the offset must advance past the last served update
		assert.Equal(t, "12", r.Form.Get("offset"))
		fmt.Fprint(w, `{"ok": true, "result": []}`)
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	handled := make(chan string, 1)
	go func() {
		c.Poll(ctx, func(chatID int64, text string) string {
			assert.Equal(t, int64(7), chatID)
			handled <- text
			return "ok"
		})
	}()

	select {
	case text := <-handled:
		assert.Equal(t, "/help", text)
	case <-time.After(5 * time.Second):
		t.Fatal("handler was never called")
	}
	cancel()
}

func TestPoll_ContextCancel(t *testing.T) {
	c, srv := newTestServer(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ok": true, "result": []}`)
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.Poll(ctx, func(int64, string) string { return "" })
	assert.ErrorIs(t, err, context.Canceled)
}
