// Package telegram implements a minimal Telegram Bot API client: enough to
// push report messages and long-poll for the bot's chat commands. The API
// is plain HTTPS + JSON, a dedicated library would be heavier than the two
// endpoints used here.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

// Client calls the Bot API for one bot token.
type Client struct {
	// BaseURL overrides the API host, for tests.
	BaseURL string

	token string
	http  *http.Client
}

// New returns a client for the given bot token.
func New(token string) *Client {
	return &Client{
		token: token,
		// long polls hold the connection for pollTimeout, the client
		// timeout must exceed it
		http: &http.Client{Timeout: 50 * time.Second},
	}
}

func (c *Client) endpoint(method string) string {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return fmt.Sprintf("%s/bot%s/%s", base, c.token, method)
}

// apiResponse is the envelope every Bot API method answers with.
type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

// call POSTs a form to a Bot API method and unmarshals the result envelope.
func (c *Client) call(method string, form url.Values, result any) error {
	resp, err := c.http.PostForm(c.endpoint(method), form)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}

	var envelope apiResponse
	if err := json.Unmarshal(buf.Bytes(), &envelope); err != nil {
		return fmt.Errorf("telegram %s: invalid response: %w", method, err)
	}
	if !envelope.OK {
		return fmt.Errorf("telegram %s: %s", method, envelope.Description)
	}
	if result != nil {
		return json.Unmarshal(envelope.Result, result)
	}
	return nil
}

// SendMessage sends an HTML-formatted message to a chat.
func (c *Client) SendMessage(chatID int64, text string) error {
	return c.call("sendMessage", url.Values{
		"chat_id":    {strconv.FormatInt(chatID, 10)},
		"text":       {text},
		"parse_mode": {"HTML"},
	}, nil)
}

// Update is one inbound event from getUpdates. Only text messages matter to
// this bot.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

// Message is an inbound chat message.
type Message struct {
	Text string `json:"text"`
	Chat struct {
		ID int64 `json:"id"`
	} `json:"chat"`
}

const pollTimeout = 30 // seconds the server holds an empty getUpdates

// getUpdates long-polls for updates after the given offset.
func (c *Client) getUpdates(offset int64) ([]Update, error) {
	var updates []Update
	err := c.call("getUpdates", url.Values{
		"offset":  {strconv.FormatInt(offset, 10)},
		"timeout": {strconv.Itoa(pollTimeout)},
	}, &updates)
	return updates, err
}

// Handler is called for every inbound text message; the returned reply, if
// not empty, is sent back to the same chat.
type Handler func(chatID int64, text string) (reply string)

// Poll long-polls for messages until ctx is done, dispatching each text
// message to the handler. Transient API errors are logged by the caller's
// handler policy: here they only delay the next poll.
func (c *Client) Poll(ctx context.Context, handle Handler) error {
	var offset int64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		updates, err := c.getUpdates(offset)
		if err != nil {
			// back off a little, the API or the network is unhappy
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(5 * time.Second):
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			if u.Message == nil || u.Message.Text == "" {
				continue
			}
			if reply := handle(u.Message.Chat.ID, u.Message.Text); reply != "" {
				if err := c.SendMessage(u.Message.Chat.ID, reply); err != nil {
					// a lost reply must not kill the command loop
					log.Printf("cannot send reply: %v", err)
				}
			}
		}
	}
}
