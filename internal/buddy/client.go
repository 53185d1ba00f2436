package buddy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ChatPath is where the chat endpoint is served by Handler.
const ChatPath = "/api/buddy-chat"

// Context describes the game situation a comment is requested for.
type Context struct {
	Event      string `json:"event"`
	IsStalling bool   `json:"isStalling"`
	Score      int    `json:"score"`
	Mode       string `json:"mode"`
	Skin       string `json:"skin,omitempty"`
}

type chatRequest struct {
	Context *Context `json:"context"`
}

type chatReply struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Client talks to a chat endpoint that turns a Context into one line.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a chat client. A zero timeout means 5 seconds.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Chat posts the context and returns the reply message.
// A reply with a message is accepted whatever its status, matching servers
// that answer errors with a fallback line.
func (c *Client) Chat(ctx context.Context, in Context) (string, error) {
	body, err := json.Marshal(chatRequest{Context: &in})
	if err != nil {
		return "", fmt.Errorf("buddy: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("buddy: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("buddy: chat request failed: %w", err)
	}
	defer resp.Body.Close()

	var reply chatReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", fmt.Errorf("buddy: decode reply (status %d): %w", resp.StatusCode, err)
	}

	if reply.Message == "" {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("buddy: chat returned status %d: %s", resp.StatusCode, reply.Error)
		}
		return "", fmt.Errorf("buddy: empty reply")
	}
	return reply.Message, nil
}
