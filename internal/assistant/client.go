package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ubizy/internal/keyring"
)

// systemInstruction is sent with every remote request. The structured
// intent extractor never goes through the remote service; this client
// backs the free-form "general assistant" surface only.
const systemInstruction = `You are Ubizy Assistant, a helpful AI assistant for a productivity and task management app.
Your goal is to help users manage their tasks, events, and habits effectively.
Provide concise, helpful responses focused on productivity, time management, and organization.
When users ask about creating tasks, events, or habits, try to extract relevant details like title, date, time, and category.
Be friendly and encouraging, but keep responses brief and to the point.`

// ChatTurn is one entry of the conversation history sent to the remote
// service.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	System   string     `json:"system"`
	Messages []ChatTurn `json:"messages"`
}

type chatResponse struct {
	Content string `json:"content"`
}

// Client calls the external text-generation service over a plain
// request/response HTTP exchange. Failures surface as errors for the
// caller to degrade into an apologetic chat message; nothing is retried.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Generate sends the conversation history and returns the service's reply.
func (c *Client) Generate(ctx context.Context, history []ChatTurn) (string, error) {
	if c.endpoint == "" {
		return "", fmt.Errorf("assistant endpoint not configured")
	}

	token, err := keyring.GetAssistantToken()
	if err != nil {
		return "", fmt.Errorf("failed to read assistant token: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		System:   systemInstruction,
		Messages: history,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("assistant returned status %d: %s", resp.StatusCode, string(data))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode assistant response: %w", err)
	}
	return out.Content, nil
}
