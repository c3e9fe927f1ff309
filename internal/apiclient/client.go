// Package apiclient is a minimal client for the Studify API, used by
// the terminal pomodoro timer.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/studify/studify-api/internal/pomodoro"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Login authenticates and stores the bearer token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body, err := json.Marshal(map[string]string{
		"email":      email,
		"contrasena": password,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed: status %d", resp.StatusCode)
	}

	var parsed struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if parsed.Token == "" {
		return fmt.Errorf("login failed: empty token")
	}

	c.token = parsed.Token
	return nil
}

// RegisterSession persists one completed pomodoro interval.
func (c *Client) RegisterSession(ctx context.Context, s pomodoro.Session) error {
	body, err := json.Marshal(map[string]any{
		"mode":     s.Mode,
		"duration": s.Duration,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/pomodoro/register", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("register session failed: status %d", resp.StatusCode)
	}

	return nil
}
