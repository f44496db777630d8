// Package publish posts composed content to X through the v2 API.
package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dghubble/oauth1"
	"golang.org/x/time/rate"

	"github.com/newswire-labs/chirp/internal/config"
	"github.com/newswire-labs/chirp/internal/logging"
)

const (
	defaultBaseURL = "https://api.twitter.com"
	requestTimeout = 15 * time.Second

	// platformLimit is the hard X character cap.
	platformLimit = 280
)

// Error classes callers can branch on.
var (
	ErrUnauthorized = errors.New("authorization failed - check API credentials")
	ErrRateLimited  = errors.New("rate limit exceeded")
)

// Client posts to X with OAuth 1.0a user-context auth.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// NewClient builds a client from the configured credentials. Requests
// are signed with OAuth 1.0a; the v2 create-tweet endpoint does not
// accept app-only bearer auth.
func NewClient(creds config.TwitterConfig) *Client {
	oaConfig := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)

	httpClient := oaConfig.Client(oauth1.NoContext, token)
	httpClient.Timeout = requestTimeout

	return &Client{
		httpClient: httpClient,
		// Client-side cap well under the API quota so back-to-back
		// cycles cannot burst.
		limiter: rate.NewLimiter(rate.Every(time.Minute), 2),
		baseURL: defaultBaseURL,
	}
}

// Result describes a successful post.
type Result struct {
	TweetID string
	Content string
}

// Post publishes the given text. Content over the platform limit is
// truncated rather than rejected.
func (c *Client) Post(ctx context.Context, content string) (*Result, error) {
	if runes := []rune(content); len(runes) > platformLimit {
		logging.Warn("content exceeds platform limit, truncating", "length", len(runes))
		content = string(runes[:platformLimit-3]) + "..."
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(map[string]string{"text": content})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/2/tweets", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to post tweet: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		// fall through to decode
	case http.StatusForbidden, http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, readErrorBody(resp.Body))
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, readErrorBody(resp.Body))
	}

	var out struct {
		Data struct {
			ID   string `json:"id"`
			Text string `json:"text"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	logging.Info("posted tweet", "tweet_id", out.Data.ID)
	return &Result{TweetID: out.Data.ID, Content: content}, nil
}

// Verify checks the credentials by loading the authenticated user and
// returns the account username.
func (c *Client) Verify(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/2/users/me", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to verify credentials: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", fmt.Errorf("%w: %s", ErrUnauthorized, readErrorBody(resp.Body))
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, readErrorBody(resp.Body))
	}

	var out struct {
		Data struct {
			Username string `json:"username"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return out.Data.Username, nil
}

// readErrorBody returns a short snippet of an error response for
// wrapping into error messages.
func readErrorBody(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil || len(data) == 0 {
		return "(no body)"
	}
	return string(bytes.TrimSpace(data))
}
