package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/zayeemZaki/ai-memory-app/internal/core"
)

// Gateway is the typed client for the knowledge-graph backend. Every
// request carries the shared secret in the x-api-key header. It is an
// explicitly constructed, injected dependency; nothing here is global.
type Gateway struct {
	client    *http.Client
	baseURL   string
	apiSecret string
}

func New(baseURL, apiSecret string) *Gateway {
	return &Gateway{
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
		baseURL:   baseURL,
		apiSecret: apiSecret,
	}
}

// Chat submits a conversational turn. The backend classifies the intent
// and either mutates the graph or answers from it.
func (g *Gateway) Chat(ctx context.Context, req core.ChatRequest) (core.ChatResponse, error) {
	resp, err := g.doRequest(ctx, http.MethodPost, "/chat", req)
	if err != nil {
		return core.ChatResponse{}, err
	}
	defer resp.Body.Close()

	var out core.ChatResponse
	if err := parseResponse(resp, &out); err != nil {
		return core.ChatResponse{}, err
	}
	return out, nil
}

// Graph fetches the full snapshot visible to the given session: the
// global layer plus the session-private overlay.
func (g *Gateway) Graph(ctx context.Context, sessionID string) (core.GraphSnapshot, error) {
	path := "/graph?session_id=" + url.QueryEscape(sessionID)
	resp, err := g.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return core.GraphSnapshot{}, err
	}
	defer resp.Body.Close()

	var out core.GraphSnapshot
	if err := parseResponse(resp, &out); err != nil {
		return core.GraphSnapshot{}, err
	}
	return out, nil
}

// Health pings the backend. Used once at startup to fail fast on a bad
// base URL or secret.
func (g *Gateway) Health(ctx context.Context) error {
	resp, err := g.doRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var out struct {
		Status string `json:"status"`
	}
	return parseResponse(resp, &out)
}

func (g *Gateway) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", core.AppUserAgent)
	req.Header.Set("x-api-key", g.apiSecret)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	return resp, nil
}

func parseResponse(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// FastAPI error bodies carry the cause in "detail".
		var apiErr struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Detail != "" {
			return fmt.Errorf("http %d: %s", resp.StatusCode, apiErr.Detail)
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
