package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/medkb/sympta-cli/internal/config"
)

// Client talks to a LibreTranslate-compatible REST endpoint:
//
//	POST {baseURL}/translate
//	{"q": "...", "source": "hi", "target": "en", "format": "text"}
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient constructs a translation client for baseURL. apiKey may be empty
// for keyless instances.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// NewFromConfig wires a Translator from the config block, reading the API key
// from the environment or ~/.sympta/.env. A disabled block yields Noop.
func NewFromConfig(p config.Provider) (Translator, error) {
	if !p.Enabled {
		return Noop{}, nil
	}
	if p.BaseURL == "" {
		return nil, fmt.Errorf("translation provider enabled but base_url is not set")
	}
	apiKey, err := config.GetConfigValue("SYMPTA_TRANSLATE_API_KEY")
	if err != nil {
		return nil, err
	}
	return NewClient(p.BaseURL, apiKey), nil
}

func (c *Client) Translate(ctx context.Context, text, from, to string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("cannot translate empty text")
	}

	reqBody := map[string]any{
		"q":      text,
		"source": from,
		"target": to,
		"format": "text",
	}
	if c.apiKey != "" {
		reqBody["api_key"] = c.apiKey
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("translate request failed: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("cannot parse translate response: %w", err)
	}
	if parsed.TranslatedText == "" {
		return "", fmt.Errorf("translate response missing translatedText")
	}
	return parsed.TranslatedText, nil
}
