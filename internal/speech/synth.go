package speech

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

// SynthClient talks to an OpenAI-compatible speech endpoint:
//
//	POST {baseURL}/audio/speech
//	{"model": "...", "input": "...", "voice": "...", "response_format": "mp3"}
//
// and receives raw mp3 bytes.
type SynthClient struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

// NewSynthClient constructs a TTS client.
func NewSynthClient(baseURL, model, apiKey string) *SynthClient {
	return &SynthClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// NewSynthFromConfig wires a Synthesizer from the config block, or nil when
// the block is disabled (callers treat nil as "skip speech output").
func NewSynthFromConfig(p config.Provider) (Synthesizer, error) {
	if !p.Enabled {
		return nil, nil
	}
	if p.BaseURL == "" || p.Model == "" {
		return nil, fmt.Errorf("speech provider enabled but base_url or model is not set")
	}
	apiKey, err := config.GetConfigValue("SYMPTA_SPEECH_API_KEY")
	if err != nil {
		return nil, err
	}
	return NewSynthClient(p.BaseURL, p.Model, apiKey), nil
}

func (c *SynthClient) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("cannot synthesize empty text")
	}

	reqBody := map[string]any{
		"model":           c.model,
		"input":           text,
		"voice":           "alloy",
		"response_format": "mp3",
	}
	if lang != "" {
		reqBody["language"] = lang
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/speech", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return nil, fmt.Errorf("speech request failed: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	audio, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, fmt.Errorf("cannot read speech response: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("speech response is empty")
	}
	return audio, nil
}
