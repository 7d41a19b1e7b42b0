package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/medkb/sympta-cli/internal/config"
)

// RecognizeClient talks to an OpenAI-compatible transcription endpoint:
//
//	POST {baseURL}/audio/transcriptions   (multipart: file, model, language)
//	→ {"text": "..."}
type RecognizeClient struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

// NewRecognizeClient constructs a transcription client.
func NewRecognizeClient(baseURL, model, apiKey string) *RecognizeClient {
	return &RecognizeClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

// NewRecognizerFromConfig wires a Recognizer from the config block, or nil
// when the block is disabled. The transcription model comes from
// SYMPTA_STT_MODEL, defaulting to whisper-1.
func NewRecognizerFromConfig(p config.Provider) (Recognizer, error) {
	if !p.Enabled {
		return nil, nil
	}
	if p.BaseURL == "" {
		return nil, fmt.Errorf("speech provider enabled but base_url is not set")
	}
	apiKey, err := config.GetConfigValue("SYMPTA_SPEECH_API_KEY")
	if err != nil {
		return nil, err
	}
	model, err := config.GetConfigValue("SYMPTA_STT_MODEL")
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = "whisper-1"
	}
	return NewRecognizeClient(p.BaseURL, model, apiKey), nil
}

func (c *RecognizeClient) Transcribe(ctx context.Context, audioPath, lang string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("cannot open audio file %s: %w", audioPath, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("cannot read audio file %s: %w", audioPath, err)
	}
	if err := mw.WriteField("model", c.model); err != nil {
		return "", err
	}
	if lang != "" {
		if err := mw.WriteField("language", lang); err != nil {
			return "", err
		}
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("transcription request failed: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("cannot parse transcription response: %w", err)
	}
	if strings.TrimSpace(parsed.Text) == "" {
		return "", fmt.Errorf("transcription response missing text")
	}
	return parsed.Text, nil
}
