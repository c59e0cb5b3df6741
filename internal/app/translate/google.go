package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"

	"medconnect/internal/pkg/logx"
)

const (
	requestTimeout = 15 * time.Second
	maxRetries     = 3
	retryBase      = time.Second
	maxErrorBody   = 4 << 10
)

// APIError is a non-success answer from the translation API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("translation api returned %d: %s", e.StatusCode, e.Message)
}

// GoogleClient talks to the Cloud Translation v2 REST API.
type GoogleClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	backoff    func() retry.Backoff
	logger     zerolog.Logger
}

// NewGoogleClient returns a client for baseURL, e.g.
// https://translation.googleapis.com/language/translate/v2.
func NewGoogleClient(baseURL, apiKey string) *GoogleClient {
	return &GoogleClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBase))
		},
		logger: logx.Component("translate.google"),
	}
}

type detectResponse struct {
	Data struct {
		Detections [][]struct {
			Language   string  `json:"language"`
			Confidence float64 `json:"confidence"`
		} `json:"detections"`
	} `json:"data"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Detect returns the language code the API assigns to text.
func (c *GoogleClient) Detect(ctx context.Context, text string) (string, error) {
	var out detectResponse
	if err := c.post(ctx, "/detect", map[string]any{"q": text}, &out); err != nil {
		return "", err
	}

	if len(out.Data.Detections) == 0 || len(out.Data.Detections[0]) == 0 {
		return "", ErrUndetermined
	}
	return out.Data.Detections[0][0].Language, nil
}

// Translate converts text from source to target as plain text.
func (c *GoogleClient) Translate(ctx context.Context, text, source, target string) (string, error) {
	body := map[string]any{
		"q":      text,
		"source": source,
		"target": target,
		"format": "text",
	}

	var out translateResponse
	if err := c.post(ctx, "", body, &out); err != nil {
		return "", err
	}

	if len(out.Data.Translations) == 0 {
		return "", &APIError{StatusCode: http.StatusBadGateway, Message: "empty translation list"}
	}
	return out.Data.Translations[0].TranslatedText, nil
}

// post sends a JSON request, retrying with exponential backoff while the API answers 429.
func (c *GoogleClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := c.baseURL + path + "?key=" + url.QueryEscape(c.apiKey)

	attempt := 0
	return retry.Do(ctx, c.backoff(), func(ctx context.Context) error {
		attempt++

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		res, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("translation request failed: %w", err)
		}
		defer res.Body.Close()

		if res.StatusCode == http.StatusOK {
			if err := json.NewDecoder(res.Body).Decode(out); err != nil {
				return fmt.Errorf("failed to decode translation response: %w", err)
			}
			return nil
		}

		apiErr := &APIError{StatusCode: res.StatusCode, Message: readErrorMessage(res.Body)}
		if res.StatusCode == http.StatusTooManyRequests {
			c.logger.Warn().Int("attempt", attempt).Msg("Translation API rate limited, backing off")
			return retry.RetryableError(apiErr)
		}
		return apiErr
	})
}

func readErrorMessage(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))

	var parsed errorResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return strings.TrimSpace(string(raw))
}
