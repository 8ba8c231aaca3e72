package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/zechsoft/new-trust-sub003/internal/config"
)

// Client talks to the external REST backend that owns causes and the hero banner.
// Timeout bounds JSON calls and UploadTimeout bounds uploads; both are applied
// per call through the request context, so HTTP carries no client-wide limit.
type Client struct {
	BaseURL       string
	Token         string
	HTTP          *http.Client
	Timeout       time.Duration
	UploadTimeout time.Duration
	Log           zerolog.Logger
}

func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	return &Client{
		BaseURL:       cfg.UpstreamURL,
		Token:         cfg.UpstreamToken,
		HTTP:          &http.Client{},
		Timeout:       cfg.UpstreamTimeout,
		UploadTimeout: cfg.UploadTimeout,
		Log:           log.With().Str("component", "upstream").Logger(),
	}
}

// APIError is returned for any response with status >= 400.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream error: %s - %s", e.Status, e.Body)
}

func (c *Client) sendRequest(ctx context.Context, method, path string, body io.Reader, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Log.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	c.Log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("upstream call")

	if resp.StatusCode >= 400 {
		return respBody, &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Body: strings.TrimSpace(string(respBody))}
	}
	return respBody, nil
}

func (c *Client) withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out interface{}) error {
	ctx, cancel := c.withTimeout(ctx, c.Timeout)
	defer cancel()

	var body io.Reader
	headers := map[string]string{}
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
		headers["Content-Type"] = "application/json"
	}

	respBody, err := c.sendRequest(ctx, method, path, body, headers)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return DecodeEnvelope(respBody, out)
}

func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	return c.sendJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) PostJSON(ctx context.Context, path string, in, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPost, path, in, out)
}

func (c *Client) PutJSON(ctx context.Context, path string, in, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPut, path, in, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	ctx, cancel := c.withTimeout(ctx, c.Timeout)
	defer cancel()
	_, err := c.sendRequest(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// ErrEmptyBody is returned by DecodeEnvelope when there is nothing to decode.
var ErrEmptyBody = errors.New("upstream: empty response body")

// DecodeEnvelope decodes either a bare JSON value or one wrapped as
// {"data": ...}.
func DecodeEnvelope(body []byte, out interface{}) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ErrEmptyBody
	}
	if body[0] == '{' {
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
			return json.Unmarshal(env.Data, out)
		}
	}
	return json.Unmarshal(body, out)
}

// UploadFile posts data as a multipart form file and returns the URL the
// backend stored it under. The call is bounded by UploadTimeout.
func (c *Client) UploadFile(ctx context.Context, path, field, filename, mimeType string, data []byte) (string, error) {
	ctx, cancel := c.withTimeout(ctx, c.UploadTimeout)
	defer cancel()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(h)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	respBody, err := c.sendRequest(ctx, http.MethodPost, path, body, map[string]string{
		"Content-Type": writer.FormDataContentType(),
	})
	if err != nil {
		return "", err
	}

	var resp uploadResponse
	if err := DecodeEnvelope(respBody, &resp); err != nil {
		return "", fmt.Errorf("upstream: decode upload response: %w", err)
	}
	url := resp.url()
	if url == "" {
		return "", errors.New("upstream: upload response has no url")
	}
	return url, nil
}

type uploadResponse struct {
	URL       string `json:"url"`
	ImageURL  string `json:"imageUrl"`
	VideoURL  string `json:"videoUrl"`
	SecureURL string `json:"secure_url"`
}

func (r uploadResponse) url() string {
	for _, u := range []string{r.URL, r.ImageURL, r.VideoURL, r.SecureURL} {
		if u != "" {
			return u
		}
	}
	return ""
}
