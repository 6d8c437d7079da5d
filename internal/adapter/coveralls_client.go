package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	m "jacov.dev/pkg/jacov/internal/model"
)

// DefaultCoverallsTimeout bounds a single upload.
const DefaultCoverallsTimeout = 10 * time.Second

const jsonFilePart = "json_file"

// maxErrorBody caps how much of an error response is echoed back.
const maxErrorBody = 64 * 1024

// CoverallsClient uploads a job payload.
type CoverallsClient interface {
	Send(ctx context.Context, endpoint string, req m.Request) error
}

// HTTPCoverallsClient posts jobs to the Coveralls jobs API.
type HTTPCoverallsClient struct {
	client *http.Client
}

// NewHTTPCoverallsClient constructs a client whose requests time out after timeout.
// A non-positive timeout selects DefaultCoverallsTimeout.
func NewHTTPCoverallsClient(timeout time.Duration) *HTTPCoverallsClient {
	if timeout <= 0 {
		timeout = DefaultCoverallsTimeout
	}

	return &HTTPCoverallsClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Send encodes req as JSON and posts it as the json_file multipart part.
func (c *HTTPCoverallsClient) Send(ctx context.Context, endpoint string, req m.Request) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	body, contentType, err := multipartPayload(payload)
	if err != nil {
		return fmt.Errorf("build multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set("Content-Type", contentType)

	slog.Info("sending payload to coveralls", "endpoint", endpoint, "files", len(req.SourceFiles))
	slog.Debug("coveralls payload", "json", string(payload))

	res, err := c.client.Do(httpReq)
	if err != nil {
		slog.Error("Failed to reach coveralls", "endpoint", endpoint, "error", err)
		return fmt.Errorf("send payload: %w", err)
	}

	defer func() {
		_ = res.Body.Close()
	}()

	if res.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		slog.Error("Coveralls rejected payload", "status", res.StatusCode)

		return fmt.Errorf("coveralls returned HTTP %d: %s", res.StatusCode, strings.TrimSpace(string(text)))
	}

	slog.Info("OK")

	return nil
}

func multipartPayload(payload []byte) (*bytes.Buffer, string, error) {
	var body bytes.Buffer

	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, jsonFilePart, jsonFilePart))
	header.Set("Content-Type", "application/json; charset=UTF-8")

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}

	if _, err := part.Write(payload); err != nil {
		return nil, "", err
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return &body, writer.FormDataContentType(), nil
}
