package window

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gatherly/rsvp-backend-go/internal/config"
	"github.com/gatherly/rsvp-backend-go/internal/domain/invite"
)

// Parser turns free-form scheduling text into a concrete time window
type Parser interface {
	Parse(ctx context.Context, text string, reference time.Time) (start time.Time, end time.Time, err error)
}

type httpParser struct {
	cfg    config.WindowConfig
	client *http.Client
}

// NewParser creates a parser backed by the external window-parsing service.
// When no parser URL is configured it falls back to accepting RFC3339
// "start/end" pairs, which keeps local development working offline.
func NewParser(cfg config.WindowConfig) Parser {
	return &httpParser{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type parseRequest struct {
	Text      string `json:"text"`
	Reference string `json:"reference"`
}

type parseResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (p *httpParser) Parse(ctx context.Context, text string, reference time.Time) (time.Time, time.Time, error) {
	if p.cfg.ParserURL == "" {
		return parseLiteral(text)
	}

	payload, err := json.Marshal(parseRequest{
		Text:      text,
		Reference: reference.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to marshal parse request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.ParserURL, bytes.NewReader(payload))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to create parse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("window parser unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return time.Time{}, time.Time{}, invite.ErrWindowParseFailed
	}

	var parsed parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return time.Time{}, time.Time{}, invite.ErrWindowParseFailed
	}

	start, err := time.Parse(time.RFC3339, parsed.Start)
	if err != nil {
		return time.Time{}, time.Time{}, invite.ErrWindowParseFailed
	}
	end, err := time.Parse(time.RFC3339, parsed.End)
	if err != nil {
		return time.Time{}, time.Time{}, invite.ErrWindowParseFailed
	}

	return start, end, nil
}

// parseLiteral accepts "2026-01-02T18:00:00Z/2026-01-02T20:00:00Z" style input
func parseLiteral(text string) (time.Time, time.Time, error) {
	parts := strings.SplitN(strings.TrimSpace(text), "/", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, invite.ErrWindowParseFailed
	}

	start, err := time.Parse(time.RFC3339, strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, time.Time{}, invite.ErrWindowParseFailed
	}
	end, err := time.Parse(time.RFC3339, strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, time.Time{}, invite.ErrWindowParseFailed
	}

	return start, end, nil
}
