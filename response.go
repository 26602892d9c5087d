package opensonic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/opensonic/opensonic-go/media"
)

// envelopeKey wraps every structured response.
const envelopeKey = "subsonic-response"

// execute runs the descriptor through the snapshot's transport. Bulk
// requests (those carrying repeated lists) use the generous-timeout
// client.
func execute(ctx context.Context, cfg *Config, r *apiRequest) (*http.Response, error) {
	req, err := httpRequest(ctx, cfg, r)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	log.Debug().
		Str("op", r.op).
		Str("url", req.URL.String()).
		Bool("bulk", r.bulk).
		Msg("Calling server")

	client := cfg.httpClient
	if r.bulk {
		client = cfg.bulkClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute %s: %w", r.op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%s returned HTTP status %d", r.op, resp.StatusCode)
	}
	return resp, nil
}

// request performs a structured call: execute, parse the JSON body,
// unwrap the envelope and check the reported status.
func (c *Connection) request(ctx context.Context, op string, p params, lists ...listParam) (media.Record, error) {
	cfg := c.cfg.Load()
	resp, err := execute(ctx, cfg, buildRequest(cfg, op, p, lists...))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	rec, err := unwrap(resp.Body)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// requestBinary performs a call whose success payload is an opaque
// byte stream. The response is classified by Content-Type: JSON and
// HTML mean the server reported something structured (usually an
// error) and the body is unwrapped and status-checked; everything else
// is returned untouched with the body still open for the caller to
// read and close.
func (c *Connection) requestBinary(ctx context.Context, op string, p params) (*http.Response, error) {
	cfg := c.cfg.Load()
	resp, err := execute(ctx, cfg, buildRequest(cfg, op, p))
	if err != nil {
		return nil, err
	}

	ct := resp.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") || strings.HasPrefix(ct, "text/html") {
		defer resp.Body.Close()
		rec, err := unwrap(resp.Body)
		if err != nil {
			return nil, err
		}
		if err := checkStatus(rec); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s answered with a structured body where a binary stream was expected", ErrDecode, op)
	}
	return resp, nil
}

// unwrap parses a structured body and strips the single top-level
// envelope key.
func unwrap(body io.Reader) (media.Record, error) {
	var payload map[string]any
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	inner, ok := payload[envelopeKey].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s envelope", ErrDecode, envelopeKey)
	}
	return media.Record(inner), nil
}

// checkStatus inspects the envelope's status field: "ok" passes,
// "failed" yields the error kind mapped from the reported code, and
// anything else is a malformed envelope.
func checkStatus(rec media.Record) error {
	switch rec.Str("status") {
	case "ok":
		return nil
	case "failed":
		detail := rec.Child("error")
		if detail == nil {
			return fmt.Errorf("%w: failed status without error detail", ErrDecode)
		}
		return serverError(detail.Int("code"), detail.Str("message"))
	default:
		return fmt.Errorf("%w: envelope status is neither ok nor failed", ErrDecode)
	}
}
