package opensonic

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// params accumulates the scalar parameters of one operation. The set
// helpers skip zero values, so a parameter the caller left unset is
// never sent; the server's own defaults differ from an explicit empty
// value.
type params struct {
	v url.Values
}

func newParams() params {
	return params{v: url.Values{}}
}

func (p params) str(key, val string) {
	if val != "" {
		p.v.Set(key, val)
	}
}

func (p params) int(key string, val int) {
	if val != 0 {
		p.v.Set(key, strconv.Itoa(val))
	}
}

func (p params) int64(key string, val int64) {
	if val != 0 {
		p.v.Set(key, strconv.FormatInt(val, 10))
	}
}

func (p params) float(key string, val *float64) {
	if val != nil {
		p.v.Set(key, strconv.FormatFloat(*val, 'f', -1, 64))
	}
}

// intPtr sends the value even when it is zero; used for zero-based
// indexes where 0 is meaningful and nil means absent.
func (p params) intPtr(key string, val *int) {
	if val != nil {
		p.v.Set(key, strconv.Itoa(*val))
	}
}

// flag always sends the boolean; used where the server default differs
// from false or the operation documents both values.
func (p params) flag(key string, val bool) {
	p.v.Set(key, strconv.FormatBool(val))
}

// boolIf sends the boolean only when true, leaving the server default
// in force otherwise.
func (p params) boolIf(key string, val bool) {
	if val {
		p.v.Set(key, "true")
	}
}

// millis converts a seconds-based timestamp to the protocol's
// milliseconds-since-epoch. The zero time is pruned. This is the only
// place request time units are bridged.
func (p params) millis(key string, t time.Time) {
	if !t.IsZero() {
		p.v.Set(key, strconv.FormatInt(t.UnixMilli(), 10))
	}
}

// listParam is one named repeated-key list. Each value appears as its
// own occurrence of the key, in order; the form encoding cannot
// express this through single-valued assignment.
type listParam struct {
	key    string
	values []string
}

// apiRequest is a transport-ready request descriptor. Building one
// never performs I/O.
type apiRequest struct {
	op     string
	values url.Values
	bulk   bool
}

// buildRequest merges the base parameters (format, version, client
// name, credentials) with the operation's scalars and appends each
// repeated-list entry as its own key occurrence.
func buildRequest(cfg *Config, op string, p params, lists ...listParam) *apiRequest {
	v := url.Values{}
	v.Set("f", "json")
	v.Set("v", cfg.APIVersion)
	v.Set("c", cfg.AppName)
	authParams(cfg, v)

	for key, vals := range p.v {
		v[key] = append([]string(nil), vals...)
	}
	bulk := false
	for _, list := range lists {
		if len(list.values) > 0 {
			bulk = true
		}
		for _, val := range list.values {
			v.Add(list.key, val)
		}
	}
	return &apiRequest{op: op, values: v, bulk: bulk}
}

// endpointURL joins the configured base URL, port and server path with
// the operation name, optionally suffixed with the legacy .view
// extension.
func endpointURL(cfg *Config, op string) string {
	if cfg.UseViews {
		op += ".view"
	}
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	return base + ":" + strconv.Itoa(cfg.Port) + "/" + cfg.ServerPath + "/" + op
}

// httpRequest realizes the descriptor as a GET with query parameters
// or a form-encoded POST, per configuration. POST is the default:
// repeated-list payloads make GET URLs impractically long.
func httpRequest(ctx context.Context, cfg *Config, r *apiRequest) (*http.Request, error) {
	target := endpointURL(cfg, r.op)
	if cfg.UseGET {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, err
		}
		req.URL.RawQuery = r.values.Encode()
		return req, nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(r.values.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}
