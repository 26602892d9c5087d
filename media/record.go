// Package media holds the typed objects built from decoded Subsonic API
// responses: songs, albums, artists, playlists, podcasts and the index
// groupings the browsing endpoints return.
package media

import (
	"encoding/json"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Record is one decoded JSON fragment of a server response: a mapping
// from field name to JSON-typed value. All entity constructors consume
// Records, and ToRecord methods reproduce them.
//
// Third-party server implementations are known to omit documented
// fields and to encode numbers as strings, so all field access goes
// through total accessors that coerce what they find and fall back to
// a zero value. Required fields are fetched with Require* accessors
// which log a warning on absence instead of failing.
type Record map[string]any

// Has reports whether the field is present, even if null.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Str returns the string value for key, or "" when absent.
// Non-string scalars are formatted.
func (r Record) Str(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return formatNumber(v)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

// Int returns the integer value for key, or 0 when absent or not
// coercible.
func (r Record) Int(key string) int {
	return r.IntOr(key, 0)
}

// IntOr returns the integer value for key, or def when absent or not
// coercible.
func (r Record) IntOr(key string, def int) int {
	switch v := r[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Int64 returns the 64-bit integer value for key, or 0 when absent.
// Used for sizes and millisecond positions which can exceed 32 bits.
func (r Record) Int64(key string) int64 {
	switch v := r[key].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return 0
}

// Bool returns the boolean value for key, or false when absent.
func (r Record) Bool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}

// Child returns the nested Record under key, or nil when absent.
func (r Record) Child(key string) Record {
	switch v := r[key].(type) {
	case map[string]any:
		return Record(v)
	case Record:
		return v
	}
	return nil
}

// List returns the sequence of nested Records under key. A missing key
// yields an empty slice, never nil dereferences. Some servers return a
// bare object where the protocol documents a one-element list; that
// shape is normalized here.
func (r Record) List(key string) []Record {
	switch v := r[key].(type) {
	case []any:
		out := make([]Record, 0, len(v))
		for _, entry := range v {
			if m, ok := entry.(map[string]any); ok {
				out = append(out, Record(m))
			}
		}
		return out
	case []Record:
		return v
	case map[string]any:
		return []Record{Record(v)}
	}
	return []Record{}
}

// Strings returns the value under key coerced to a list of strings.
func (r Record) Strings(key string) []string {
	switch v := r[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return v
	case string:
		return []string{v}
	}
	return nil
}

// RequireStr returns the string value for a required field. Absence is
// a schema violation on the server side; it is reported as a warning
// and yields "" rather than failing the whole decode.
func (r Record) RequireStr(entity, key string) string {
	if !r.Has(key) {
		warnMissing(entity, key)
	}
	return r.Str(key)
}

// RequireInt is RequireStr for integer fields.
func (r Record) RequireInt(entity, key string) int {
	if !r.Has(key) {
		warnMissing(entity, key)
	}
	return r.Int(key)
}

func warnMissing(entity, key string) {
	log.Warn().
		Str("entity", entity).
		Str("field", key).
		Msg("Server response is missing a required field")
}

// formatNumber renders a float64 the way the JSON source wrote it,
// without a trailing .0 for integral values.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// setIf stores val under key only when it is non-zero. ToRecord methods
// use it so that absent optional fields stay absent on the way back
// out.
func (r Record) setIf(key string, val any) {
	switch v := val.(type) {
	case string:
		if v != "" {
			r[key] = v
		}
	case int:
		if v != 0 {
			r[key] = v
		}
	case int64:
		if v != 0 {
			r[key] = v
		}
	case bool:
		if v {
			r[key] = v
		}
	default:
		if val != nil {
			r[key] = val
		}
	}
}
