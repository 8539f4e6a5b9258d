package proxy

import (
	"bytes"
	"encoding/json"

	"github.com/storepulse/insight-api/internal/core/domain"
	"github.com/storepulse/insight-api/internal/core/idcodec"
)

// parseBody decodes a complete upstream JSON body into a generic map.
// Numbers stay json.Number so int64 ids survive without float rounding.
func parseBody(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, domain.ErrInternalServer
	}
	return m, nil
}

// asInt64 extracts an integer from a decoded JSON value.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		id, err := n.Int64()
		return id, err == nil
	case float64:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

// encodeIDField replaces a numeric identifier field with its opaque form,
// in place. Absent or non-numeric values are left untouched.
func encodeIDField(codec *idcodec.Codec, m map[string]any, key string) {
	if m == nil {
		return
	}
	if id, ok := asInt64(m[key]); ok {
		m[key] = codec.Encode(id)
	}
}

// encodeIDInList walks a list of objects re-encoding key in each element.
func encodeIDInList(codec *idcodec.Codec, list any, key string) {
	items, ok := list.([]any)
	if !ok {
		return
	}
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			encodeIDField(codec, obj, key)
		}
	}
}

// encodeIDInChild re-encodes key inside a nested object field.
func encodeIDInChild(codec *idcodec.Codec, m map[string]any, child, key string) {
	if obj, ok := m[child].(map[string]any); ok {
		encodeIDField(codec, obj, key)
	}
}
