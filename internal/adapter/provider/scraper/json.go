package scraper

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Lenient accessors over raw JSON values. None of them fail: a value of the
// wrong type reads as the zero value.

func asObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	raw = unwrapString(raw)
	var obj map[string]json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &obj) != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	raw = unwrapString(raw)
	var arr []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &arr) != nil || arr == nil {
		return nil, false
	}
	return arr, true
}

// asString reads strings as-is and renders numbers and booleans as text.
func asString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if json.Unmarshal(raw, &s) == nil {
			return s
		}
	case 't', 'f':
		var b bool
		if json.Unmarshal(raw, &b) == nil {
			return strconv.FormatBool(b)
		}
	default:
		var n json.Number
		if json.Unmarshal(raw, &n) == nil {
			return n.String()
		}
	}
	return ""
}

// asFare reads a number or numeric string. Anything else, including null,
// is absent.
func asFare(raw json.RawMessage) *float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == 'n' || raw[0] == 't' || raw[0] == 'f' {
		return nil
	}

	var f float64
	if raw[0] == '"' {
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		f = parsed
	} else if json.Unmarshal(raw, &f) != nil {
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func asBool(raw json.RawMessage) bool {
	switch strings.ToLower(asString(raw)) {
	case "true", "1":
		return true
	default:
		return false
	}
}

// unwrapString decodes a JSON string whose content is itself JSON.
func unwrapString(raw json.RawMessage) json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return raw
	}
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return raw
	}
	return json.RawMessage(strings.TrimSpace(s))
}
