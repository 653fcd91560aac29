package directory

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Model output is free text, so field decoders coerce instead of failing.
// A value of the wrong shape decodes to the zero value.

type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			*s = ""
			return nil
		}
		*s = looseString(strings.TrimSpace(v))
	case '[':
		var items looseStrings
		_ = items.UnmarshalJSON(data)
		*s = looseString(strings.Join(items, ", "))
	case '{':
		*s = ""
	default:
		// numbers and booleans keep their literal text
		*s = looseString(string(data))
	}
	return nil
}

type looseInt int

func (n *looseInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*n = 0
	if len(data) == 0 {
		return nil
	}
	text := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return nil
		}
		text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "+"))
		text = strings.ReplaceAll(text, ",", "")
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = looseInt(int(f))
	return nil
}

type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*b = false
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case 't':
		*b = string(data) == "true"
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return nil
		}
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "y", "1", "available", "24/7":
			*b = true
		}
	case '1':
		*b = string(data) == "1"
	}
	return nil
}

type looseStrings []string

func (l *looseStrings) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*l = nil
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return nil
		}
		for _, part := range strings.Split(single, ",") {
			if clean := strings.TrimSpace(part); clean != "" {
				*l = append(*l, clean)
			}
		}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			var s looseString
			_ = s.UnmarshalJSON(item)
			if s != "" {
				out = append(out, string(s))
			}
		}
		*l = out
	}
	return nil
}
