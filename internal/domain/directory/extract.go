package directory

import (
	"encoding/json"
	"regexp"
	"strings"

	apperrors "github.com/yanqian/medifind/pkg/errors"
)

// EmptyReason explains why Extract produced no payload.
type EmptyReason string

const (
	ReasonNoFence       EmptyReason = "no_fence"
	ReasonMalformedJSON EmptyReason = "malformed_json"
)

// Payload is either Empty or Parsed. The zero value is Empty with no reason.
type Payload struct {
	raw    json.RawMessage
	reason EmptyReason
	err    error
}

// ParsedPayload wraps a syntactically valid JSON value.
func ParsedPayload(raw json.RawMessage) Payload {
	return Payload{raw: raw}
}

// EmptyPayload records why nothing could be extracted.
func EmptyPayload(reason EmptyReason, err error) Payload {
	return Payload{reason: reason, err: err}
}

// IsEmpty reports whether no JSON value was extracted.
func (p Payload) IsEmpty() bool {
	return len(p.raw) == 0
}

// Raw returns the parsed JSON value, nil when empty.
func (p Payload) Raw() json.RawMessage {
	return p.raw
}

// Reason is set only for empty payloads.
func (p Payload) Reason() EmptyReason {
	return p.reason
}

// Err describes the extraction failure as a malformed_payload AppError, nil when parsed.
func (p Payload) Err() error {
	if !p.IsEmpty() {
		return nil
	}
	msg := "model output has no structured payload"
	if p.reason == ReasonMalformedJSON {
		msg = "model output payload is not valid json"
	}
	return apperrors.Wrap(apperrors.CodeMalformedPayload, msg, p.err)
}

// IsArray reports whether the parsed value is a JSON array.
func (p Payload) IsArray() bool {
	return firstByte(p.raw) == '['
}

// The closing fence must start a line so fences quoted inside string values
// do not end the block.
var jsonFence = regexp.MustCompile("(?s)```json[ \t]*\r?\n(.*?)\r?\n[ \t]*```")

// Extract locates the first ```json fenced block in raw and parses its body.
// It never panics; absent or malformed blocks yield an empty payload.
func Extract(raw string) Payload {
	match := jsonFence.FindStringSubmatch(raw)
	if match == nil {
		return EmptyPayload(ReasonNoFence, nil)
	}
	body := strings.TrimSpace(match[1])
	if body == "" {
		return EmptyPayload(ReasonMalformedJSON, nil)
	}
	var value json.RawMessage
	if err := json.Unmarshal([]byte(body), &value); err != nil {
		return EmptyPayload(ReasonMalformedJSON, err)
	}
	return ParsedPayload(value)
}

func firstByte(raw json.RawMessage) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return b
		}
	}
	return 0
}
