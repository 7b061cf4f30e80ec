package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound signals that the resource does not exist yet on the backend.
// It is a first-class outcome, not a failure: callers use it to enter the
// "create" path.
var ErrNotFound = errors.New("resource not found")

// GenericFailureMessage is the last resort when nothing readable can be
// extracted from an error body.
const GenericFailureMessage = "Something went wrong. Please try again."

type FailureKind string

const (
	FailureKindValidation FailureKind = "validation"
	FailureKindHTTP       FailureKind = "http"
	FailureKindUnknown    FailureKind = "unknown"
)

// Failure is the tagged union of error shapes the portal deals in: local
// validation rejections, HTTP errors with a body, and everything else.
type Failure struct {
	Kind   FailureKind
	Status int
	Fields []string
	Body   []byte
	Raw    string
}

func (f *Failure) Error() string {
	return f.Message()
}

// NewValidationFailure builds a local validation rejection. These never
// reach the network.
func NewValidationFailure(message string, fields ...string) *Failure {
	return &Failure{
		Kind:   FailureKindValidation,
		Fields: fields,
		Raw:    message,
	}
}

func NewHTTPFailure(status int, body []byte) *Failure {
	return &Failure{
		Kind:   FailureKindHTTP,
		Status: status,
		Body:   body,
	}
}

func NewUnknownFailure(raw string) *Failure {
	return &Failure{
		Kind: FailureKindUnknown,
		Raw:  raw,
	}
}

// Message renders a human-readable description. It is total over the union
// and never fails itself: any problem while digging through the body falls
// back to the generic string.
func (f *Failure) Message() (message string) {
	defer func() {
		if r := recover(); r != nil {
			message = GenericFailureMessage
		}
	}()

	if f == nil {
		return GenericFailureMessage
	}

	switch f.Kind {
	case FailureKindValidation:
		if f.Raw != "" {
			return f.Raw
		}
		return GenericFailureMessage
	case FailureKindHTTP:
		return extractBodyMessage(f.Body)
	default:
		if f.Raw != "" {
			return f.Raw
		}
		return GenericFailureMessage
	}
}

// extractBodyMessage applies the extraction cascade over an error body:
// an array-of-objects detail field (each entry's msg, joined with ", "),
// a single-object detail.msg, any other detail JSON-stringified, a top-level
// message field, then the generic fallback.
func extractBodyMessage(body []byte) string {
	if len(body) == 0 {
		return GenericFailureMessage
	}

	var envelope struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return GenericFailureMessage
	}

	if len(envelope.Detail) > 0 && string(envelope.Detail) != "null" {
		if msg := detailMessage(envelope.Detail); msg != "" {
			return msg
		}
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return GenericFailureMessage
}

func detailMessage(detail json.RawMessage) string {
	var items []map[string]any
	if err := json.Unmarshal(detail, &items); err == nil {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			if msg, ok := item["msg"].(string); ok && msg != "" {
				parts = append(parts, msg)
				continue
			}
			parts = append(parts, stringify(item))
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
		return ""
	}

	var object map[string]any
	if err := json.Unmarshal(detail, &object); err == nil {
		if msg, ok := object["msg"].(string); ok && msg != "" {
			return msg
		}
		return stringify(object)
	}

	var plain string
	if err := json.Unmarshal(detail, &plain); err == nil {
		return plain
	}

	return stringify(json.RawMessage(detail))
}

func stringify(v any) string {
	encoded, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(encoded)
}
