package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// FieldError is a single form-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// EntityError is returned for 422 responses.
type EntityError struct {
	Status  int
	Payload json.RawMessage
	Errors  []FieldError
}

func (e *EntityError) Error() string {
	if len(e.Errors) == 0 {
		return "entity error"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		if fe.Field == "" {
			parts = append(parts, fe.Message)
			continue
		}
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "entity error: " + strings.Join(parts, "; ")
}

// AuthError is returned for 401 responses after the session has been torn down.
// RedirectTo is only set in server-render mode.
type AuthError struct {
	Status     int
	Payload    json.RawMessage
	RedirectTo string
}

func (e *AuthError) Error() string {
	return "unauthorized: " + e.Message()
}

// Message is the backend's explanation, or the status text when it sent none.
func (e *AuthError) Message() string {
	return messageFrom(e.Payload, http.StatusUnauthorized)
}

// HTTPError covers every other non-2xx response.
type HTTPError struct {
	Status  int
	Payload json.RawMessage
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.Status, e.Message)
}

// NormalizeEntityErrors turns a backend 422 payload into field errors.
// Accepted shapes: {"message":[{"path":"email","message":"Invalid"}]} (path may also be an array)
// and {"message":"text"}.
func NormalizeEntityErrors(payload []byte) []FieldError {
	var body struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || len(body.Message) == 0 {
		return nil
	}

	var items []struct {
		Path    json.RawMessage `json:"path"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body.Message, &items); err == nil {
		out := make([]FieldError, 0, len(items))
		for _, it := range items {
			out = append(out, FieldError{Field: pathString(it.Path), Message: it.Message})
		}
		return out
	}

	var msg string
	if err := json.Unmarshal(body.Message, &msg); err == nil && msg != "" {
		return []FieldError{{Message: msg}}
	}
	return nil
}

// pathString accepts "email" or ["items", 0, "name"].
func pathString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var parts []any
	if err := json.Unmarshal(raw, &parts); err == nil {
		segs := make([]string, 0, len(parts))
		for _, p := range parts {
			segs = append(segs, fmt.Sprint(p))
		}
		return strings.Join(segs, ".")
	}
	return strings.Trim(string(raw), `"`)
}

// messageFrom extracts a human readable message for toasts.
func messageFrom(payload []byte, status int) string {
	if len(payload) > 0 {
		var body struct {
			Message json.RawMessage `json:"message"`
			Error   string          `json:"error"`
		}
		if err := json.Unmarshal(payload, &body); err == nil {
			var s string
			if json.Unmarshal(body.Message, &s) == nil && s != "" {
				return s
			}
			if fes := NormalizeEntityErrors(payload); len(fes) > 0 && fes[0].Message != "" {
				return fes[0].Message
			}
			if body.Error != "" {
				return body.Error
			}
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "request failed"
}
