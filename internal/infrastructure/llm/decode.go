package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var ErrInvalidJSON = errors.New("provider returned invalid JSON")

// DecodeError carries the raw model reply that could not be decoded.
type DecodeError struct {
	Raw    string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Reason == "" {
		return ErrInvalidJSON.Error()
	}
	return ErrInvalidJSON.Error() + ": " + e.Reason
}

func (e *DecodeError) Unwrap() error { return ErrInvalidJSON }

// StripCodeFences removes a surrounding Markdown code fence, with or without
// a language tag.
func StripCodeFences(s string) string {
	clean := strings.TrimSpace(s)
	if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
		if i := strings.IndexAny(clean, "\r\n"); i >= 0 && !strings.ContainsAny(clean[:i], "{[\"") {
			clean = clean[i:]
		}
		clean = strings.TrimLeft(clean, "\r\n")
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}

// DecodeJSON parses a model reply into out. The reply is first stripped of
// code fences; if that fails, the outermost {...} object is tried once.
// When schema is non-empty the parsed document must validate against it.
func DecodeJSON(raw string, out any, schema string) error {
	clean := StripCodeFences(raw)

	doc := []byte(clean)
	if !json.Valid(doc) {
		extracted, ok := outermostObject(clean)
		if !ok || !json.Valid([]byte(extracted)) {
			return &DecodeError{Raw: raw, Reason: "no JSON object found"}
		}
		doc = []byte(extracted)
	}

	if schema != "" {
		if err := validateSchema(schema, doc); err != nil {
			return &DecodeError{Raw: raw, Reason: err.Error()}
		}
	}

	if err := json.Unmarshal(doc, out); err != nil {
		return &DecodeError{Raw: raw, Reason: err.Error()}
	}
	return nil
}

func outermostObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func validateSchema(schema string, doc []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("schema validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
