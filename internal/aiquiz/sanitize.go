package aiquiz

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const fence = "```"

const questionsSchemaURL = "schema://questions-envelope.json"

// Only the envelope is checked; individual questions are trusted.
var questionsEnvelope = map[string]any{
	"type":     "object",
	"required": []any{"questions"},
	"properties": map[string]any{
		"questions": map[string]any{"type": "array"},
	},
}

var compileEnvelope = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(questionsSchemaURL, questionsEnvelope); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(questionsSchemaURL)
})

// StripCodeFences removes at most one opening fence (```json or a bare ```)
// and at most one closing fence, then trims the result.
func StripCodeFences(raw string) string {
	s := strings.TrimLeft(raw, " \t\r\n")
	if rest, ok := strings.CutPrefix(s, fence+"json"); ok {
		s = strings.TrimLeft(rest, " \t\r\n")
	} else if rest, ok := strings.CutPrefix(s, fence); ok {
		s = rest
	}

	s = strings.TrimRight(s, " \t\r\n")
	s = strings.TrimSuffix(s, fence)
	return strings.TrimSpace(s)
}

// ParseQuestions sanitizes raw model output and returns the JSON object
// unchanged once it is known to carry a questions array.
func ParseQuestions(raw string) (json.RawMessage, error) {
	clean := StripCodeFences(raw)

	var parsed any
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return nil, &ErrResponseFormat{Content: clean, Err: err}
	}

	schema, err := compileEnvelope()
	if err != nil {
		return nil, fmt.Errorf("compile questions schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrResponseStructure{Content: clean, Err: fmt.Errorf("expected an object with a questions array: %w", err)}
	}

	return json.RawMessage(clean), nil
}
