package bank

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// bankSchema validates admin imports before anything touches the store. The
// correct_option upper bound depends on options length, so that check lives in
// Bank.Validate, not here.
const bankSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "title", "mode", "questions"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "title": {"type": "string", "minLength": 1},
    "mode": {"type": "string", "enum": ["exam", "quiz", "practice"]},
    "time_limit_sec": {"type": "integer", "minimum": 1},
    "scheme": {
      "type": "object",
      "properties": {
        "correct": {"type": "number"},
        "incorrect": {"type": "number"},
        "unattempted": {"type": "number"}
      },
      "additionalProperties": false
    },
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "prompt", "options", "correct_option"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "prompt": {"type": "string", "minLength": 1},
          "options": {"type": "array", "minItems": 2, "items": {"type": "string"}},
          "correct_option": {"type": "integer", "minimum": 0},
          "rich_text": {"type": "boolean"}
        }
      }
    }
  }
}`

// DecodeBank validates and unmarshals an imported bank payload.
func DecodeBank(data []byte) (Bank, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(bankSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return Bank{}, fmt.Errorf("validating bank payload: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return Bank{}, fmt.Errorf("invalid bank payload: %s", strings.Join(msgs, "; "))
	}
	var b Bank
	if err := json.Unmarshal(data, &b); err != nil {
		return Bank{}, err
	}
	if err := b.Validate(); err != nil {
		return Bank{}, err
	}
	return b, nil
}
