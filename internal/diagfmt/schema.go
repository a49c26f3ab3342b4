package diagfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"javalex/internal/token"
)

const tokenSchemaURL = "https://javalex.dev/schema/tokens.json"

var (
	compiledSchemaOnce sync.Once
	compiledSchema     *jsonschema.Schema
	compiledSchemaErr  error
)

// TokenSchema возвращает JSON Schema (draft 2020-12) для вывода --format json.
// Перечень kind берётся из token.Kinds(), поэтому схема не расходится с лексером.
func TokenSchema() []byte {
	kinds := make([]string, 0, len(token.Kinds()))
	for _, k := range token.Kinds() {
		kinds = append(kinds, k.String())
	}
	position := map[string]any{"type": "integer", "minimum": 1}
	schema := map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$id":     tokenSchemaURL,
		"title":   "javalex token stream",
		"type":    "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"required":             []string{"kind", "text", "index", "line", "column"},
			"properties": map[string]any{
				"kind":   map[string]any{"enum": kinds},
				"text":   map[string]any{"type": "string", "minLength": 1},
				"index":  map[string]any{"type": "integer", "minimum": 0},
				"line":   position,
				"column": position,
			},
		},
	}
	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		panic(fmt.Errorf("marshal token schema: %w", err))
	}
	return out
}

func tokenValidator() (*jsonschema.Schema, error) {
	compiledSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(tokenSchemaURL, bytes.NewReader(TokenSchema())); err != nil {
			compiledSchemaErr = fmt.Errorf("add token schema: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = compiler.Compile(tokenSchemaURL)
	})
	return compiledSchema, compiledSchemaErr
}

// ValidateTokensJSON проверяет вывод FormatTokensJSON против TokenSchema.
func ValidateTokensJSON(data []byte) error {
	validator, err := tokenValidator()
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return validator.Validate(doc)
}
