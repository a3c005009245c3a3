package generator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/evernest-backend/internal/domain"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const resultSchema = `{
  "type": "object",
  "required": ["title", "content"],
  "properties": {
    "title": {"type": "string", "minLength": 1, "maxLength": 200},
    "content": {"type": "string", "minLength": 1}
  }
}`

var compiledResultSchema = mustCompileSchema(resultSchema)

func mustCompileSchema(schema string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader([]byte(schema))); err != nil {
		panic(fmt.Sprintf("add result schema: %v", err))
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		panic(fmt.Sprintf("compile result schema: %v", err))
	}
	return compiled
}

// validateResult parses raw model output into a GenerationResult, accepting
// markdown code fences and surrounding prose.
func validateResult(raw string) (*domain.GenerationResult, error) {
	normalized, err := parseStructuredJSON(raw)
	if err != nil {
		return nil, &malformedError{err: err}
	}

	var doc any
	if err := json.Unmarshal(normalized, &doc); err != nil {
		return nil, &malformedError{err: err}
	}
	if err := compiledResultSchema.Validate(doc); err != nil {
		return nil, &malformedError{err: fmt.Errorf("schema validation: %w", err)}
	}

	var result domain.GenerationResult
	if err := json.Unmarshal(normalized, &result); err != nil {
		return nil, &malformedError{err: err}
	}
	if strings.TrimSpace(result.Title) == "" || strings.TrimSpace(result.Content) == "" {
		return nil, &malformedError{err: errors.New("blank title or content")}
	}
	return &result, nil
}

func parseStructuredJSON(content string) (json.RawMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("empty structured output")
	}

	candidates := []string{content}
	if stripped := stripCodeFences(content); stripped != "" && stripped != content {
		candidates = append(candidates, stripped)
	}
	if extracted := extractJSONObject(content); extracted != "" && extracted != content {
		candidates = append(candidates, extracted)
	}

	for _, candidate := range candidates {
		var parsed map[string]any
		if err := json.Unmarshal([]byte(candidate), &parsed); err == nil {
			return json.RawMessage(candidate), nil
		}
	}
	return nil, errors.New("no JSON object found in response")
}

func stripCodeFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return ""
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return ""
	}
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// extractJSONObject returns the text between the first '{' and the last '}'.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return ""
	}
	return strings.TrimSpace(s[start : end+1])
}
