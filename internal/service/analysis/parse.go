package analysis

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/heartmarshall/lesehilfe/internal/domain"
)

var (
	leadingFence  = regexp.MustCompile("(?i)^```(?:json)?[ \t]*\n?")
	trailingFence = regexp.MustCompile("\n?[ \t]*```$")
)

var errNotObject = errors.New("top-level value is not a JSON object")

// ParseAnalysis extracts a WordAnalysis from raw model output.
// The text may be wrapped in a markdown code fence or surrounded by prose.
// Every missing or mistyped field is reported in the returned
// *domain.MalformedAnalysisError.
func ParseAnalysis(raw string) (*domain.WordAnalysis, error) {
	cleaned := stripFences(raw)

	obj, err := decodeObject(cleaned)
	if err != nil {
		if span, ok := objectSpan(cleaned); ok && span != cleaned {
			obj, err = decodeObject(span)
		}
	}
	if err != nil {
		return nil, &domain.MalformedAnalysisError{Raw: raw, Cleaned: cleaned, Cause: err}
	}

	analysis, fields := checkSchema(obj)
	if len(fields) > 0 {
		return nil, &domain.MalformedAnalysisError{Raw: raw, Cleaned: cleaned, Fields: fields}
	}
	return analysis, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = leadingFence.ReplaceAllString(s, "")
	s = trailingFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// objectSpan returns the text between the first '{' and the last '}'.
func objectSpan(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func decodeObject(s string) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errNotObject
	}
	return obj, nil
}

func checkSchema(obj map[string]json.RawMessage) (*domain.WordAnalysis, []domain.FieldError) {
	var (
		out  domain.WordAnalysis
		errs []domain.FieldError
	)

	grammar, fe := stringField(obj, "grammarDetailsAndUsage", "grammarDetailsAndUsage")
	if fe != nil {
		errs = append(errs, *fe)
	}
	out.GrammarDetailsAndUsage = grammar

	example, fe := objectField(obj, "example", "example")
	if fe != nil {
		errs = append(errs, *fe)
		return &out, errs
	}

	german, fe := stringField(example, "german", "example.german")
	if fe != nil {
		errs = append(errs, *fe)
	}
	russian, fe := stringField(example, "russian", "example.russian")
	if fe != nil {
		errs = append(errs, *fe)
	}
	out.Example = domain.Example{German: german, Russian: russian}

	return &out, errs
}

func stringField(obj map[string]json.RawMessage, key, path string) (string, *domain.FieldError) {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return "", &domain.FieldError{Field: path, Message: "required"}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", &domain.FieldError{Field: path, Message: "must be a string"}
	}
	if strings.TrimSpace(s) == "" {
		return "", &domain.FieldError{Field: path, Message: "must not be empty"}
	}
	return s, nil
}

func objectField(obj map[string]json.RawMessage, key, path string) (map[string]json.RawMessage, *domain.FieldError) {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return nil, &domain.FieldError{Field: path, Message: "required"}
	}
	var nested map[string]json.RawMessage
	if err := json.Unmarshal(raw, &nested); err != nil {
		return nil, &domain.FieldError{Field: path, Message: "must be an object"}
	}
	return nested, nil
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
