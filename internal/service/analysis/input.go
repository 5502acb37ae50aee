package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/lesehilfe/internal/domain"
)

const (
	MaxWordRunes    = 100
	MaxContextRunes = domain.MaxTextRunes
)

// AnalyzeInput holds the parameters for analyzing one word in its text.
type AnalyzeInput struct {
	Word    string
	Context string
}

// Validate checks all fields and collects all errors.
func (i AnalyzeInput) Validate() error {
	var errs []domain.FieldError

	word := strings.TrimSpace(i.Word)
	if word == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if utf8.RuneCountInString(word) > MaxWordRunes {
		errs = append(errs, domain.FieldError{Field: "word", Message: "max 100 characters"})
	}

	text := strings.TrimSpace(i.Context)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "context", Message: "required"})
	}
	if utf8.RuneCountInString(text) > MaxContextRunes {
		errs = append(errs, domain.FieldError{Field: "context", Message: "max 20000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
