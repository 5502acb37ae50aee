package texts

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/lesehilfe/internal/domain"
)

const (
	MaxTextRunes = domain.MaxTextRunes
	MaxTexts     = domain.MaxTexts
)

// AddInput holds one new text.
type AddInput struct {
	Text string
}

// Validate checks all fields and collects all errors.
func (i AddInput) Validate() error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if utf8.RuneCountInString(text) > MaxTextRunes {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 20000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReplaceInput holds the complete new collection.
type ReplaceInput struct {
	Texts []string
}

// Validate checks all fields and collects all errors.
func (i ReplaceInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Texts) > MaxTexts {
		errs = append(errs, domain.FieldError{Field: "texts", Message: "max 1000 items"})
	}
	for idx, t := range i.Texts {
		field := fmt.Sprintf("texts[%d]", idx)
		text := strings.TrimSpace(t)
		if text == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
		}
		if utf8.RuneCountInString(text) > MaxTextRunes {
			errs = append(errs, domain.FieldError{Field: field, Message: "max 20000 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ImportInput holds the address of a web page to import.
type ImportInput struct {
	URL string
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	raw := strings.TrimSpace(i.URL)
	if raw == "" {
		return domain.NewValidationError("url", "required")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.NewValidationError("url", "must be an absolute http(s) URL")
	}
	return nil
}
