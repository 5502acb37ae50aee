package reader

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// Markup turns the model's HTML explanation into terminal text. Only inline
// emphasis and simple block structure survive sanitizing.
type Markup struct {
	policy *bluemonday.Policy
	bold   func(string) string
	italic func(string) string
}

// NewMarkup renders emphasis with lipgloss bold and italic styles.
func NewMarkup() *Markup {
	bold := lipgloss.NewStyle().Bold(true)
	italic := lipgloss.NewStyle().Italic(true)
	return NewMarkupWith(
		func(s string) string { return bold.Render(s) },
		func(s string) string { return italic.Render(s) },
	)
}

// NewPlainMarkup drops emphasis and keeps only the text and line breaks.
func NewPlainMarkup() *Markup {
	id := func(s string) string { return s }
	return NewMarkupWith(id, id)
}

// NewMarkupWith uses custom emphasis functions.
func NewMarkupWith(bold, italic func(string) string) *Markup {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em", "u", "br", "p", "ul", "ol", "li", "span", "div")
	return &Markup{policy: p, bold: bold, italic: italic}
}

// Sanitize strips every element and attribute outside the allow-list.
func (m *Markup) Sanitize(fragment string) string {
	return m.policy.Sanitize(fragment)
}

// Render sanitizes fragment and renders it. <b>/<strong> become bold,
// <i>/<em> italic, <br> a line break, paragraphs and list items start new
// lines.
func (m *Markup) Render(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(m.Sanitize(fragment)))

	var (
		out    strings.Builder
		bold   int
		italic int
	)

	newline := func() {
		s := out.String()
		if s != "" && !strings.HasSuffix(s, "\n") {
			out.WriteByte('\n')
		}
	}

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or a tokenizer error; either way the input is consumed.
			return tidy(out.String())

		case html.TextToken:
			text := collapseSpace(StripControl(string(z.Text())))
			if text == "" {
				continue
			}
			if strings.HasSuffix(out.String(), "\n") || out.Len() == 0 {
				text = strings.TrimLeft(text, " ")
			}
			if text == "" {
				continue
			}
			if bold > 0 {
				text = m.bold(text)
			}
			if italic > 0 {
				text = m.italic(text)
			}
			out.WriteString(text)

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "b", "strong":
				if tt == html.StartTagToken {
					bold++
				}
			case "i", "em":
				if tt == html.StartTagToken {
					italic++
				}
			case "br":
				out.WriteByte('\n')
			case "p", "div", "ul", "ol":
				newline()
			case "li":
				newline()
				out.WriteString("• ")
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "b", "strong":
				bold = max(bold-1, 0)
			case "i", "em":
				italic = max(italic-1, 0)
			case "p", "div", "li", "ul", "ol":
				newline()
			}
		}
	}
}

// StripControl removes C0 and C1 control characters so that text from the
// model or a fetched page cannot drive the terminal. Line breaks are kept and
// tabs become spaces.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// collapseSpace folds runs of whitespace into one space, keeping a single
// leading or trailing space so that words around tags stay apart.
func collapseSpace(s string) string {
	if s == "" {
		return ""
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return " "
	}
	joined := strings.Join(fields, " ")
	if isSpace(s[0]) {
		joined = " " + joined
	}
	if isSpace(s[len(s)-1]) {
		joined += " "
	}
	return joined
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}

// tidy trims trailing spaces on each line and surrounding blank lines.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}
