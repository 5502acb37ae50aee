package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/lesehilfe/internal/reader"
)

// View renders the UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render(" Lesehilfe ") + "  " + SubtitleStyle.Render("Deutsch lesen mit Grammatik"))
	b.WriteString("\n\n")

	if notes := m.renderNotifications(); notes != "" {
		b.WriteString(notes)
		b.WriteString("\n")
	}

	switch {
	case m.importing:
		b.WriteString(m.renderImport())
	case m.session.ComposerOpen():
		b.WriteString(m.renderComposer())
	case m.session.CurrentIndex() >= 0:
		b.WriteString(m.renderReading())
	default:
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("  " + m.helpLine()))
	return b.String()
}

func (m Model) renderNotifications() string {
	active := m.session.Notifications().Active()
	if len(active) == 0 {
		return ""
	}
	lines := make([]string, 0, len(active))
	for _, n := range active {
		lines = append(lines, "  "+notificationStyle(n.Kind).Render(n.Message))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) renderList() string {
	texts := m.session.Texts()
	if len(texts) == 0 {
		return HelpStyle.Render("  No saved texts yet. Press n to write one or i to import a page.") + "\n"
	}

	width := max(m.width-10, 20)
	var b strings.Builder
	for i, t := range texts {
		label := fmt.Sprintf("%d. %s", i+1, preview(t, width))
		if i == m.listCursor {
			b.WriteString("  " + ItemActiveStyle.Render(label))
		} else {
			b.WriteString("  " + ItemStyle.Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderReading() string {
	var lines []string
	for i, line := range m.session.Lines() {
		words := make([]string, len(line))
		for j, tok := range line {
			word := reader.StripControl(tok.Text)
			if m.session.IsCursor(i, j) {
				words[j] = WordCursorStyle.Render(word)
			} else {
				words[j] = WordStyle.Render(word)
			}
		}
		lines = append(lines, strings.Join(words, " "))
	}

	width := max(m.width-4, 24)
	text := TextBoxStyle.Width(width).Render(strings.Join(lines, "\n"))

	var details string
	switch {
	case m.session.Phase() == reader.PhaseLoading:
		details = "  " + m.spinner.View() + LoadingStyle.Render(fmt.Sprintf(" Analysiere „%s“...", m.session.AnalyzedWord()))
	case m.hasAnalysis():
		details = DetailsBoxStyle.Width(width).Render(m.details.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, text, details)
}

func (m Model) hasAnalysis() bool {
	_, ok := m.session.Analysis()
	return ok
}

// detailsContent renders the current analysis for the details viewport.
func (m Model) detailsContent() string {
	a, ok := m.session.Analysis()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(LabelStyle.Render(reader.StripControl(m.session.AnalyzedWord())))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(max(m.details.Width-2, 20)).Render(m.markup.Render(a.GrammarDetailsAndUsage)))
	b.WriteString("\n\n")
	b.WriteString(LabelStyle.Render("Beispiel"))
	b.WriteString("\n")
	b.WriteString(ExampleGermanStyle.Render(reader.StripControl(a.Example.German)))
	b.WriteString("\n")
	b.WriteString(ExampleRussianStyle.Render(reader.StripControl(a.Example.Russian)))
	return b.String()
}

func (m *Model) refreshDetails() {
	m.details.SetContent(m.detailsContent())
	m.details.GotoTop()
}

func (m Model) renderComposer() string {
	body := SubtitleStyle.Render("Neuer Text") + "\n\n" + m.composer.View()
	if m.saving {
		body += "\n" + m.spinner.View() + LoadingStyle.Render(" Speichern...")
	}
	return PromptBoxStyle.Render(body) + "\n"
}

func (m Model) renderImport() string {
	body := SubtitleStyle.Render("Artikel importieren") + "\n\n" + m.urlInput.View()
	if m.saving {
		body += "\n" + m.spinner.View() + LoadingStyle.Render(" Lade Seite...")
	}
	return PromptBoxStyle.Render(body) + "\n"
}

func (m Model) helpLine() string {
	var parts []string
	switch {
	case m.importing:
		parts = []string{"enter: import", "esc: cancel"}
	case m.session.ComposerOpen():
		parts = []string{"ctrl+s: save", "esc: cancel"}
	case m.session.CurrentIndex() >= 0:
		parts = []string{"←/→: word", "enter: analyze", "s: speak"}
		if m.hasAnalysis() {
			parts = append(parts, "p: speak example", "e: export")
		}
		parts = append(parts, "esc: back", "q: quit")
	default:
		parts = []string{"↑/↓: choose", "enter: open", "n: new", "i: import", "q: quit"}
	}
	if len(m.session.Notifications().Active()) > 0 {
		parts = append(parts, "x: dismiss")
	}
	return strings.Join(parts, " • ")
}

// preview returns the first line of text cut to width runes.
func preview(text string, width int) string {
	line, _, more := strings.Cut(reader.StripControl(text), "\n")
	r := []rune(line)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	if more {
		return line + " …"
	}
	return line
}
