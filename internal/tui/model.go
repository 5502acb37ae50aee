// Package tui provides the interactive terminal reading surface.
package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/lesehilfe/internal/apiclient"
	"github.com/heartmarshall/lesehilfe/internal/domain"
	"github.com/heartmarshall/lesehilfe/internal/reader"
)

// Backend is the HTTP API as seen by the reading surface.
type Backend interface {
	ListTexts(ctx context.Context) ([]string, error)
	AddText(ctx context.Context, text string) ([]string, error)
	ImportText(ctx context.Context, rawURL string) (*apiclient.ImportResult, error)
	Analyze(ctx context.Context, word, textContext string) (*domain.WordAnalysis, error)
	ExportFlashcard(ctx context.Context, german, russian string) error
}

// Speaker reads text aloud.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Notification messages.
const (
	msgLoadFailed       = "Could not load saved texts."
	msgSaveFailed       = "Could not save the text."
	msgSaved            = "Text saved."
	msgEmptyText        = "Write some text first."
	msgEmptyURL         = "Enter a page address first."
	msgNoWord           = "There is no word to analyze here."
	msgNeedAnalysis     = "Analyze a word first."
	msgExported         = "Flashcard added to Anki."
	msgExportFailed     = "Failed to create flashcard."
	msgSpeechFailed     = "Read-aloud failed."
	msgSpeechMissing    = "Read-aloud is not available."
	msgImportFailedStem = "Import failed: "
	msgImportedStem     = "Imported: "
)

const expiryInterval = 500 * time.Millisecond

// Options configures a Model.
type Options struct {
	Speaker         Speaker
	Markup          *reader.Markup
	NotificationTTL time.Duration
	Logger          *slog.Logger
	Now             func() time.Time
}

type textsLoadedMsg struct {
	texts []string
	err   error
}

type textSavedMsg struct {
	texts    []string
	title    string
	imported bool
	err      error
}

type analysisMsg struct {
	seq    uint64
	result *domain.WordAnalysis
	err    error
}

type exportedMsg struct{ err error }

type spokenMsg struct{ err error }

type tickMsg time.Time

// Model is the Bubble Tea model of the reading surface.
type Model struct {
	ctx     context.Context
	backend Backend
	speaker Speaker
	session *reader.Session
	markup  *reader.Markup
	log     *slog.Logger
	now     func() time.Time

	listCursor int
	importing  bool
	saving     bool
	exporting  bool

	composer textarea.Model
	urlInput textinput.Model
	spinner  spinner.Model
	details  viewport.Model

	width  int
	height int
	ready  bool
}

// New creates the reading surface model.
func New(ctx context.Context, backend Backend, opts Options) Model {
	if opts.Markup == nil {
		opts.Markup = reader.NewMarkup()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ta := textarea.New()
	ta.Placeholder = "Deutschen Text hier einfügen..."
	ta.CharLimit = 20000
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(8)

	ti := textinput.New()
	ti.Placeholder = "https://..."
	ti.CharLimit = 2048
	ti.Width = 60
	ti.PromptStyle = SubtitleStyle
	ti.TextStyle = WordStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = LoadingStyle

	return Model{
		ctx:      ctx,
		backend:  backend,
		speaker:  opts.Speaker,
		session:  reader.NewSession(opts.NotificationTTL),
		markup:   opts.Markup,
		log:      opts.Logger.With("component", "tui"),
		now:      opts.Now,
		composer: ta,
		urlInput: ti,
		spinner:  sp,
		details:  viewport.New(60, 10),
	}
}

// Init loads the saved texts and starts the notification clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTexts(), tickExpiry())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case textsLoadedMsg:
		if msg.err != nil {
			m.notifyError(msgLoadFailed, msg.err)
			return m, nil
		}
		m.session.SetTexts(msg.texts)
		m.clampList()
		return m, nil

	case textSavedMsg:
		m.saving = false
		if msg.err != nil {
			if msg.imported {
				m.notifyError(msgImportFailedStem+describe(msg.err), msg.err)
			} else {
				m.notifyError(msgSaveFailed, msg.err)
			}
			return m, nil
		}
		m.session.SetTexts(msg.texts)
		m.listCursor = max(len(msg.texts)-1, 0)
		if msg.imported {
			m.importing = false
			m.urlInput.Reset()
			m.urlInput.Blur()
			m.notify(msgImportedStem+msg.title, domain.NotificationSuccess)
		} else {
			m.session.SetComposerOpen(false)
			m.composer.Reset()
			m.composer.Blur()
			m.notify(msgSaved, domain.NotificationSuccess)
		}
		return m, nil

	case analysisMsg:
		if m.session.ApplyAnalysis(msg.seq, msg.result, msg.err, m.now()) {
			if msg.err != nil {
				m.log.WarnContext(m.ctx, "analysis failed",
					slog.String("word", m.session.AnalyzedWord()),
					slog.String("error", msg.err.Error()),
				)
			}
			m.refreshDetails()
		}
		return m, nil

	case exportedMsg:
		m.exporting = false
		if msg.err != nil {
			m.notifyError(msgExportFailed, msg.err)
			return m, nil
		}
		m.notify(msgExported, domain.NotificationSuccess)
		return m, nil

	case spokenMsg:
		if msg.err != nil {
			m.notifyError(msgSpeechFailed, msg.err)
		}
		return m, nil

	case tickMsg:
		m.session.Notifications().Expire(time.Time(msg))
		return m, tickExpiry()

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.importing:
		return m.handleImportKey(msg)
	case m.session.ComposerOpen():
		return m.handleComposerKey(msg)
	case m.session.CurrentIndex() >= 0:
		return m.handleReadKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.listCursor > 0 {
			m.listCursor--
		}
	case "down", "j":
		if m.listCursor < len(m.session.Texts())-1 {
			m.listCursor++
		}
	case "enter":
		if err := m.session.OpenText(m.listCursor); err == nil {
			m.refreshDetails()
		}
	case "n":
		return m.openComposer()
	case "i":
		return m.openImport()
	case "r":
		return m, m.loadTexts()
	case "x":
		m.session.Notifications().DismissLatest()
	}
	return m, nil
}

func (m Model) handleReadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.session.CloseText()
		m.refreshDetails()
	case "left", "h", "shift+tab":
		m.session.MoveCursor(-1)
	case "right", "l", "tab":
		m.session.MoveCursor(1)
	case "enter":
		return m.analyze()
	case "s":
		text, _ := m.session.CurrentText()
		return m.speak(text)
	case "p":
		a, ok := m.session.Analysis()
		if !ok {
			m.notify(msgNeedAnalysis, domain.NotificationInfo)
			return m, nil
		}
		return m.speak(a.Example.German)
	case "e":
		return m.export()
	case "n":
		return m.openComposer()
	case "x":
		m.session.Notifications().DismissLatest()
	case "pgup", "pgdown", "up", "down":
		var cmd tea.Cmd
		m.details, cmd = m.details.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleComposerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.session.SetComposerOpen(false)
		m.composer.Blur()
		return m, nil
	case "ctrl+s":
		if m.saving {
			return m, nil
		}
		text := m.composer.Value()
		if strings.TrimSpace(text) == "" {
			m.notify(msgEmptyText, domain.NotificationInfo)
			return m, nil
		}
		m.saving = true
		return m, tea.Batch(m.spinner.Tick, m.addText(text))
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

func (m Model) handleImportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.importing = false
		m.urlInput.Blur()
		return m, nil
	case "enter":
		if m.saving {
			return m, nil
		}
		rawURL := strings.TrimSpace(m.urlInput.Value())
		if rawURL == "" {
			m.notify(msgEmptyURL, domain.NotificationInfo)
			return m, nil
		}
		m.saving = true
		return m, tea.Batch(m.spinner.Tick, m.importText(rawURL))
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.importing:
		m.urlInput, cmd = m.urlInput.Update(msg)
	case m.session.ComposerOpen():
		m.composer, cmd = m.composer.Update(msg)
	}
	return m, cmd
}

func (m Model) openComposer() (tea.Model, tea.Cmd) {
	m.session.SetComposerOpen(true)
	cmd := m.composer.Focus()
	return m, cmd
}

func (m Model) openImport() (tea.Model, tea.Cmd) {
	m.importing = true
	cmd := m.urlInput.Focus()
	return m, cmd
}

func (m Model) analyze() (tea.Model, tea.Cmd) {
	req, err := m.session.BeginAnalysis()
	if err != nil {
		m.notify(msgNoWord, domain.NotificationInfo)
		return m, nil
	}
	m.refreshDetails()

	backend, ctx := m.backend, m.ctx
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		result, err := backend.Analyze(ctx, req.Word, req.Context)
		return analysisMsg{seq: req.Seq, result: result, err: err}
	})
}

func (m Model) export() (tea.Model, tea.Cmd) {
	a, ok := m.session.Analysis()
	if !ok {
		m.notify(msgNeedAnalysis, domain.NotificationInfo)
		return m, nil
	}
	if m.exporting {
		return m, nil
	}
	m.exporting = true

	backend, ctx := m.backend, m.ctx
	example := a.Example
	return m, func() tea.Msg {
		return exportedMsg{err: backend.ExportFlashcard(ctx, example.German, example.Russian)}
	}
}

func (m Model) speak(text string) (tea.Model, tea.Cmd) {
	if m.speaker == nil {
		m.notify(msgSpeechMissing, domain.NotificationError)
		return m, nil
	}
	speaker, ctx := m.speaker, m.ctx
	return m, func() tea.Msg {
		return spokenMsg{err: speaker.Speak(ctx, text)}
	}
}

func (m Model) loadTexts() tea.Cmd {
	backend, ctx := m.backend, m.ctx
	return func() tea.Msg {
		texts, err := backend.ListTexts(ctx)
		return textsLoadedMsg{texts: texts, err: err}
	}
}

func (m Model) addText(text string) tea.Cmd {
	backend, ctx := m.backend, m.ctx
	return func() tea.Msg {
		texts, err := backend.AddText(ctx, text)
		return textSavedMsg{texts: texts, err: err}
	}
}

func (m Model) importText(rawURL string) tea.Cmd {
	backend, ctx := m.backend, m.ctx
	return func() tea.Msg {
		res, err := backend.ImportText(ctx, rawURL)
		if err != nil {
			return textSavedMsg{imported: true, err: err}
		}
		return textSavedMsg{texts: res.Texts, title: res.Title, imported: true}
	}
}

func tickExpiry() tea.Cmd {
	return tea.Tick(expiryInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) loading() bool {
	return m.session.Phase() == reader.PhaseLoading || m.saving || m.exporting
}

func (m *Model) notify(message string, kind domain.NotificationKind) {
	m.session.Notify(message, kind, m.now())
}

func (m *Model) notifyError(message string, err error) {
	m.log.WarnContext(m.ctx, message, slog.String("error", err.Error()))
	m.notify(message, domain.NotificationError)
}

func (m *Model) clampList() {
	n := len(m.session.Texts())
	m.listCursor = min(m.listCursor, max(n-1, 0))
}

func (m *Model) resize() {
	w := max(m.width-8, 20)
	m.composer.SetWidth(w)
	m.urlInput.Width = w - 4
	m.details.Width = w
	m.details.Height = max(m.height/3, 5)
	m.refreshDetails()
}

// describe turns a backend error into a short message for the reader.
func describe(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "server unreachable"
}
