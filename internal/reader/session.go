// Package reader holds the state of the reading surface independent of any
// rendering framework: the saved texts, the open text split into words, the
// analysis lifecycle, the composer toggle and notifications.
package reader

import (
	"errors"
	"time"

	"github.com/heartmarshall/lesehilfe/internal/domain"
)

// Phase is the analysis lifecycle of the open text.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseShowing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseShowing:
		return "showing"
	}
	return "unknown"
}

// MsgAnalysisFailed is the notification shown when live analysis fails.
const MsgAnalysisFailed = "Live analysis failed, showing an example instead."

var (
	ErrNoText         = errors.New("no text is open")
	ErrNoWord         = errors.New("no word selected")
	ErrTextOutOfRange = errors.New("text index out of range")
)

// AnalysisRequest is what the surface sends for one selected word. Seq
// identifies the request; only the latest one may update the session.
type AnalysisRequest struct {
	Seq     uint64
	Word    string
	Context string
}

// Session is the reading surface state. It is not safe for concurrent use:
// the UI event loop owns it and feeds results back in.
type Session struct {
	texts   []string
	current int

	lines     [][]Token
	positions []position
	cursor    int

	phase    Phase
	seq      uint64
	word     string
	analysis *domain.WordAnalysis

	composerOpen bool

	notes *Notifications
}

// NewSession creates an empty session.
func NewSession(notificationTTL time.Duration) *Session {
	return &Session{current: -1, notes: NewNotifications(notificationTTL)}
}

// SetTexts replaces the saved collection, for example after loading or
// saving. The open text is closed if it no longer exists.
func (s *Session) SetTexts(texts []string) {
	s.texts = append([]string(nil), texts...)
	if s.current >= len(s.texts) {
		s.CloseText()
	}
}

// Texts returns a copy of the saved collection.
func (s *Session) Texts() []string {
	return append([]string(nil), s.texts...)
}

// OpenText opens the text at index i and resets the analysis state.
func (s *Session) OpenText(i int) error {
	if i < 0 || i >= len(s.texts) {
		return ErrTextOutOfRange
	}
	s.current = i
	s.lines = Tokenize(s.texts[i])
	s.positions = selectablePositions(s.lines)
	s.cursor = 0
	s.resetAnalysis()
	return nil
}

// CloseText returns to the text list.
func (s *Session) CloseText() {
	s.current = -1
	s.lines = nil
	s.positions = nil
	s.cursor = 0
	s.resetAnalysis()
}

// CurrentIndex returns the index of the open text, or -1.
func (s *Session) CurrentIndex() int { return s.current }

// CurrentText returns the open text.
func (s *Session) CurrentText() (string, bool) {
	if s.current < 0 {
		return "", false
	}
	return s.texts[s.current], true
}

// Lines returns the tokenized open text.
func (s *Session) Lines() [][]Token { return s.lines }

// IsCursor reports whether the token at (line, col) is under the cursor.
func (s *Session) IsCursor(line, col int) bool {
	if len(s.positions) == 0 {
		return false
	}
	p := s.positions[s.cursor]
	return p.line == line && p.col == col
}

// MoveCursor moves the word cursor by delta, clamped to the text.
func (s *Session) MoveCursor(delta int) {
	if len(s.positions) == 0 {
		return
	}
	s.cursor = min(max(s.cursor+delta, 0), len(s.positions)-1)
}

// CursorWord returns the word under the cursor.
func (s *Session) CursorWord() (string, bool) {
	if len(s.positions) == 0 {
		return "", false
	}
	p := s.positions[s.cursor]
	return s.lines[p.line][p.col].Word, true
}

// BeginAnalysis starts analysing the word under the cursor. The whole open
// text is the context. Any earlier request becomes stale.
func (s *Session) BeginAnalysis() (AnalysisRequest, error) {
	text, ok := s.CurrentText()
	if !ok {
		return AnalysisRequest{}, ErrNoText
	}
	word, ok := s.CursorWord()
	if !ok {
		return AnalysisRequest{}, ErrNoWord
	}

	s.seq++
	s.phase = PhaseLoading
	s.word = word
	s.analysis = nil

	return AnalysisRequest{Seq: s.seq, Word: word, Context: text}, nil
}

// ApplyAnalysis records the outcome of request seq. Outcomes of stale
// requests are ignored and false is returned. A failed request shows the
// fallback analysis and an error notification.
func (s *Session) ApplyAnalysis(seq uint64, result *domain.WordAnalysis, err error, now time.Time) bool {
	if seq != s.seq || s.phase != PhaseLoading {
		return false
	}

	if err != nil || result == nil {
		fallback := domain.FallbackAnalysis()
		s.analysis = &fallback
		s.notes.Push(MsgAnalysisFailed, domain.NotificationError, now)
	} else {
		s.analysis = result
	}
	s.phase = PhaseShowing
	return true
}

// Phase returns the analysis lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// AnalyzedWord returns the word of the latest request.
func (s *Session) AnalyzedWord() string { return s.word }

// Analysis returns the analysis being shown, if any.
func (s *Session) Analysis() (*domain.WordAnalysis, bool) {
	if s.phase != PhaseShowing || s.analysis == nil {
		return nil, false
	}
	return s.analysis, true
}

// ToggleComposer opens or closes the new-text composer.
func (s *Session) ToggleComposer() { s.composerOpen = !s.composerOpen }

// SetComposerOpen sets the composer state.
func (s *Session) SetComposerOpen(open bool) { s.composerOpen = open }

// ComposerOpen reports whether the composer is open.
func (s *Session) ComposerOpen() bool { return s.composerOpen }

// Notify pushes a notification.
func (s *Session) Notify(message string, kind domain.NotificationKind, now time.Time) Notification {
	return s.notes.Push(message, kind, now)
}

// Notifications returns the notification queue.
func (s *Session) Notifications() *Notifications { return s.notes }

func (s *Session) resetAnalysis() {
	// Bumping seq turns any in-flight request for the previous text stale.
	s.seq++
	s.phase = PhaseIdle
	s.word = ""
	s.analysis = nil
}
