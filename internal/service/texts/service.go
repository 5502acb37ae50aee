package texts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/heartmarshall/lesehilfe/internal/domain"
	"github.com/heartmarshall/lesehilfe/internal/provider"
)

// DefaultSlot is the slot name used when none is configured.
const DefaultSlot = "savedTexts"

type slotStore interface {
	// Get returns domain.ErrNotFound when the slot has never been written.
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, data []byte) error
}

type articleFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*provider.Article, error)
}

// Service keeps the ordered collection of saved texts. The whole collection
// is written back to the slot on every mutation.
type Service struct {
	slots    slotStore
	articles articleFetcher
	slot     string
	log      *slog.Logger

	mu     sync.Mutex
	texts  []string
	loaded bool
}

// NewService creates a new Texts service. articles may be nil, in which case
// Import is unavailable.
func NewService(
	log *slog.Logger,
	slots slotStore,
	articles articleFetcher,
	slot string,
) *Service {
	if slot == "" {
		slot = DefaultSlot
	}
	return &Service{
		slots:    slots,
		articles: articles,
		slot:     slot,
		log:      log.With("service", "texts"),
	}
}

// Load (re)reads the collection from the slot, replacing the in-memory copy.
// A missing slot yields an empty collection. Data that is not a JSON array of
// strings is logged and treated as empty.
func (s *Service) Load(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}
	return s.snapshotLocked(), nil
}

// List returns a copy of the collection in insertion order.
func (s *Service) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}
	return s.snapshotLocked(), nil
}

// Add appends one text and persists the collection. The text is stored as
// given; blank input is rejected.
func (s *Service) Add(ctx context.Context, input AddInput) ([]string, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	text := input.Text

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}
	if len(s.texts) >= MaxTexts {
		return nil, domain.NewValidationError("texts", "collection is full (max 1000 items)")
	}

	next := make([]string, 0, len(s.texts)+1)
	next = append(next, s.texts...)
	next = append(next, text)

	if err := s.persistLocked(ctx, next); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "text added",
		slog.Int("count", len(next)),
		slog.String("text", preview(text)),
	)
	return s.snapshotLocked(), nil
}

// Replace swaps the whole collection and persists it.
func (s *Service) Replace(ctx context.Context, input ReplaceInput) ([]string, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	next := make([]string, len(input.Texts))
	copy(next, input.Texts)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistLocked(ctx, next); err != nil {
		return nil, err
	}
	s.loaded = true

	s.log.InfoContext(ctx, "texts replaced", slog.Int("count", len(next)))
	return s.snapshotLocked(), nil
}

// ImportResult is the collection after an import and the article title.
type ImportResult struct {
	Title string
	Texts []string
}

// Import fetches a web page, extracts its readable text and adds it.
func (s *Service) Import(ctx context.Context, input ImportInput) (*ImportResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.articles == nil {
		return nil, fmt.Errorf("import: %w", domain.ErrMisconfigured)
	}

	article, err := s.articles.Fetch(ctx, input.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch article: %w", err)
	}

	if strings.TrimSpace(article.Text) == "" {
		return nil, domain.NewValidationError("url", "page has no readable text")
	}

	texts, err := s.Add(ctx, AddInput{Text: article.Text})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "article imported",
		slog.String("url", input.URL),
		slog.String("title", article.Title),
	)
	return &ImportResult{Title: article.Title, Texts: texts}, nil
}

func (s *Service) ensureLoadedLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	return s.loadLocked(ctx)
}

func (s *Service) loadLocked(ctx context.Context) error {
	data, err := s.slots.Get(ctx, s.slot)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.texts = []string{}
		s.loaded = true
		return nil
	case err != nil:
		return fmt.Errorf("load slot %s: %w", s.slot, err)
	}

	var texts []string
	if err := json.Unmarshal(data, &texts); err != nil {
		s.log.WarnContext(ctx, "saved texts are unreadable, starting empty",
			slog.String("slot", s.slot),
			slog.String("error", err.Error()),
		)
		texts = nil
	}
	if texts == nil {
		texts = []string{}
	}

	s.texts = texts
	s.loaded = true
	return nil
}

// persistLocked writes next to the slot and adopts it only on success.
func (s *Service) persistLocked(ctx context.Context, next []string) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("marshal texts: %w", err)
	}
	if err := s.slots.Put(ctx, s.slot, data); err != nil {
		return fmt.Errorf("persist slot %s: %w", s.slot, err)
	}
	s.texts = next
	return nil
}

func (s *Service) snapshotLocked() []string {
	out := make([]string, len(s.texts))
	copy(out, s.texts)
	return out
}

func preview(text string) string {
	r := []rune(text)
	if len(r) > 50 {
		return string(r[:50])
	}
	return text
}
