package ankiconnect

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/lesehilfe/internal/domain"
)

const (
	serviceName  = "ankiconnect"
	noteModel    = "Basic"
	maxBodyBytes = 1 << 20
)

// Config holds the AnkiConnect endpoint and note defaults.
type Config struct {
	URL     string
	Deck    string
	Tag     string
	Version int
	Timeout time.Duration
}

// Client talks to a local AnkiConnect add-on over HTTP.
type Client struct {
	url        string
	deck       string
	tag        string
	version    int
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	version := cfg.Version
	if version <= 0 {
		version = 6
	}
	return &Client{
		url:        cfg.URL,
		deck:       cfg.Deck,
		tag:        cfg.Tag,
		version:    version,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", serviceName),
	}
}

// AddNote creates one "Basic" note with Front and Back fields in the
// configured deck. Duplicates are rejected by Anki. Returns the note ID,
// which is zero when the add-on answers without a result.
func (c *Client) AddNote(ctx context.Context, card domain.Flashcard) (int64, error) {
	params := addNoteParams{
		Note: note{
			DeckName:  c.deck,
			ModelName: noteModel,
			Fields: map[string]string{
				"Front": card.Front,
				"Back":  card.Back,
			},
			Options: noteOptions{AllowDuplicate: false},
			Tags:    c.tags(),
		},
	}

	var noteID *int64
	if err := c.invoke(ctx, "addNote", params, &noteID); err != nil {
		if IsDuplicate(err) {
			c.log.WarnContext(ctx, "duplicate note rejected",
				slog.String("deck", c.deck),
				slog.String("front", card.Front),
			)
		}
		return 0, err
	}
	if noteID == nil {
		return 0, nil
	}

	c.log.InfoContext(ctx, "note added",
		slog.Int64("note_id", *noteID),
		slog.String("deck", c.deck),
	)
	return *noteID, nil
}

// Version returns the protocol version reported by the add-on.
func (c *Client) Version(ctx context.Context) (int, error) {
	var v int
	if err := c.invoke(ctx, "version", nil, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// Ping checks that the add-on is reachable.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Version(ctx)
	return err
}

func (c *Client) tags() []string {
	if c.tag == "" {
		return []string{}
	}
	return []string{c.tag}
}

// invoke sends one action and decodes its result into out (may be nil).
func (c *Client) invoke(ctx context.Context, action string, params, out any) error {
	body, err := json.Marshal(request{Action: action, Version: c.version, Params: params})
	if err != nil {
		return fmt.Errorf("ankiconnect: marshal %s: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("ankiconnect: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "ankiconnect request", slog.String("action", action))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ankiconnect: %s: request failed: %w", action, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("ankiconnect: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.UpstreamError{
			Service: serviceName,
			Status:  resp.StatusCode,
			Body:    string(respBody),
		}
	}

	var envelope response
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("ankiconnect: decode json: %w", err)
	}
	if envelope.Error != nil {
		return &ActionError{Action: action, Message: *envelope.Error}
	}

	if out == nil || len(envelope.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("ankiconnect: decode %s result: %w", action, err)
	}
	return nil
}

// ActionError is an error reported by AnkiConnect in the response body.
type ActionError struct {
	Action  string
	Message string
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("ankiconnect: %s: %s", e.Action, e.Message)
}

// IsDuplicate reports whether err is AnkiConnect's duplicate-note rejection.
func IsDuplicate(err error) bool {
	var ae *ActionError
	return errors.As(err, &ae) && ae.Message == "cannot create note because it is a duplicate"
}
