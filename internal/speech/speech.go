// Package speech reads German text aloud through the platform synthesizer.
package speech

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// ErrUnavailable is returned when no supported synthesizer is installed.
var ErrUnavailable = errors.New("speech synthesizer not available")

const (
	// espeak speaks 175 words per minute at normal speed, say about 180.
	espeakBaseRate = 175
	sayBaseRate    = 180
	sayGermanVoice = "Anna"
)

// Config selects the synthesizer. An empty Command is auto-detected.
type Config struct {
	Command string
	Voice   string
	Rate    float64
}

// Runner executes a command with text on stdin.
type Runner func(ctx context.Context, name string, args []string, stdin string) error

// Speaker reads text aloud.
type Speaker struct {
	cfg      Config
	goos     string
	lookPath func(string) (string, error)
	run      Runner
}

// New creates a Speaker that runs the real synthesizer.
func New(cfg Config) *Speaker {
	return NewWith(cfg, runtime.GOOS, exec.LookPath, runCommand)
}

// NewWith creates a Speaker with an injected platform, lookup and runner.
func NewWith(cfg Config, goos string, lookPath func(string) (string, error), run Runner) *Speaker {
	if cfg.Voice == "" {
		cfg.Voice = "de"
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 0.9
	}
	return &Speaker{cfg: cfg, goos: goos, lookPath: lookPath, run: run}
}

// Available reports whether a synthesizer can be found.
func (s *Speaker) Available() bool {
	_, _, err := s.command()
	return err == nil
}

// Speak reads text aloud and blocks until playback ends or ctx is done.
func (s *Speaker) Speak(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	name, args, err := s.command()
	if err != nil {
		return err
	}
	if err := s.run(ctx, name, args, text); err != nil {
		return fmt.Errorf("speech: %s: %w", name, err)
	}
	return nil
}

// command resolves the program and its arguments. The text itself is passed
// on stdin.
func (s *Speaker) command() (string, []string, error) {
	name := s.cfg.Command
	if name == "" {
		name = s.detect()
		if name == "" {
			return "", nil, ErrUnavailable
		}
	} else if _, err := s.lookPath(name); err != nil {
		return "", nil, fmt.Errorf("%w: %s", ErrUnavailable, name)
	}

	switch name {
	case "say":
		voice := s.cfg.Voice
		if voice == "de" {
			voice = sayGermanVoice
		}
		return name, []string{"-v", voice, "-r", rate(sayBaseRate, s.cfg.Rate)}, nil
	default:
		// espeak-ng, espeak and compatible programs read stdin with --stdin.
		return name, []string{"-v", s.cfg.Voice, "-s", rate(espeakBaseRate, s.cfg.Rate), "--stdin"}, nil
	}
}

func (s *Speaker) detect() string {
	var candidates []string
	switch s.goos {
	case "darwin":
		candidates = []string{"say"}
	default:
		candidates = []string{"espeak-ng", "espeak"}
	}
	for _, c := range candidates {
		if _, err := s.lookPath(c); err == nil {
			return c
		}
	}
	return ""
}

func rate(base int, factor float64) string {
	return strconv.Itoa(int(float64(base) * factor))
}

func runCommand(ctx context.Context, name string, args []string, stdin string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	out, err := cmd.CombinedOutput()
	if err != nil && len(out) > 0 {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(out)))
	}
	return err
}
