// Package clipboard reads images and text from the system clipboard.
//
// Image reads shell out to the platform's clipboard tools and are bounded by
// the caller's context. Absence of an image is ErrNoImage, not a failure of
// the editor.
package clipboard

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// ErrNoImage reports that the clipboard holds no readable image.
var ErrNoImage = errors.New("clipboard: no image")

// ErrorMessage is shown to the user when an image paste finds nothing.
const ErrorMessage = "No image found in clipboard. Use Cmd + Ctrl + Shift + 4 to copy a screenshot to clipboard."

// ImageReader returns the clipboard image as base64-encoded PNG.
type ImageReader interface {
	ReadImage(ctx context.Context) (string, error)
}

// Clipboard adds text copy to ImageReader. Text paste arrives through the
// terminal, so hosts only ever write text.
type Clipboard interface {
	ImageReader
	WriteText(s string) error
}

// Runner executes an external command and returns its stdout.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// System is the OS clipboard.
type System struct {
	// GOOS selects the image strategy; defaults to runtime.GOOS.
	GOOS   string
	Run    Runner
	Logger *zap.Logger
}

func NewSystem(logger *zap.Logger) *System {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &System{GOOS: runtime.GOOS, Run: execRunner, Logger: logger}
}

func (s *System) ReadImage(ctx context.Context) (string, error) {
	var (
		png []byte
		err error
	)
	switch s.goos() {
	case "darwin":
		png, err = s.readDarwin(ctx)
	case "linux", "freebsd", "openbsd", "netbsd":
		png, err = s.readUnix(ctx)
	default:
		return "", ErrNoImage
	}
	if err != nil {
		s.logger().Debug("clipboard image read failed", zap.String("goos", s.goos()), zap.Error(err))
		return "", err
	}
	if len(png) == 0 {
		return "", ErrNoImage
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

func (s *System) readDarwin(ctx context.Context) ([]byte, error) {
	if _, err := s.run(ctx, "osascript", "-e", "the clipboard as «class PNGf»"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoImage, err)
	}

	f, err := os.CreateTemp("", "kodeline-paste-*.png")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	_ = f.Close()
	defer os.Remove(path)

	script := fmt.Sprintf(`set png_data to (the clipboard as «class PNGf»)
set fp to open for access POSIX file %q with write permission
write png_data to fp
close access fp`, filepath.Clean(path))
	if _, err := s.run(ctx, "osascript", "-e", script); err != nil {
		return nil, fmt.Errorf("save clipboard image: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read clipboard image: %w", err)
	}
	return data, nil
}

func (s *System) readUnix(ctx context.Context) ([]byte, error) {
	attempts := [][]string{
		{"wl-paste", "--no-newline", "--type", "image/png"},
		{"xclip", "-selection", "clipboard", "-t", "image/png", "-o"},
	}
	var lastErr error
	for _, a := range attempts {
		out, err := s.run(ctx, a[0], a[1:]...)
		if err == nil && len(out) > 0 {
			return out, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoImage, lastErr)
	}
	return nil, ErrNoImage
}

func (s *System) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

func (s *System) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if s.Run == nil {
		return execRunner(ctx, name, args...)
	}
	return s.Run(ctx, name, args...)
}

func (s *System) goos() string {
	if s.GOOS == "" {
		return runtime.GOOS
	}
	return s.GOOS
}

func (s *System) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
