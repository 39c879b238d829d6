// Package navigate leaves the search widget for the trial search page.
package navigate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
)

// DefaultBaseURL is the trial search page; the target is appended as is.
const DefaultBaseURL = "https://clinicaltrialskorea.com/studies?condition="

// URL joins the search base and the target without encoding, the way the
// search page expects it.
func URL(base, target string) string {
	return base + target
}

// Opener shows a URL to the user.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// BrowserOpener opens URLs with the platform's default handler.
type BrowserOpener struct {
	// Command overrides the platform default; the URL is appended to Args.
	Command string
	Args    []string
}

// Open implements Opener.
func (b BrowserOpener) Open(ctx context.Context, url string) error {
	name, args := b.Command, b.Args
	if name == "" {
		var err error
		name, args, err = platformCommand(runtime.GOOS)
		if err != nil {
			return err
		}
	}
	args = append(append([]string(nil), args...), url)

	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	// The handler may outlive us; don't wait for the browser to exit.
	go func() { _ = cmd.Wait() }()
	return nil
}

// ErrUnsupportedPlatform is returned when no default opener is known.
var ErrUnsupportedPlatform = errors.New("no default URL opener for this platform")

func platformCommand(goos string) (string, []string, error) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", nil, nil
	case "darwin":
		return "open", nil, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// WriterOpener prints URLs, one per line.
type WriterOpener struct {
	W io.Writer
}

// Open implements Opener.
func (w WriterOpener) Open(_ context.Context, url string) error {
	_, err := fmt.Fprintln(w.W, url)
	return err
}
