// Package opener launches URLs in the user's default browser.
package opener

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"

	"github.com/tie/mcmods/models"
)

// Runner runs an external command to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands as child processes sharing the stdio of
// the current process.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

type Opener interface {
	Open(ctx context.Context, url string) error
}

// Command returns the command that opens a URL on goos.
func Command(goos string) (name string, args []string, ok bool) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return "xdg-open", nil, true
	case "darwin":
		return "open", nil, true
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}, true
	}
	return "", nil, false
}

// New returns the opener for goos. On an unsupported OS the returned
// opener prints links to fallback instead, or fails with
// models.ErrUnsupportedOS when fallback is nil.
func New(goos string, r Runner, fallback io.Writer, logger *log.Logger) Opener {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	name, args, ok := Command(goos)
	if !ok {
		return &printOpener{
			GOOS:   goos,
			Out:    fallback,
			Logger: logger,
		}
	}
	return &commandOpener{
		Runner: r,
		Name:   name,
		Args:   args,
	}
}

type commandOpener struct {
	Runner Runner
	Name   string
	Args   []string
}

func (o *commandOpener) Open(ctx context.Context, url string) error {
	args := make([]string, 0, len(o.Args)+1)
	args = append(args, o.Args...)
	args = append(args, url)
	if err := o.Runner.Run(ctx, o.Name, args...); err != nil {
		return fmt.Errorf("open %q: %w", url, err)
	}
	return nil
}

type printOpener struct {
	GOOS   string
	Out    io.Writer
	Logger *log.Logger
}

func (o *printOpener) Open(ctx context.Context, url string) error {
	if o.Out == nil {
		return fmt.Errorf("open %q: %w: %s", url, models.ErrUnsupportedOS, o.GOOS)
	}
	o.Logger.Warn("cannot open browser, open the link manually", "os", o.GOOS)
	_, err := fmt.Fprintln(o.Out, url)
	return err
}
