package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/jsphweid/sfextract/constants"
	"github.com/jsphweid/sfextract/log"
	"github.com/pkg/errors"
)

// Renderer turns a sequence file into an audio file using a sound bank.
type Renderer interface {
	Render(ctx context.Context, soundFont, sequence, output string) error
}

// Error is returned when the renderer ran but exited non-zero. Output holds
// what it wrote to stderr.
type Error struct {
	Command  string
	ExitCode int
	Output   string
}

func (e *Error) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("%s failed with exit code %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s failed with exit code %d: %s", e.Command, e.ExitCode, out)
}

type FluidSynth struct {
	Command    string
	SampleRate int

	// passed through from --renderer-arg, before the sound bank and sequence
	Extra []string

	Log *log.Logger
}

func NewFluidSynth(command string, sampleRate int, l *log.Logger) *FluidSynth {
	if command == "" {
		command = constants.DefaultRenderer
	}
	if sampleRate <= 0 {
		sampleRate = constants.DefaultSampleRate
	}
	return &FluidSynth{Command: command, SampleRate: sampleRate, Log: l}
}

// Args is the argument list for one render, without the command itself.
func (f *FluidSynth) Args(soundFont, sequence, output string) []string {
	args := []string{
		"-ni",
		"-F", output,
		"-r", strconv.Itoa(f.SampleRate),
	}
	args = append(args, f.Extra...)
	return append(args, soundFont, sequence)
}

// LookPath fails when the renderer isn't installed.
func (f *FluidSynth) LookPath() (string, error) {
	path, err := exec.LookPath(f.Command)
	if err != nil {
		return "", errors.Wrapf(err, "%s not found", f.Command)
	}
	return path, nil
}

// Render blocks until the renderer exits. There is no timeout unless ctx has one.
func (f *FluidSynth) Render(ctx context.Context, soundFont, sequence, output string) error {
	args := f.Args(soundFont, sequence, output)
	f.Log.Debugf("running %s %s", f.Command, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, f.Command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if stdout.Len() > 0 {
		f.Log.Debugf("%s stdout:\n%s", f.Command, strings.TrimRight(stdout.String(), "\n"))
	}
	if stderr.Len() > 0 {
		f.Log.Debugf("%s stderr:\n%s", f.Command, strings.TrimRight(stderr.String(), "\n"))
	}
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return &Error{
			Command:  f.Command,
			ExitCode: exitErr.ExitCode(),
			Output:   stderr.String(),
		}
	}
	if ctx.Err() != nil {
		return errors.Wrapf(ctx.Err(), "%s interrupted", f.Command)
	}
	return errors.Wrapf(err, "could not run %s", f.Command)
}

type timeoutRenderer struct {
	Renderer
	timeout time.Duration
}

func (t timeoutRenderer) Render(ctx context.Context, soundFont, sequence, output string) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.Renderer.Render(ctx, soundFont, sequence, output)
}

// WithTimeout bounds every render by d. Zero or less leaves r unbounded.
func WithTimeout(r Renderer, d time.Duration) Renderer {
	if d <= 0 {
		return r
	}
	return timeoutRenderer{Renderer: r, timeout: d}
}
