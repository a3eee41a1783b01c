package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jsphweid/sfextract/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// writeStub puts an executable shell script standing in for fluidsynth in a temp dir.
func writeStub(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs need a unix shell")
	}
	path := filepath.Join(t.TempDir(), "fluidsynth-stub")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestArgs(t *testing.T) {
	f := NewFluidSynth("", 0, nil)

	assert := assert.New(t)
	assert.Equal("fluidsynth", f.Command)
	assert.Equal(
		[]string{"-ni", "-F", "out/A3.wav", "-r", "44100", "bank.sf2", "out/temp_A3.mid"},
		f.Args("bank.sf2", "out/temp_A3.mid", "out/A3.wav"),
	)

	f.Extra = []string{"-g", "0.5"}
	f.SampleRate = 48000
	assert.Equal(
		[]string{"-ni", "-F", "o.wav", "-r", "48000", "-g", "0.5", "b.sf2", "s.mid"},
		f.Args("b.sf2", "s.mid", "o.wav"),
	)
}

func TestRenderPassesArgsToProcess(t *testing.T) {
	dir := t.TempDir()
	record := filepath.Join(dir, "args.txt")
	stub := writeStub(t, `printf '%s\n' "$@" > "`+record+`"`)

	f := NewFluidSynth(stub, 44100, log.Discard())
	err := f.Render(context.Background(), "bank.sf2", "temp_A3.mid", "A3.wav")

	assert := assert.New(t)
	assert.NoError(err)
	got, err := os.ReadFile(record)
	assert.NoError(err)
	assert.Equal("-ni\n-F\nA3.wav\n-r\n44100\nbank.sf2\ntemp_A3.mid\n", string(got))
}

func TestRenderNonZeroExitIsError(t *testing.T) {
	stub := writeStub(t, "echo 'FluidSynth runtime version 2.3.4'\necho 'fluidsynth: error: bad soundfont' >&2\nexit 3")

	f := NewFluidSynth(stub, 44100, log.Discard())
	err := f.Render(context.Background(), "bank.sf2", "s.mid", "o.wav")

	assert := assert.New(t)
	var renderErr *Error
	assert.ErrorAs(err, &renderErr)
	assert.Equal(3, renderErr.ExitCode)
	assert.Contains(renderErr.Output, "bad soundfont")
	assert.NotContains(renderErr.Output, "runtime version")
	assert.Contains(err.Error(), "exit code 3")
}

func TestRenderMissingCommand(t *testing.T) {
	f := NewFluidSynth(filepath.Join(t.TempDir(), "nope"), 44100, log.Discard())
	err := f.Render(context.Background(), "b.sf2", "s.mid", "o.wav")

	assert := assert.New(t)
	assert.Error(err)
	var renderErr *Error
	assert.False(errors.As(err, &renderErr))

	_, err = f.LookPath()
	assert.Error(err)
}

func TestRenderHonorsContext(t *testing.T) {
	stub := writeStub(t, "exec sleep 5")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	f := NewFluidSynth(stub, 44100, log.Discard())
	start := time.Now()
	err := f.Render(ctx, "b.sf2", "s.mid", "o.wav")

	assert := assert.New(t)
	assert.ErrorIs(err, context.DeadlineExceeded)
	assert.Less(time.Since(start), 4*time.Second)
}

func TestWithTimeout(t *testing.T) {
	stub := writeStub(t, "exec sleep 5")
	f := NewFluidSynth(stub, 44100, log.Discard())

	assert := assert.New(t)
	assert.Equal(Renderer(f), WithTimeout(f, 0))

	err := WithTimeout(f, 50*time.Millisecond).Render(context.Background(), "b.sf2", "s.mid", "o.wav")
	assert.ErrorIs(err, context.DeadlineExceeded)
}

func TestRenderLogsStdout(t *testing.T) {
	stub := writeStub(t, "echo 'FluidSynth runtime version 2.3.4'")
	var buf bytes.Buffer

	f := NewFluidSynth(stub, 44100, log.New(&buf, log.LevelDebug))
	err := f.Render(context.Background(), "b.sf2", "s.mid", "o.wav")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Contains(buf.String(), "stdout:\nFluidSynth runtime version 2.3.4")
}
