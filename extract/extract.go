package extract

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jsphweid/sfextract/constants"
	"github.com/jsphweid/sfextract/log"
	"github.com/jsphweid/sfextract/model"
	"github.com/jsphweid/sfextract/render"
	"github.com/jsphweid/sfextract/sequence"
	"github.com/jsphweid/sfextract/util"
	"github.com/jsphweid/sfextract/wave"
	"github.com/pkg/errors"
)

type Extractor struct {
	SoundFont string
	OutDir    string
	Sequence  sequence.Options
	Renderer  render.Renderer

	Out io.Writer
	Log *log.Logger
}

func TempPath(outDir string, note model.Note) string {
	return filepath.Join(outDir, constants.TempPrefix+note.Name+constants.SequenceExt)
}

func OutputPath(outDir string, note model.Note) string {
	return filepath.Join(outDir, note.Name+constants.RenderedExt)
}

// ExtractNote renders one note to <name>.wav. The temporary sequence is only
// removed once the render succeeded.
func (e *Extractor) ExtractNote(ctx context.Context, note model.Note) (string, error) {
	tempMidi := TempPath(e.OutDir, note)
	outputWav := OutputPath(e.OutDir, note)

	fmt.Fprintf(e.Out, "Extracting %s (MIDI %d)...\n", note.Name, note.Pitch)

	if err := sequence.WriteFile(tempMidi, note.Pitch, e.Sequence); err != nil {
		return "", errors.Wrap(err, "could not build sequence")
	}

	if err := e.Renderer.Render(ctx, e.SoundFont, tempMidi, outputWav); err != nil {
		return "", err
	}

	// the wav exists at this point, a stale sequence doesn't undo that
	if err := os.Remove(tempMidi); err != nil {
		e.Log.Warnf("could not clean up %s: %v", tempMidi, err)
	}

	if info, err := wave.Inspect(outputWav); err != nil {
		e.Log.Warnf("%s: %v", outputWav, err)
	} else {
		e.Log.Debugf("%s: %s", outputWav, info)
	}

	fmt.Fprintf(e.Out, "  → Saved to %s\n", outputWav)
	return outputWav, nil
}

// Run extracts every note once, in order. A failed note is reported and
// skipped; the closing summary always lists the whole table.
func (e *Extractor) Run(ctx context.Context, table model.NoteTable) (model.Report, error) {
	var report model.Report

	if err := util.EnsureDir(e.OutDir); err != nil {
		return report, err
	}

	fmt.Fprintf(e.Out, "Extracting samples from: %s\n", e.SoundFont)
	fmt.Fprintf(e.Out, "Output directory: %s\n", e.OutDir)
	fmt.Fprintf(e.Out, "Extracting %d notes...\n\n", len(table))

	for _, note := range table {
		if err := ctx.Err(); err != nil {
			return report, errors.Wrap(err, "extraction stopped")
		}
		report.Attempted = append(report.Attempted, note.Name)
		if _, err := e.ExtractNote(ctx, note); err != nil {
			fmt.Fprintf(e.Out, "  ✗ Error extracting %s: %v\n", note.Name, err)
			e.Log.Debugf("%s failed: %+v", note.Name, err)
			report.Failed = append(report.Failed, note.Name)
			continue
		}
		report.Succeeded = append(report.Succeeded, note.Name)
	}

	fmt.Fprintf(e.Out, "\n✓ Done! Samples saved to: %s\n", e.OutDir)
	fmt.Fprintf(e.Out, "\nExtracted notes: %s\n", util.JoinNames(table, ", "))
	return report, nil
}
