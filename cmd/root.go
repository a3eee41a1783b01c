package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsphweid/sfextract/constants"
	"github.com/jsphweid/sfextract/extract"
	"github.com/jsphweid/sfextract/log"
	"github.com/jsphweid/sfextract/notes"
	"github.com/jsphweid/sfextract/render"
	"github.com/jsphweid/sfextract/sequence"
	"github.com/jsphweid/sfextract/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const installHelp = `Please install FluidSynth:
  macOS: brew install fluid-synth
  Linux: apt-get install fluidsynth
or point FLUIDSYNTH_PATH / --renderer at the binary`

type config struct {
	outDir     string
	renderer   string
	extraArgs  []string
	sampleRate int
	notes      string
	logLevel   string
	timeout    time.Duration
	seq        sequence.Options
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cfg := config{seq: sequence.DefaultOptions()}

	cmd := &cobra.Command{
		Use:   "sfextract <soundfont.sf2>",
		Short: "Extracts note samples from a SoundFont",
		Long: `Renders one WAV per configured note from a SoundFont by writing a
single note midi file and running it through FluidSynth.`,
		Example:       "  sfextract ~/Downloads/Valiant_Violin_V2.sf2",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd, cfg, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfg.outDir, "out", "o", constants.GetOutDir(), "output directory ($SFEXTRACT_OUT)")
	f.StringVar(&cfg.renderer, "renderer", constants.GetRenderer(), "renderer executable ($FLUIDSYNTH_PATH)")
	f.StringArrayVar(&cfg.extraArgs, "renderer-arg", nil, "extra argument for the renderer, repeatable (e.g. --renderer-arg=-g --renderer-arg=0.5)")
	f.IntVarP(&cfg.sampleRate, "sample-rate", "r", constants.DefaultSampleRate, "sample rate of the rendered files")
	f.StringVar(&cfg.notes, "notes", notes.Format(notes.Default()), "notes to extract as <pitch>=<name>,...")
	f.StringVar(&cfg.logLevel, "log-level", constants.DefaultLogLvl, "debug, info, warn, error or none")
	f.DurationVar(&cfg.timeout, "timeout", 0, "limit for a single render, 0 waits forever")
	f.Uint8Var(&cfg.seq.Instrument.Program, "program", constants.DefaultProgram, "program change sent before the note")
	f.Uint8Var(&cfg.seq.Instrument.BankMSB, "bank-msb", constants.DefaultBankMSB, "bank select MSB (CC 0)")
	f.Uint8Var(&cfg.seq.Instrument.BankLSB, "bank-lsb", constants.DefaultBankLSB, "bank select LSB (CC 32)")
	f.Uint8Var(&cfg.seq.Velocity, "velocity", constants.DefaultVelocity, "note-on velocity")
	f.Float64Var(&cfg.seq.Duration, "duration", constants.DefaultDuration, "how long each note is held")

	cmd.AddCommand(newInspectCmd())
	return cmd
}

func run(cmd *cobra.Command, cfg config, soundFontArg string) error {
	lvl, ok := log.ParseLevel(cfg.logLevel)
	if !ok {
		return fmt.Errorf("unknown log level %q", cfg.logLevel)
	}
	logger := log.New(cmd.ErrOrStderr(), lvl)

	table, err := notes.Parse(cfg.notes)
	if err != nil {
		return errors.Wrap(err, "bad --notes")
	}

	soundFont, err := util.ExpandHome(soundFontArg)
	if err != nil {
		return err
	}
	if !util.FileExists(soundFont) {
		return fmt.Errorf("Soundfont file not found: %s", soundFont)
	}

	fluidsynth := render.NewFluidSynth(cfg.renderer, cfg.sampleRate, logger)
	fluidsynth.Extra = cfg.extraArgs
	path, err := fluidsynth.LookPath()
	if err != nil {
		return fmt.Errorf("%w\n%s", err, installHelp)
	}
	logger.Debugf("using renderer %s", path)

	e := &extract.Extractor{
		SoundFont: soundFont,
		OutDir:    cfg.outDir,
		Sequence:  cfg.seq,
		Renderer:  render.WithTimeout(fluidsynth, cfg.timeout),
		Out:       cmd.OutOrStdout(),
		Log:       logger,
	}
	report, err := e.Run(cmd.Context(), table)
	if err != nil {
		return err
	}
	if len(report.Failed) > 0 {
		logger.Warnf("%d of %d notes failed: %v", len(report.Failed), len(report.Attempted), report.Failed)
	}
	return nil
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cobra.CheckErr(rootCmd.ExecuteContext(ctx))
}
