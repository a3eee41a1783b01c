package sequence

import (
	"fmt"

	"github.com/jsphweid/sfextract/constants"
	"github.com/jsphweid/sfextract/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ccBankSelectMSB = 0
	ccBankSelectLSB = 32

	// largest delta a variable length quantity can hold
	maxDeltaTicks = 0x0FFFFFFF
)

type Options struct {
	Instrument model.Instrument
	Channel    uint8
	Velocity   uint8

	// seconds the note is held before note-off
	Duration float64

	// ticks per quarter note
	Resolution uint16
	BPM        float64
}

func DefaultOptions() Options {
	return Options{
		Instrument: model.Instrument{
			BankMSB: constants.DefaultBankMSB,
			BankLSB: constants.DefaultBankLSB,
			Program: constants.DefaultProgram,
		},
		Velocity:   constants.DefaultVelocity,
		Duration:   constants.DefaultDuration,
		Resolution: constants.DefaultResolution,
		BPM:        constants.DefaultBPM,
	}
}

// Ticks converts a hold duration to a tick offset. The duration is scaled by
// the resolution alone, so a "second" here is one beat.
func Ticks(duration float64, resolution uint16) uint32 {
	return uint32(duration * float64(resolution))
}

func (o Options) validate(pitch model.Pitch) error {
	switch {
	case pitch > constants.MaxMidiValue:
		return fmt.Errorf("pitch %d out of range 0-%d", pitch, constants.MaxMidiValue)
	case o.Velocity > constants.MaxMidiValue:
		return fmt.Errorf("velocity %d out of range 0-%d", o.Velocity, constants.MaxMidiValue)
	case o.Channel > 15:
		return fmt.Errorf("channel %d out of range 0-15", o.Channel)
	case o.Instrument.Program > constants.MaxMidiValue,
		o.Instrument.BankMSB > constants.MaxMidiValue,
		o.Instrument.BankLSB > constants.MaxMidiValue:
		return fmt.Errorf("instrument %+v out of range 0-%d", o.Instrument, constants.MaxMidiValue)
	case o.Duration <= 0:
		return fmt.Errorf("duration must be positive, got %v", o.Duration)
	case o.Resolution == 0:
		return errors.New("resolution must be positive")
	case o.Duration*float64(o.Resolution) > maxDeltaTicks:
		return fmt.Errorf("duration %v is longer than a midi delta can hold (%d ticks)", o.Duration, maxDeltaTicks)
	case o.BPM <= 0:
		return fmt.Errorf("bpm must be positive, got %v", o.BPM)
	}
	return nil
}

// Build creates a single track sequence that sounds exactly one note.
func Build(pitch model.Pitch, opts Options) (*smf.SMF, error) {
	if err := opts.validate(pitch); err != nil {
		return nil, err
	}

	var track smf.Track
	ch := opts.Channel
	track.Add(0, smf.MetaTempo(opts.BPM))
	track.Add(0, midi.ControlChange(ch, ccBankSelectMSB, opts.Instrument.BankMSB))
	track.Add(0, midi.ControlChange(ch, ccBankSelectLSB, opts.Instrument.BankLSB))
	track.Add(0, midi.ProgramChange(ch, opts.Instrument.Program))
	track.Add(0, midi.NoteOn(ch, pitch, opts.Velocity))
	track.Add(Ticks(opts.Duration, opts.Resolution), midi.NoteOffVelocity(ch, pitch, opts.Velocity))
	track.Close(0)

	res := smf.New()
	res.TimeFormat = smf.MetricTicks(opts.Resolution)
	if err := res.Add(track); err != nil {
		return nil, errors.Wrap(err, "could not add track")
	}
	return res, nil
}

// WriteFile builds the one note sequence and saves it to path.
func WriteFile(path string, pitch model.Pitch, opts Options) error {
	s, err := Build(pitch, opts)
	if err != nil {
		return err
	}
	if err := s.WriteFile(path); err != nil {
		return errors.Wrapf(err, "could not write sequence %s", path)
	}
	return nil
}
