package wave

import (
	"fmt"
	"os"
	"time"

	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

type Info struct {
	SampleRate uint32
	Channels   uint16
	BitDepth   uint16
	Duration   time.Duration
}

func (i Info) String() string {
	return fmt.Sprintf("%d Hz, %d ch, %d bit, %v", i.SampleRate, i.Channels, i.BitDepth, i.Duration)
}

// Inspect reads the header of a rendered wav file.
func Inspect(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, errors.Wrap(err, "could not open wav")
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return Info{}, fmt.Errorf("%s is not a valid wav file", path)
	}

	dur, err := d.Duration()
	if err != nil {
		return Info{}, errors.Wrap(err, "could not read wav duration")
	}

	return Info{
		SampleRate: d.SampleRate,
		Channels:   d.NumChans,
		BitDepth:   d.BitDepth,
		Duration:   dur,
	}, nil
}
