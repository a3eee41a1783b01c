package sequence

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadFile loads a standard midi file from disk.
func ReadFile(filepath string) (s *smf.SMF, e error) {
	// smf can panic on truncated input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s = nil
			e = fmt.Errorf("Error parsing midi file... %v", r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error reading midi file")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing midi file")
	}

	return res, nil
}

type Event struct {
	Track    int
	AbsTicks uint64
	Delta    uint32
	Message  smf.Message
}

func (e Event) String() string {
	return fmt.Sprintf("track %d @%d (+%d): %s", e.Track, e.AbsTicks, e.Delta, e.Message.String())
}

// Describe flattens every track into events with absolute tick offsets.
func Describe(s *smf.SMF) []Event {
	var res []Event
	for i, track := range s.Tracks {
		var absTicks uint64
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			res = append(res, Event{
				Track:    i,
				AbsTicks: absTicks,
				Delta:    evt.Delta,
				Message:  evt.Message,
			})
		}
	}
	return res
}
