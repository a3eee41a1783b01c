package wave

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

const pcmFormat = 1

// WriteSilence writes a 16 bit PCM file of the given length. Renderer fakes
// use it to produce something Inspect accepts.
func WriteSilence(path string, sampleRate, channels, frames int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create wav")
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, pcmFormat)
	buf := &audio.IntBuffer{
		Data:           make([]int, frames*channels),
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return errors.Wrap(err, "could not write samples")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "could not finish wav")
	}
	return nil
}
