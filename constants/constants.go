package constants

import (
	"os"
	"path/filepath"
)

const (
	DefaultRenderer   = "fluidsynth"
	DefaultSampleRate = 44100

	// 120 BPM, i.e. 500000 microseconds per beat
	DefaultBPM        = 120
	DefaultResolution = 480

	DefaultDuration = 4.0
	DefaultVelocity = 100

	// voice layout of the violin bank these samples were first pulled from
	DefaultProgram = 40
	DefaultBankMSB = 0
	DefaultBankLSB = 0

	OutDirName    = "samples"
	TempPrefix    = "temp_"
	SequenceExt   = ".mid"
	RenderedExt   = ".wav"
	MaxMidiValue  = 127
	DefaultLogLvl = "info"
)

func GetRenderer() string {
	path := os.Getenv("FLUIDSYNTH_PATH")
	if path != "" {
		return path
	}
	return DefaultRenderer
}

// GetOutDir returns SFEXTRACT_OUT, falling back to samples/ next to the executable.
func GetOutDir() string {
	path := os.Getenv("SFEXTRACT_OUT")
	if path != "" {
		return path
	}
	exe, err := os.Executable()
	if err != nil {
		return OutDirName
	}
	return filepath.Join(filepath.Dir(exe), OutDirName)
}
