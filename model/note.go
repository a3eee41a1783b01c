package model

type Pitch = uint8

// Note ties a MIDI pitch to the name its sample is saved under.
type Note struct {
	Pitch Pitch
	Name  string
}

// NoteTable is extracted in order and never mutated after startup.
type NoteTable = []Note

type Instrument struct {
	BankMSB uint8
	BankLSB uint8
	Program uint8
}

func (n Note) String() string {
	return n.Name
}
