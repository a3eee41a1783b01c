package notes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/sfextract/constants"
	"github.com/jsphweid/sfextract/model"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Default returns the notes the violin samples are taken at.
func Default() model.NoteTable {
	return model.NoteTable{
		{Pitch: 55, Name: "A3"},
		{Pitch: 57, Name: "B3"},
		{Pitch: 59, Name: "C4"},
		{Pitch: 62, Name: "D4"},
		{Pitch: 64, Name: "E4"},
		{Pitch: 69, Name: "A4"},
		{Pitch: 76, Name: "E5"},
		{Pitch: 81, Name: "A5"},
	}
}

// Parse reads "55=A3,57=B3" into a table, keeping the order given.
func Parse(s string) (model.NoteTable, error) {
	var res model.NoteTable
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("bad note %q, expected <pitch>=<name>", pair)
		}
		pitch, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "bad pitch in %q", pair)
		}
		if pitch < 0 || pitch > constants.MaxMidiValue {
			return nil, fmt.Errorf("pitch %d out of range 0-%d", pitch, constants.MaxMidiValue)
		}
		res = append(res, model.Note{Pitch: uint8(pitch), Name: strings.TrimSpace(parts[1])})
	}

	if err := Validate(res); err != nil {
		return nil, err
	}
	return res, nil
}

// Validate rejects empty tables, blank or unsafe names and names used twice,
// since a shared name means a shared output file.
func Validate(table model.NoteTable) error {
	if len(table) == 0 {
		return errors.New("no notes to extract")
	}
	for i, n := range table {
		if n.Pitch > constants.MaxMidiValue {
			return fmt.Errorf("pitch %d out of range 0-%d", n.Pitch, constants.MaxMidiValue)
		}
		if n.Name == "" {
			return fmt.Errorf("pitch %d has no name", n.Pitch)
		}
		if strings.ContainsAny(n.Name, `/\`) || n.Name == "." || n.Name == ".." {
			return fmt.Errorf("name %q can't be used as a file name", n.Name)
		}
		if slices.IndexFunc(table[:i], func(m model.Note) bool { return m.Name == n.Name }) >= 0 {
			return fmt.Errorf("name %q is used more than once", n.Name)
		}
	}
	return nil
}

// Format is the inverse of Parse, used as the --notes default.
func Format(table model.NoteTable) string {
	pairs := make([]string, 0, len(table))
	for _, n := range table {
		pairs = append(pairs, fmt.Sprintf("%d=%s", n.Pitch, n.Name))
	}
	return strings.Join(pairs, ",")
}
