package notes

import (
	"testing"

	"github.com/jsphweid/sfextract/model"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTable(t *testing.T) {
	table := Default()

	assert := assert.New(t)
	assert.Len(table, 8)
	assert.Equal(model.Note{Pitch: 55, Name: "A3"}, table[0])
	assert.Equal(model.Note{Pitch: 81, Name: "A5"}, table[7])
	assert.NoError(Validate(table))
}

func TestParseKeepsGivenOrder(t *testing.T) {
	table, err := Parse("81=A5, 55=A3,69=A4")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(model.NoteTable{
		{Pitch: 81, Name: "A5"},
		{Pitch: 55, Name: "A3"},
		{Pitch: 69, Name: "A4"},
	}, table)
}

func TestParseRoundTripsDefault(t *testing.T) {
	table, err := Parse(Format(Default()))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(Default(), table)
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		"60",
		"x=C4",
		"128=G9",
		"-1=B-1",
		"60=",
		"60=C4,61=C4",
		"60=../C4",
	}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			_, err := Parse(c)
			assert.Error(t, err)
		})
	}
}
