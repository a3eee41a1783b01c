package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)
	l.Debugf("d")
	l.Warnf("w %d", 1)
	assert.Equal(t, "WARN: w 1\n", buf.String())

	buf.Reset()
	l = New(&buf, LevelError)
	l.Warnf("w")
	assert.Empty(t, buf.String())
}

func TestNoneIsSilent(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelNone)
	l.Warnf("w")
	assert.Empty(t, buf.String())

	var nilLogger *Logger
	nilLogger.Warnf("no panic")
}

func TestParseLevel(t *testing.T) {
	assert := assert.New(t)

	lvl, ok := ParseLevel("debug")
	assert.True(ok)
	assert.Equal(LevelDebug, lvl)

	lvl, ok = ParseLevel("Warning")
	assert.True(ok)
	assert.Equal(LevelWarn, lvl)

	_, ok = ParseLevel("loud")
	assert.False(ok)
}
