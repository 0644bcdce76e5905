package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDeck(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stepdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeDeck(t, `
title: bench
dials:
  - label: Volume
    minimum: 0
    maximum: 100
    step: 5
    initial: 40
    interval: 250ms
  - label: Channel
    minimum: 1
    maximum: 12
    initial: 1
    wraps: true
`)

	d, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "bench", d.Title)
	require.Len(t, d.Dials, 2)
	assert.Equal(t, 5.0, d.Dials[0].Step)
	assert.True(t, d.Dials[1].Wraps)

	iv, err := d.Dials[0].ParseInterval()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, iv)
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("DECK_TITLE", "from-env")
	path := writeDeck(t, `
title: ${DECK_TITLE}
dials:
  - label: Volume
    minimum: 0
    maximum: 10
`)

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", d.Title)
}

func TestLoad_RejectsInvertedBounds(t *testing.T) {
	path := writeDeck(t, `
dials:
  - label: Broken
    minimum: 5
    maximum: 3
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minimum 5 must be less than maximum 3")
}

func TestLoad_RejectsBadInterval(t *testing.T) {
	path := writeDeck(t, `
dials:
  - label: Volume
    minimum: 0
    maximum: 10
    interval: -1s
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestLoad_RejectsInitialOutsideBounds(t *testing.T) {
	path := writeDeck(t, `
dials:
  - label: Volume
    minimum: 0
    maximum: 10
    initial: 11
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_RejectsEmptyDeck(t *testing.T) {
	path := writeDeck(t, `title: empty`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")

	d := Default()
	require.NoError(t, Save(d, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestDial_BuildAppliesConfiguration(t *testing.T) {
	off := false
	dl := Dial{
		Label:         "Gain",
		Minimum:       -30,
		Maximum:       -10,
		Step:          2,
		DecrementStep: 3,
		Initial:       -20,
		Wraps:         true,
		AutoRepeat:    &off,
		Interval:      "50ms",
	}
	require.NoError(t, dl.Validate())

	s := dl.Build("down", "up")
	defer s.Close()

	assert.Equal(t, -30.0, s.Minimum())
	assert.Equal(t, -10.0, s.Maximum())
	assert.Equal(t, 2.0, s.IncrementStep())
	assert.Equal(t, 3.0, s.DecrementStep())
	assert.Equal(t, -20.0, s.Value())
	assert.True(t, s.Wraps())
	assert.False(t, s.AutoRepeat())
	assert.Equal(t, 50*time.Millisecond, s.AutoRepeatInterval())
}

func TestDial_BuildDefaultsSteps(t *testing.T) {
	dl := Dial{Label: "Volume", Minimum: 0, Maximum: 10}

	s := dl.Build("down", "up")
	defer s.Close()

	assert.Equal(t, 1.0, s.IncrementStep())
	assert.Equal(t, 1.0, s.DecrementStep())
	assert.Equal(t, DefaultInterval, s.AutoRepeatInterval())
	assert.True(t, s.AutoRepeat())
}

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}
