package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bellmetal/doveguide/internal/models"
)

func TestNotEmpty(t *testing.T) {
	assert.False(t, NotEmpty(""))

	// Any content at all means true; the mnemonic itself is irrelevant.
	for _, raw := range []string{"u/r", "GF", "T", "app", " ", "nonsense"} {
		assert.True(t, NotEmpty(raw), "raw=%q", raw)
	}
}

func TestDecodeWeight(t *testing.T) {
	w, fe := DecodeWeight("Wt", "12.5")
	require.Nil(t, fe)
	assert.Equal(t, 12.5, w.Pounds())

	w, fe = DecodeWeight("Wt", "5040")
	require.Nil(t, fe)
	assert.Equal(t, 45.0, w.Hundredweight())

	_, fe = DecodeWeight("Wt", "abc")
	require.NotNil(t, fe)
	assert.Equal(t, KindInvalidNumber, fe.Kind)
	assert.Equal(t, "Wt", fe.Field)

	_, fe = DecodeWeight("Wt", "-12.5")
	require.NotNil(t, fe)
	assert.Equal(t, KindInvalidRange, fe.Kind)
}

func TestDecodeNote(t *testing.T) {
	tests := []struct {
		raw        string
		name       models.NoteName
		accidental models.Accidental
	}{
		{"C", models.NoteC, models.Natural},
		{"C♮", models.NoteC, models.Natural},
		{"C#", models.NoteC, models.Sharp},
		{"C♯", models.NoteC, models.Sharp},
		{"C♭", models.NoteC, models.Flat},
		{"Bb", models.NoteB, models.Flat},
		{"G", models.NoteG, models.Natural},
		// Runes past the accidental are ignored, as in the source export.
		{"F#xyz", models.NoteF, models.Sharp},
	}
	for _, tt := range tests {
		note, fe := DecodeNote("Note", tt.raw)
		require.Nil(t, fe, "raw=%q", tt.raw)
		require.NotNil(t, note, "raw=%q", tt.raw)
		assert.Equal(t, tt.name, note.Name, "raw=%q", tt.raw)
		assert.Equal(t, tt.accidental, note.Accidental, "raw=%q", tt.raw)
	}
}

func TestDecodeNoteAbsent(t *testing.T) {
	note, fe := DecodeNote("Note", "")
	assert.Nil(t, fe)
	assert.Nil(t, note)
}

func TestDecodeNoteInvalid(t *testing.T) {
	// 'H' is not a note name; lowercase is not accepted either.
	for _, raw := range []string{"H", "c", "1", "♯C"} {
		note, fe := DecodeNote("Note", raw)
		assert.Nil(t, note)
		require.NotNil(t, fe, "raw=%q", raw)
		assert.Equal(t, KindInvalidNoteName, fe.Kind, "raw=%q", raw)
	}

	note, fe := DecodeNote("Note", "C$")
	assert.Nil(t, note)
	require.NotNil(t, fe)
	assert.Equal(t, KindInvalidAccidental, fe.Kind)
	assert.Equal(t, "C$", fe.Value)
}
