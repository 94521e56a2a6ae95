package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteString(t *testing.T) {
	assert.Equal(t, "C", Note{Name: NoteC, Accidental: Natural}.String())
	assert.Equal(t, "F♯", Note{Name: NoteF, Accidental: Sharp}.String())
	assert.Equal(t, "B♭", Note{Name: NoteB, Accidental: Flat}.String())
}

func TestWeightUnits(t *testing.T) {
	w := NewWeight(1232)
	assert.Equal(t, 1232.0, w.Pounds())
	assert.Equal(t, 11.0, w.Hundredweight())
	assert.Equal(t, "1232 lbs", w.String())

	assert.Equal(t, "12.5 lbs", NewWeight(12.5).String())
}

func TestAffiliationSetContains(t *testing.T) {
	var empty AffiliationSet
	assert.False(t, empty.Contains(AffiliationODG))

	set := AffiliationSet{AffiliationODG: {}}
	assert.True(t, set.Contains(AffiliationODG))
	assert.False(t, set.Contains(AffiliationSurr))
}
