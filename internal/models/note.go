package models

// Glyphs used when rendering accidentals. Natural is deliberately absent:
// a natural note renders as the bare note name.
const (
	FlatGlyph  = "♭"
	SharpGlyph = "♯"
)

// NoteName is the root name of a musical note, A through G.
type NoteName string

const (
	NoteA NoteName = "A"
	NoteB NoteName = "B"
	NoteC NoteName = "C"
	NoteD NoteName = "D"
	NoteE NoteName = "E"
	NoteF NoteName = "F"
	NoteG NoteName = "G"
)

func (n NoteName) String() string { return string(n) }

// Accidental modifies a NoteName to produce a specific Note.
type Accidental int

const (
	Natural Accidental = iota
	Flat
	Sharp
)

func (a Accidental) String() string {
	switch a {
	case Flat:
		return FlatGlyph
	case Sharp:
		return SharpGlyph
	default:
		return ""
	}
}

// Note is the nominal note of the heaviest bell in a ring: a root name
// plus an accidental.
type Note struct {
	Name       NoteName
	Accidental Accidental
}

// String renders the note the way Dove's Guide prints it, e.g. "C", "F♯",
// "B♭". Naturals carry no symbol.
func (n Note) String() string {
	return n.Name.String() + n.Accidental.String()
}
