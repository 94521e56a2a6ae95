package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bellmetal/doveguide/internal/models"
)

// validRaw returns a minimal well-formed row: every required field plus a
// few optional ones.
func validRaw() Raw {
	return Raw{
		"TowerID":      "5082",
		"RingType":     "Full circle ring",
		"Bells":        "10",
		"UR":           "",
		"GF":           "GF",
		"Toilet":       "T",
		"Simulator":    "",
		"App":          "app",
		"Wt":           "1633",
		"Place":        "Appleton",
		"Dedicn":       "S Laurence",
		"Affiliations": "ODG",
		"Note":         "F#",
		"Details":      "P",
		"ExtraInfo":    "a;;b",
		"County":       "Oxfordshire",
		"Lat":          "51.7036",
	}
}

func TestAssembleValidRecord(t *testing.T) {
	ring, err := Assemble(1, validRaw())
	require.NoError(t, err)

	assert.Equal(t, 5082, ring.ID)
	assert.Equal(t, models.RingTypeFullCircle, ring.RingType)
	assert.Equal(t, 10, ring.Bells)
	assert.False(t, ring.Unringable)
	assert.True(t, ring.GroundFloor)
	assert.True(t, ring.Toilet)
	assert.False(t, ring.Simulator)
	assert.True(t, ring.App)
	assert.Equal(t, 1633.0, ring.Weight.Pounds())
	assert.Equal(t, "Appleton", ring.Place)
	assert.Equal(t, "S Laurence", ring.Dedication)

	assert.True(t, ring.Affiliations.Contains(models.AffiliationODG))
	require.NotNil(t, ring.Note)
	assert.Equal(t, "F♯", ring.Note.String())
	require.NotNil(t, ring.Details)
	assert.Equal(t, models.DetailsP, *ring.Details)
	assert.Equal(t, []string{"a", "", "b"}, ring.ExtraInfo)

	require.NotNil(t, ring.County)
	assert.Equal(t, "Oxfordshire", *ring.County)
	require.NotNil(t, ring.Latitude)
	assert.Equal(t, 51.7036, *ring.Latitude)

	// Columns that are absent decode to absent values.
	assert.Nil(t, ring.Practice)
	assert.Nil(t, ring.Frequency)
	assert.Nil(t, ring.TowerbaseID)
}

func TestAssembleUnknownField(t *testing.T) {
	raw := validRaw()
	raw["Bogus"] = "whatever"

	ring, err := Assemble(1, raw)
	assert.Nil(t, ring)
	var recErr *RecordError
	require.ErrorAs(t, err, &recErr)
	require.Len(t, recErr.Fields, 1)
	assert.Equal(t, KindUnknownField, recErr.Fields[0].Kind)
	assert.Equal(t, "Bogus", recErr.Fields[0].Field)
}

func TestAssembleMissingRequiredField(t *testing.T) {
	raw := validRaw()
	delete(raw, "TowerID")

	ring, err := Assemble(3, raw)
	assert.Nil(t, ring)
	var recErr *RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, 3, recErr.Row)
	require.Len(t, recErr.Fields, 1)
	assert.Equal(t, KindMissingField, recErr.Fields[0].Kind)
	assert.Equal(t, "TowerID", recErr.Fields[0].Field)
}

// A missing mandatory field and an invalid optional field are both
// reported from a single assembly attempt.
func TestAssembleCollectsAllErrors(t *testing.T) {
	raw := validRaw()
	delete(raw, "Wt")
	raw["Note"] = "H"

	ring, err := Assemble(1, raw)
	assert.Nil(t, ring)
	var recErr *RecordError
	require.ErrorAs(t, err, &recErr)
	require.Len(t, recErr.Fields, 2)

	// Errors come sorted by field name.
	assert.Equal(t, "Note", recErr.Fields[0].Field)
	assert.Equal(t, KindInvalidNoteName, recErr.Fields[0].Kind)
	assert.Equal(t, "Wt", recErr.Fields[1].Field)
	assert.Equal(t, KindMissingField, recErr.Fields[1].Kind)
}

func TestAssembleUnknownVariant(t *testing.T) {
	raw := validRaw()
	raw["RingType"] = "Chime"

	_, err := Assemble(1, raw)
	var recErr *RecordError
	require.ErrorAs(t, err, &recErr)
	require.Len(t, recErr.Fields, 1)
	assert.Equal(t, KindUnknownVariant, recErr.Fields[0].Kind)
	assert.Equal(t, "RingType", recErr.Fields[0].Field)
	assert.Equal(t, "Chime", recErr.Fields[0].Value)

	raw = validRaw()
	raw["Details"] = "X"
	_, err = Assemble(1, raw)
	require.ErrorAs(t, err, &recErr)
	require.Len(t, recErr.Fields, 1)
	assert.Equal(t, KindUnknownVariant, recErr.Fields[0].Kind)
	assert.Equal(t, "Details", recErr.Fields[0].Field)
}

func TestAssembleInvalidNumbers(t *testing.T) {
	raw := validRaw()
	raw["Bells"] = "ten"
	raw["Lat"] = "north"

	_, err := Assemble(1, raw)
	var recErr *RecordError
	require.ErrorAs(t, err, &recErr)
	require.Len(t, recErr.Fields, 2)
	for _, fe := range recErr.Fields {
		assert.Equal(t, KindInvalidNumber, fe.Kind)
	}
}

// Decoding is deterministic: identical raw input yields identical error
// sets, in the same order, across calls.
func TestAssembleDeterministic(t *testing.T) {
	raw := validRaw()
	delete(raw, "Place")
	raw["Note"] = "C$"
	raw["Wt"] = "-3"
	raw["Mystery"] = "?"

	_, err1 := Assemble(7, raw)
	_, err2 := Assemble(7, raw)
	require.Error(t, err1)
	assert.Equal(t, err1.Error(), err2.Error())
}

func TestAssembleEmptyOptionalFields(t *testing.T) {
	raw := validRaw()
	raw["Affiliations"] = ""
	raw["Note"] = ""
	raw["Details"] = ""
	raw["ExtraInfo"] = ""
	raw["Lat"] = ""

	ring, err := Assemble(1, raw)
	require.NoError(t, err)
	assert.Empty(t, ring.Affiliations)
	assert.Nil(t, ring.Note)
	assert.Nil(t, ring.Details)
	assert.Equal(t, []string{""}, ring.ExtraInfo)
	assert.Nil(t, ring.Latitude)
}
