package decode

import (
	"strconv"

	"bellmetal/doveguide/internal/models"
)

// NotEmpty decodes a presence flag: false iff the raw field is empty.
// Any non-empty content is true regardless of its text; the source uses
// short mnemonic codes ("u/r", "GF", "T", "app") that carry no further
// information once truthiness is established.
func NotEmpty(raw string) bool {
	return raw != ""
}

// DecodeWeight decodes a tenor weight in pounds. Non-numeric input fails
// with InvalidNumber; negative input fails with InvalidRange.
func DecodeWeight(field, raw string) (models.Weight, *FieldError) {
	lbs, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.Weight{}, &FieldError{Kind: KindInvalidNumber, Field: field, Value: raw}
	}
	if lbs < 0 {
		return models.Weight{}, &FieldError{Kind: KindInvalidRange, Field: field, Value: raw}
	}
	return models.NewWeight(lbs), nil
}

// DecodeNote decodes an optional note such as "C", "F♯" or "B♭". An empty
// field is absence, not an error. The first rune must be a note name A-G
// (case-sensitive); the second, when present, an accidental (♭ or b, ♮,
// ♯ or #). Runes past the second are ignored, matching the source export.
func DecodeNote(field, raw string) (*models.Note, *FieldError) {
	if raw == "" {
		return nil, nil
	}
	runes := []rune(raw)

	var name models.NoteName
	switch runes[0] {
	case 'A', 'B', 'C', 'D', 'E', 'F', 'G':
		name = models.NoteName(runes[0])
	default:
		return nil, &FieldError{Kind: KindInvalidNoteName, Field: field, Value: raw}
	}

	accidental := models.Natural
	if len(runes) > 1 {
		switch runes[1] {
		case '♭', 'b':
			accidental = models.Flat
		case '♮':
			accidental = models.Natural
		case '♯', '#':
			accidental = models.Sharp
		default:
			return nil, &FieldError{Kind: KindInvalidAccidental, Field: field, Value: raw}
		}
	}

	return &models.Note{Name: name, Accidental: accidental}, nil
}

// decodeInt parses a required integer field such as TowerID or Bells.
func decodeInt(field, raw string) (int, *FieldError) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Kind: KindInvalidNumber, Field: field, Value: raw}
	}
	return n, nil
}

// decodeOptionalInt treats an empty field as absence.
func decodeOptionalInt(field, raw string) (*int, *FieldError) {
	if raw == "" {
		return nil, nil
	}
	n, fe := decodeInt(field, raw)
	if fe != nil {
		return nil, fe
	}
	return &n, nil
}

// decodeOptionalFloat treats an empty field as absence.
func decodeOptionalFloat(field, raw string) (*float64, *FieldError) {
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &FieldError{Kind: KindInvalidNumber, Field: field, Value: raw}
	}
	return &f, nil
}

// optionalString treats an empty field as absence; never errors.
func optionalString(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}
