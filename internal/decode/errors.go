package decode

import (
	"fmt"
	"strings"
)

// Kind discriminates the field-level failure modes of the decoder.
type Kind string

const (
	KindUnknownField       Kind = "unknown_field"
	KindMissingField       Kind = "missing_field"
	KindInvalidNumber      Kind = "invalid_number"
	KindInvalidNoteName    Kind = "invalid_note_name"
	KindInvalidAccidental  Kind = "invalid_accidental"
	KindUnknownAffiliation Kind = "unknown_affiliation"
	KindUnknownVariant     Kind = "unknown_variant"
	KindInvalidRange       Kind = "invalid_range"
)

func (k Kind) String() string { return string(k) }

// FieldError is one decode failure, scoped to a single field of a single
// record. Value carries the offending raw text where one exists.
type FieldError struct {
	Kind  Kind
	Field string
	Value string
}

func (e *FieldError) Error() string {
	switch e.Kind {
	case KindUnknownField:
		return fmt.Sprintf("%s: field is not part of the schema", e.Field)
	case KindMissingField:
		return fmt.Sprintf("%s: required field is missing", e.Field)
	case KindInvalidNumber:
		return fmt.Sprintf("%s: %q is not a number", e.Field, e.Value)
	case KindInvalidNoteName:
		return fmt.Sprintf("%s: %q does not begin with a note name A-G", e.Field, e.Value)
	case KindInvalidAccidental:
		return fmt.Sprintf("%s: %q does not carry a valid accidental", e.Field, e.Value)
	case KindUnknownAffiliation:
		return fmt.Sprintf("%s: unknown affiliation code %q", e.Field, e.Value)
	case KindUnknownVariant:
		return fmt.Sprintf("%s: unknown value %q", e.Field, e.Value)
	case KindInvalidRange:
		return fmt.Sprintf("%s: %q is out of range", e.Field, e.Value)
	default:
		return fmt.Sprintf("%s: decode failed", e.Field)
	}
}

// RecordError aggregates every field failure from one assembly attempt.
// Fields is never empty and is sorted by field name, so identical raw
// input always produces an identical error set.
type RecordError struct {
	// Row is the 1-based data-row index in the source, 0 when unknown.
	Row    int
	Fields []*FieldError
}

func (e *RecordError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Error())
	}
	return fmt.Sprintf("row %d: %d field error(s): %s", e.Row, len(e.Fields), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual field errors to errors.Is / errors.As.
func (e *RecordError) Unwrap() []error {
	errs := make([]error, len(e.Fields))
	for i, fe := range e.Fields {
		errs[i] = fe
	}
	return errs
}
