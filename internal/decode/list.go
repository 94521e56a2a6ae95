package decode

import (
	"strings"

	"bellmetal/doveguide/internal/constants"
	"bellmetal/doveguide/internal/models"
)

// SplitList decodes a semicolon-delimited free-text list. The split is a
// literal one and must stay that way for round-trip fidelity with the
// export: "a;;b" yields ["a", "", "b"] and "" yields [""], a single empty
// element rather than an empty list.
func SplitList(raw string) []string {
	return strings.Split(raw, ";")
}

// DecodeAffiliations decodes a semicolon-delimited set of organization
// codes against the closed vocabulary. An empty field is an empty set, not
// an error; duplicate codes collapse; empty segments (trailing delimiters)
// are skipped. A code outside the vocabulary fails with UnknownAffiliation
// carrying the offending code.
func DecodeAffiliations(field, raw string) (models.AffiliationSet, *FieldError) {
	set := models.AffiliationSet{}
	if raw == "" {
		return set, nil
	}
	for _, code := range strings.Split(raw, ";") {
		if code == "" {
			continue
		}
		a, ok := constants.AffiliationByCode[code]
		if !ok {
			return nil, &FieldError{Kind: KindUnknownAffiliation, Field: field, Value: code}
		}
		set[a] = struct{}{}
	}
	return set, nil
}
