package decode

import (
	"sort"

	"bellmetal/doveguide/internal/constants"
	"bellmetal/doveguide/internal/models"
)

// Raw is one row of the export: header name to raw cell text.
type Raw map[string]string

// fieldSpec binds one schema field to its decoder. The schema is a data
// table; new fields mean new entries here, not new decode flow.
type fieldSpec struct {
	required bool
	apply    func(r *models.Ring, field, raw string) *FieldError
}

var ringTypeByTag = map[string]models.RingType{
	string(models.RingTypeFullCircle): models.RingTypeFullCircle,
	string(models.RingTypeCarillon):   models.RingTypeCarillon,
}

var detailsByTag = map[string]models.Details{
	string(models.DetailsP): models.DetailsP,
	string(models.DetailsC): models.DetailsC,
}

// schema is the closed field set of a Dove's record. Any raw field outside
// it is a hard error, so upstream format drift surfaces immediately
// instead of being silently dropped.
var schema = map[constants.FieldName]fieldSpec{
	constants.FieldTowerID: {required: true, apply: func(r *models.Ring, field, raw string) *FieldError {
		n, fe := decodeInt(field, raw)
		r.ID = n
		return fe
	}},
	constants.FieldRingType: {required: true, apply: func(r *models.Ring, field, raw string) *FieldError {
		rt, ok := ringTypeByTag[raw]
		if !ok {
			return &FieldError{Kind: KindUnknownVariant, Field: field, Value: raw}
		}
		r.RingType = rt
		return nil
	}},
	constants.FieldBells: {required: true, apply: func(r *models.Ring, field, raw string) *FieldError {
		n, fe := decodeInt(field, raw)
		r.Bells = n
		return fe
	}},
	constants.FieldUnringable: {required: true, apply: func(r *models.Ring, _, raw string) *FieldError {
		r.Unringable = NotEmpty(raw)
		return nil
	}},
	constants.FieldGroundFloor: {required: true, apply: func(r *models.Ring, _, raw string) *FieldError {
		r.GroundFloor = NotEmpty(raw)
		return nil
	}},
	constants.FieldToilet: {required: true, apply: func(r *models.Ring, _, raw string) *FieldError {
		r.Toilet = NotEmpty(raw)
		return nil
	}},
	constants.FieldSimulator: {required: true, apply: func(r *models.Ring, _, raw string) *FieldError {
		r.Simulator = NotEmpty(raw)
		return nil
	}},
	constants.FieldApp: {required: true, apply: func(r *models.Ring, _, raw string) *FieldError {
		r.App = NotEmpty(raw)
		return nil
	}},
	constants.FieldAffiliations: {apply: func(r *models.Ring, field, raw string) *FieldError {
		set, fe := DecodeAffiliations(field, raw)
		r.Affiliations = set
		return fe
	}},
	constants.FieldPractice: {apply: func(r *models.Ring, _, raw string) *FieldError {
		r.Practice = optionalString(raw)
		return nil
	}},
	constants.FieldTowerbase: {apply: func(r *models.Ring, field, raw string) *FieldError {
		n, fe := decodeOptionalInt(field, raw)
		r.TowerbaseID = n
		return fe
	}},
	constants.FieldDoveID: {apply: func(r *models.Ring, _, raw string) *FieldError {
		r.DoveID = optionalString(raw)
		return nil
	}},
	constants.FieldWeight: {required: true, apply: func(r *models.Ring, field, raw string) *FieldError {
		w, fe := DecodeWeight(field, raw)
		r.Weight = w
		return fe
	}},
	constants.FieldNote: {apply: func(r *models.Ring, field, raw string) *FieldError {
		n, fe := DecodeNote(field, raw)
		r.Note = n
		return fe
	}},
	constants.FieldFrequency: {apply: func(r *models.Ring, field, raw string) *FieldError {
		f, fe := decodeOptionalFloat(field, raw)
		r.Frequency = f
		return fe
	}},
	constants.FieldDetails: {apply: func(r *models.Ring, field, raw string) *FieldError {
		if raw == "" {
			return nil
		}
		d, ok := detailsByTag[raw]
		if !ok {
			return &FieldError{Kind: KindUnknownVariant, Field: field, Value: raw}
		}
		r.Details = &d
		return nil
	}},
	constants.FieldExtraInfo: {apply: func(r *models.Ring, _, raw string) *FieldError {
		r.ExtraInfo = SplitList(raw)
		return nil
	}},
	constants.FieldWebPage: {apply: func(r *models.Ring, _, raw string) *FieldError {
		r.URL = optionalString(raw)
		return nil
	}},
	constants.FieldSemitones: {apply: func(r *models.Ring, _, raw string) *FieldError {
		r.Semitones = optionalString(raw)
		return nil
	}},
	constants.FieldPlace: {required: true, apply: func(r *models.Ring, _, raw string) *FieldError {
		r.Place = raw
		return nil
	}},
	constants.FieldPlace2: {apply: func(r *models.Ring, _, raw string) *FieldError {
		r.Place2 = optionalString(raw)
		return nil
	}},
	constants.FieldPlaceCL: {apply: func(r *models.Ring, _, raw string) *FieldError {
		r.PlaceCountyList = optionalString(raw)
		return nil
	}},
	constants.FieldCounty: {apply: func(r *models.Ring, _, raw string) *FieldError {
		r.County = optionalString(raw)
		return nil
	}},
	constants.FieldCountry: {apply: func(r *models.Ring, _, raw string) *FieldError {
		r.Country = optionalString(raw)
		return nil
	}},
	constants.FieldISO3166: {apply: func(r *models.Ring, _, raw string) *FieldError {
		r.ISO3166Code = optionalString(raw)
		return nil
	}},
	constants.FieldOSGridRef: {apply: func(r *models.Ring, _, raw string) *FieldError {
		r.OSGridRef = optionalString(raw)
		return nil
	}},
	constants.FieldPostcode: {apply: func(r *models.Ring, _, raw string) *FieldError {
		r.Postcode = optionalString(raw)
		return nil
	}},
	constants.FieldLongitude: {apply: func(r *models.Ring, field, raw string) *FieldError {
		f, fe := decodeOptionalFloat(field, raw)
		r.Longitude = f
		return fe
	}},
	constants.FieldLatitude: {apply: func(r *models.Ring, field, raw string) *FieldError {
		f, fe := decodeOptionalFloat(field, raw)
		r.Latitude = f
		return fe
	}},
	constants.FieldSatNavLong: {apply: func(r *models.Ring, field, raw string) *FieldError {
		f, fe := decodeOptionalFloat(field, raw)
		r.SatNavLongitude = f
		return fe
	}},
	constants.FieldSatNavLat: {apply: func(r *models.Ring, field, raw string) *FieldError {
		f, fe := decodeOptionalFloat(field, raw)
		r.SatNavLatitude = f
		return fe
	}},
	constants.FieldOverhaulYear: {apply: func(r *models.Ring, field, raw string) *FieldError {
		n, fe := decodeOptionalInt(field, raw)
		r.OverhaulYear = n
		return fe
	}},
	constants.FieldContractor: {apply: func(r *models.Ring, _, raw string) *FieldError {
		r.Contractor = optionalString(raw)
		return nil
	}},
	constants.FieldTuneYear: {apply: func(r *models.Ring, field, raw string) *FieldError {
		n, fe := decodeOptionalInt(field, raw)
		r.TuneYear = n
		return fe
	}},
	constants.FieldBuildingID: {apply: func(r *models.Ring, field, raw string) *FieldError {
		n, fe := decodeOptionalInt(field, raw)
		r.BuildingID = n
		return fe
	}},
	constants.FieldBuildingGr: {apply: func(r *models.Ring, _, raw string) *FieldError {
		r.BuildingGrade = optionalString(raw)
		return nil
	}},
	constants.FieldChurchCare: {apply: func(r *models.Ring, field, raw string) *FieldError {
		n, fe := decodeOptionalInt(field, raw)
		r.ChurchCare = n
		return fe
	}},
	constants.FieldDedication: {required: true, apply: func(r *models.Ring, _, raw string) *FieldError {
		r.Dedication = raw
		return nil
	}},
	constants.FieldAltName: {apply: func(r *models.Ring, _, raw string) *FieldError {
		r.AltName = optionalString(raw)
		return nil
	}},
	constants.FieldDiocese: {apply: func(r *models.Ring, _, raw string) *FieldError {
		r.Diocese = optionalString(raw)
		return nil
	}},
}

// KnownField reports whether a header name belongs to the closed schema.
func KnownField(name string) bool {
	_, ok := schema[constants.FieldName(name)]
	return ok
}

// Assemble validates one raw row against the closed schema and builds a
// Ring. Every field failure is collected before returning, so a single
// attempt reports all invalid fields at once; the Ring is constructed only
// on a clean pass and is never mutated afterwards. row is the 1-based
// data-row index used in error reporting.
func Assemble(row int, raw Raw) (*models.Ring, error) {
	var errs []*FieldError
	var ring models.Ring

	for name := range raw {
		if !KnownField(name) {
			errs = append(errs, &FieldError{Kind: KindUnknownField, Field: name})
		}
	}

	for name, spec := range schema {
		val, ok := raw[string(name)]
		if !ok {
			if spec.required {
				errs = append(errs, &FieldError{Kind: KindMissingField, Field: string(name)})
			}
			continue
		}
		if fe := spec.apply(&ring, string(name), val); fe != nil {
			errs = append(errs, fe)
		}
	}

	if len(errs) > 0 {
		// Schema iteration order is not stable; sort so identical input
		// always yields an identical error set.
		sort.Slice(errs, func(i, j int) bool {
			if errs[i].Field != errs[j].Field {
				return errs[i].Field < errs[j].Field
			}
			return errs[i].Kind < errs[j].Kind
		})
		return nil, &RecordError{Row: row, Fields: errs}
	}
	return &ring, nil
}
