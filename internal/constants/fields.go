package constants

// FieldName is a column header in the Dove's Guide CSV export.
type FieldName string

const (
	FieldTowerID      FieldName = "TowerID"
	FieldRingType     FieldName = "RingType"
	FieldBells        FieldName = "Bells"
	FieldUnringable   FieldName = "UR"
	FieldGroundFloor  FieldName = "GF"
	FieldToilet       FieldName = "Toilet"
	FieldSimulator    FieldName = "Simulator"
	FieldAffiliations FieldName = "Affiliations"
	FieldPractice     FieldName = "Practice"
	FieldTowerbase    FieldName = "TowerBase"
	FieldDoveID       FieldName = "DoveID"
	FieldWeight       FieldName = "Wt"
	FieldNote         FieldName = "Note"
	FieldFrequency    FieldName = "Hz"
	FieldDetails      FieldName = "Details"
	FieldExtraInfo    FieldName = "ExtraInfo"
	FieldWebPage      FieldName = "WebPage"
	FieldSemitones    FieldName = "Semitones"
	FieldApp          FieldName = "App"
	FieldPlace        FieldName = "Place"
	FieldPlace2       FieldName = "Place2"
	FieldPlaceCL      FieldName = "PlaceCL"
	FieldCounty       FieldName = "County"
	FieldCountry      FieldName = "Country"
	FieldISO3166      FieldName = "ISO3166code"
	FieldOSGridRef    FieldName = "NG"
	FieldPostcode     FieldName = "Postcode"
	FieldLongitude    FieldName = "Long"
	FieldLatitude     FieldName = "Lat"
	FieldSatNavLong   FieldName = "SNLong"
	FieldSatNavLat    FieldName = "SNLat"
	FieldOverhaulYear FieldName = "OvhaulYr"
	FieldContractor   FieldName = "Contractor"
	FieldTuneYear     FieldName = "TuneYr"
	FieldBuildingID   FieldName = "BldgID"
	FieldBuildingGr   FieldName = "LGrade"
	FieldChurchCare   FieldName = "ChurchCare"
	FieldDedication   FieldName = "Dedicn"
	FieldAltName      FieldName = "AltName"
	FieldDiocese      FieldName = "Diocese"
)

func (f FieldName) String() string { return string(f) }

// RequiredFields are the columns every row must carry: identity,
// classification, the presence flags, tenor weight, place and dedication.
// Everything else decodes to an absent value when the column is missing.
var RequiredFields = []FieldName{
	FieldTowerID,
	FieldRingType,
	FieldBells,
	FieldUnringable,
	FieldGroundFloor,
	FieldToilet,
	FieldSimulator,
	FieldApp,
	FieldWeight,
	FieldPlace,
	FieldDedication,
}
