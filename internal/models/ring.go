package models

// RingType classifies how a set of bells is hung and rung.
type RingType string

const (
	RingTypeFullCircle RingType = "Full circle ring"
	RingTypeCarillon   RingType = "Carillon"
)

func (r RingType) String() string { return string(r) }

// Details is the guide's single-letter ring classification. The export
// only ever carries "P" or "C"; the meaning is opaque and carried verbatim.
type Details string

const (
	DetailsP Details = "P"
	DetailsC Details = "C"
)

func (d Details) String() string { return string(d) }

// Ring is one decoded ring of bells from Dove's Guide. A tower can contain
// more than one Ring. Values are set exactly once during assembly and never
// mutated afterwards; optional fields are nil pointers when the source
// column is absent or empty.
type Ring struct {
	// ID is the Dove's tower ID. Unique per tower and stable across guide
	// updates; never reused or renumbered.
	ID       int
	RingType RingType
	Bells    int

	// Presence flags. Each is derived solely from whether its source field
	// is empty; the mnemonic text itself (e.g. "u/r", "GF", "T") is
	// discarded once truthiness is established.
	Unringable  bool
	GroundFloor bool
	Toilet      bool
	Simulator   bool
	App         bool

	Affiliations AffiliationSet
	Practice     *string

	// TowerbaseID is the TowerBase identifier; not unique between rings.
	TowerbaseID *int
	// DoveID is the old text identifier.
	//
	// Deprecated: Dove's have retired this; use ID instead.
	DoveID *string

	// Weight, note and frequency of the heaviest bell.
	Weight    Weight
	Note      *Note
	Frequency *float64

	Details   *Details
	ExtraInfo []string
	URL       *string

	// Semitones is the raw '+'-delimited semitone list, carried verbatim.
	Semitones *string

	// Place is the location name; for mobile rings it is the ring's name.
	Place           string
	Place2          *string
	PlaceCountyList *string
	County          *string
	Country         *string
	ISO3166Code     *string
	OSGridRef       *string
	Postcode        *string

	Longitude       *float64
	Latitude        *float64
	SatNavLongitude *float64
	SatNavLatitude  *float64

	OverhaulYear *int
	Contractor   *string
	TuneYear     *int

	BuildingID    *int
	BuildingGrade *string
	ChurchCare    *int

	Dedication string
	AltName    *string
	Diocese    *string
}
