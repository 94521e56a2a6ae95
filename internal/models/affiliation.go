package models

// Affiliation is a bell-ringing organization a tower can belong to. The
// value is the canonical short code Dove's Guide uses in its export; the
// set of codes is closed and versioned with the guide itself.
type Affiliation string

const (
	// University societies
	AffiliationCUG   Affiliation = "CUG"   // Cambridge University Guild
	AffiliationMUG   Affiliation = "MUG"   // Manchester University Guild
	AffiliationOUS   Affiliation = "OUS"   // Oxford University Society
	AffiliationUBSCR Affiliation = "UBSCR" // University of Bristol Society
	AffiliationULSCR Affiliation = "ULSCR" // University of London Society
	AffiliationLivUS Affiliation = "LivUS" // Liverpool Universities Society

	// Ancient city societies
	AffiliationASCY Affiliation = "ASCY" // Ancient Society of College Youths
	AffiliationSRCY Affiliation = "SRCY" // Society of Royal Cumberland Youths

	// Territorial associations and diocesan guilds
	AffiliationANZAB Affiliation = "ANZAB"
	AffiliationBW    Affiliation = "B&W"
	AffiliationBeds  Affiliation = "Beds"
	AffiliationBevD  Affiliation = "Bev&D"
	AffiliationCEA   Affiliation = "CEA"
	AffiliationCarDG Affiliation = "CarDG"
	AffiliationCheDG Affiliation = "CheDG"
	AffiliationCovDG Affiliation = "CovDG"
	AffiliationDCA   Affiliation = "DCA"
	AffiliationDDA   Affiliation = "DDA"
	AffiliationDN    Affiliation = "D&N"
	AffiliationDevAs Affiliation = "DevAs"
	AffiliationECBA  Affiliation = "ECBA"
	AffiliationEDWNA Affiliation = "EDWNA"
	AffiliationEGDG  Affiliation = "EGDG"
	AffiliationEly   Affiliation = "Ely"
	AffiliationEssex Affiliation = "Essex"
	AffiliationGB    Affiliation = "G&B"
	AffiliationGDG   Affiliation = "GDG"
	AffiliationGDR   Affiliation = "GDR"
	AffiliationHCA   Affiliation = "HCA"
	AffiliationHDG   Affiliation = "HDG"
	AffiliationIrish Affiliation = "Irish"
	AffiliationKCA   Affiliation = "KCA"
	AffiliationLM    Affiliation = "L&M"
	AffiliationLWAS  Affiliation = "LWAS"
	AffiliationLancs Affiliation = "Lancs"
	AffiliationLeiDG Affiliation = "LeiDG"
	AffiliationLinDG Affiliation = "LinDG"
	AffiliationLundy Affiliation = "Lundy"
	AffiliationMiddx Affiliation = "Middx"
	AffiliationNAG   Affiliation = "NAG"
	AffiliationNDA   Affiliation = "NDA"
	AffiliationNSA   Affiliation = "NSA"
	AffiliationNWA   Affiliation = "NWA"
	AffiliationODG   Affiliation = "ODG" // Oxford Diocesan Guild
	AffiliationOS    Affiliation = "OS"
	AffiliationPDG   Affiliation = "PDG"
	AffiliationSAG   Affiliation = "SAG"
	AffiliationSB    Affiliation = "S&B"
	AffiliationSDDG  Affiliation = "SDDG"
	AffiliationSMB   Affiliation = "SMB"
	AffiliationSalis Affiliation = "Salis"
	AffiliationSalop Affiliation = "Salop"
	AffiliationScot  Affiliation = "Scot"
	AffiliationSuff  Affiliation = "Suff"
	AffiliationSurr  Affiliation = "Surr" // Surrey Association
	AffiliationSuxCA Affiliation = "SuxCA"
	AffiliationSwell Affiliation = "Swell"
	AffiliationTruDG Affiliation = "TruDG"
	AffiliationWDA   Affiliation = "WDA"
	AffiliationWP    Affiliation = "W&P"
	AffiliationYACR  Affiliation = "YACR"
	AffiliationZimb  Affiliation = "Zimb"
)

// String returns the canonical Dove's code.
func (a Affiliation) String() string { return string(a) }

// AffiliationSet is the set of organizations one ring belongs to. No
// ordering, no duplicates; values are shared references into the closed
// vocabulary, never owned per-record.
type AffiliationSet map[Affiliation]struct{}

// Contains reports set membership.
func (s AffiliationSet) Contains(a Affiliation) bool {
	_, ok := s[a]
	return ok
}
