package constants

import "bellmetal/doveguide/internal/models"

// allAffiliations enumerates the closed code vocabulary shipped with the
// current guide version. Adding an organization means adding a constant in
// models and one entry here; decode logic never changes.
var allAffiliations = []models.Affiliation{
	models.AffiliationANZAB,
	models.AffiliationASCY,
	models.AffiliationBW,
	models.AffiliationBeds,
	models.AffiliationBevD,
	models.AffiliationCEA,
	models.AffiliationCUG,
	models.AffiliationCarDG,
	models.AffiliationCheDG,
	models.AffiliationCovDG,
	models.AffiliationDCA,
	models.AffiliationDDA,
	models.AffiliationDN,
	models.AffiliationDevAs,
	models.AffiliationECBA,
	models.AffiliationEDWNA,
	models.AffiliationEGDG,
	models.AffiliationEly,
	models.AffiliationEssex,
	models.AffiliationGB,
	models.AffiliationGDG,
	models.AffiliationGDR,
	models.AffiliationHCA,
	models.AffiliationHDG,
	models.AffiliationIrish,
	models.AffiliationKCA,
	models.AffiliationLM,
	models.AffiliationLWAS,
	models.AffiliationLancs,
	models.AffiliationLeiDG,
	models.AffiliationLinDG,
	models.AffiliationLivUS,
	models.AffiliationLundy,
	models.AffiliationMUG,
	models.AffiliationMiddx,
	models.AffiliationNAG,
	models.AffiliationNDA,
	models.AffiliationNSA,
	models.AffiliationNWA,
	models.AffiliationODG,
	models.AffiliationOS,
	models.AffiliationOUS,
	models.AffiliationPDG,
	models.AffiliationSAG,
	models.AffiliationSB,
	models.AffiliationSDDG,
	models.AffiliationSMB,
	models.AffiliationSRCY,
	models.AffiliationSalis,
	models.AffiliationSalop,
	models.AffiliationScot,
	models.AffiliationSuff,
	models.AffiliationSurr,
	models.AffiliationSuxCA,
	models.AffiliationSwell,
	models.AffiliationTruDG,
	models.AffiliationUBSCR,
	models.AffiliationULSCR,
	models.AffiliationWDA,
	models.AffiliationWP,
	models.AffiliationYACR,
	models.AffiliationZimb,
}

// AffiliationByCode maps a canonical short code to its Affiliation.
// Initialized once at process start and read-only afterwards, so it is
// safe for unsynchronized concurrent reads during decoding.
var AffiliationByCode = func() map[string]models.Affiliation {
	m := make(map[string]models.Affiliation, len(allAffiliations))
	for _, a := range allAffiliations {
		m[a.String()] = a
	}
	return m
}()
