package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bellmetal/doveguide/internal/models"
)

func TestAffiliationByCode(t *testing.T) {
	a, ok := AffiliationByCode["CUG"]
	require.True(t, ok)
	assert.Equal(t, models.AffiliationCUG, a)

	_, ok = AffiliationByCode["NOPE"]
	assert.False(t, ok)

	// The empty string is not a code; empty fields mean "no affiliations".
	_, ok = AffiliationByCode[""]
	assert.False(t, ok)
}

func TestVocabularyHasNoDuplicateCodes(t *testing.T) {
	assert.Len(t, AffiliationByCode, len(allAffiliations))
}
