package layers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStructuralCleanupStripsMailtoPrefix(t *testing.T) {
	require.Equal(t, "jane.doe@epa.gov", StructuralCleanup("rnailto: Jane.Doe@EPA.GOV"))
}

func TestStructuralCleanupStripsAngleBrackets(t *testing.T) {
	require.Equal(t, "jane.doe@epa.gov", StructuralCleanup("<Jane.Doe@EPA.GOV>"))
}

func TestStructuralCleanupHyphenToDotAndCollapseDots(t *testing.T) {
	require.Equal(t, "john.smith@example.com", StructuralCleanup("john-smith@example.com"))
	require.Equal(t, "john.smith@example.com", StructuralCleanup("john..smith@example.com"))
}

func TestStructuralCleanupNoAtLeftAlone(t *testing.T) {
	require.Equal(t, "not-an-email", StructuralCleanup("Not-An-Email"))
}

func TestNormalizeDomainEPAErrorVariant(t *testing.T) {
	require.Equal(t, "epa.gov", NormalizeDomain("epa.qov"))
	require.Equal(t, "epa.gov", NormalizeDomain("epa.govl"))
}

func TestNormalizeDomainKnownFix(t *testing.T) {
	require.Equal(t, "gmail.com", NormalizeDomain("qmail.com"))
}

func TestNormalizeDomainSuffixFixups(t *testing.T) {
	require.Equal(t, "foo.com", NormalizeDomain("foo.corn"))
	require.Equal(t, "foo.org", NormalizeDomain("foo.orq"))
}

func TestNormalizeDomainPreservesIEPA(t *testing.T) {
	require.Equal(t, "iepa.gov", NormalizeDomain("iepa.gov"))
	require.Equal(t, "calepa.ca.gov", NormalizeDomain("calepa.ca.gov"))
}

func TestApplyDomainNormalizationLeavesLocalAlone(t *testing.T) {
	require.Equal(t, "jane.doe@epa.gov", ApplyDomainNormalization("jane.doe@epa.qov"))
}

func TestCanonicalizeLocalSortsTokensAndDropsShort(t *testing.T) {
	require.Equal(t, "doe.jane", CanonicalizeLocal("jane.doe"))
	require.Equal(t, "doe.jane", CanonicalizeLocal("doe.jane"))
	require.Equal(t, "jane.a", CanonicalizeLocal("jane.a"))
}

func TestApplyLocalOCRNormalizationFixesOCRThenCanonicalizes(t *testing.T) {
	// "rn" -> "m": "srnith" should normalize to "smith".
	result := ApplyLocalOCRNormalization("jane.srnith@example.com")
	require.Equal(t, "jane.smith@example.com", result)
}

func TestOCRCleanLocalForDisplayConservativeSubstitution(t *testing.T) {
	// Interior digit between lowercase letters gets substituted: 0 -> o.
	require.Equal(t, "john", OCRCleanLocalForDisplay("j0hn"))
	// All-digit tokens are left untouched.
	require.Equal(t, "12345", OCRCleanLocalForDisplay("12345"))
}
