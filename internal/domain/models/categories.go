// internal/domain/models/categories.go
package models

// Canonical PDF resource categories.
//
// These values are stored in the database in the Resource.Category field.
// The set is a closed enumeration: uploads with any other category are
// rejected, and list filters outside the set are ignored.
const (
	CategoryRulesOfProcedure  = "Rules of Procedure"
	CategoryPositionPaper     = "Position Paper Guidelines"
	CategoryResolutionWriting = "Resolution Writing"
	CategoryPublicSpeaking    = "Public Speaking"
	CategoryCountryProfiles   = "Country Profiles"
	CategoryCommitteeBkg      = "Committee Background"
	CategoryHistoricalContext = "Historical Context"
	CategorySampleDocuments   = "Sample Documents"
	CategoryOther             = "Other"
)

// PDFCategories is the full set of allowed resource categories.
//
// This slice is the single source of truth for validation. Any new category
// must be added here to be considered valid.
var PDFCategories = []string{
	CategoryRulesOfProcedure,
	CategoryPositionPaper,
	CategoryResolutionWriting,
	CategoryPublicSpeaking,
	CategoryCountryProfiles,
	CategoryCommitteeBkg,
	CategoryHistoricalContext,
	CategorySampleDocuments,
	CategoryOther,
}

// IsValidPDFCategory reports whether s is a member of the given category
// set. A nil set means the built-in PDFCategories.
func IsValidPDFCategory(s string, set []string) bool {
	if set == nil {
		set = PDFCategories
	}
	for _, c := range set {
		if s == c {
			return true
		}
	}
	return false
}
