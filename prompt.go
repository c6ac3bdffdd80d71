package provinv

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxContentBytes caps how much page content goes into a
// single extraction prompt, bounding request cost.
const DefaultMaxContentBytes = 10000

// extractionSchema is the JSON skeleton the model is asked to fill.
// The keys mirror Columns(); Profile URL is set by the pipeline from
// the source URL and is intentionally absent here.
const extractionSchema = `{
  "Name": "Full name",
  "Credentials": "Professional credentials (MD, PhD, etc.)",
  "Titles": "Professional titles and positions",
  "Specialty": "Medical specialty/specialties",
  "Locations": "Practice locations",
  "Areas of Clinical Practice": "Clinical practice areas",
  "Diseases Treated": "Diseases and conditions treated",
  "Languages": "Languages spoken",
  "Undergraduate Degree": "Undergraduate education",
  "Medical Degree": "Medical school and degree",
  "Residency": "Residency training",
  "Fellowship": "Fellowship training",
  "Board Certifications": "Board certifications",
  "Awards": "Awards and recognition",
  "Other": "Other relevant information",
  "Last Modified": "Last modified date from page footer, store in YYYY-MM-DD format"
}`

// ExtractionPrompt builds the fixed extraction instruction for one
// page. The instruction pins the field list and asks for a single
// JSON object with empty strings for missing values.
func ExtractionPrompt(content string) string {
	var sb strings.Builder
	sb.WriteString("Please extract the following information from this medical provider profile page and return it as a single JSON object:\n\n")
	sb.WriteString(extractionSchema)
	sb.WriteString("\n\nExtract only the information that is present. Use empty string if information is not available.\n\n")
	sb.WriteString("Provider profile content:\n")
	sb.WriteString(content)
	return sb.String()
}

// TruncateContent bounds content to at most max bytes without
// splitting the UTF-8 sequence straddling the cap. Invalid bytes
// elsewhere in the content pass through untouched; at most
// utf8.UTFMax-1 trailing bytes are ever dropped. Non-positive max
// means no limit.
func TruncateContent(content string, max int) string {
	if max <= 0 || len(content) <= max {
		return content
	}
	cut := content[:max]
	for i := len(cut) - 1; i >= 0 && i > len(cut)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(cut[i]) {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(cut[i:]); r == utf8.RuneError {
			cut = cut[:i]
		}
		break
	}
	return cut
}
