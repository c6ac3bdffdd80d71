package provinv

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"
)

// previewLen caps how much raw model output a parse error carries for
// diagnostics.
const previewLen = 200

// ParseRecord extracts a ProviderRecord from raw model output.
//
// Models wrap their JSON in prose, markdown code fences and trailing
// commentary often enough that the parser scans for the first
// balanced JSON object instead of decoding the response directly.
// Recognized schema keys are mapped case-insensitively; unrecognized
// keys are ignored and missing keys leave their field as the empty
// string. An object with no recognized keys still parses; the
// record simply has every optional field empty. Returns EPARSE only
// when no well-formed JSON object can be located at all.
func ParseRecord(raw string) (*ProviderRecord, error) {
	obj, ok := firstJSONObject(raw)
	if !ok {
		return nil, Errorf(EPARSE, "no JSON object in model response: %q", preview(raw))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(obj), &fields); err != nil {
		return nil, Errorf(EPARSE, "malformed JSON object in model response: %q", preview(raw))
	}

	rec := &ProviderRecord{}
	for key, value := range fields {
		assign(rec, key, stringify(value))
	}
	return rec, nil
}

// firstJSONObject scans raw for the first balanced JSON object
// substring that also parses structurally. Brace depth is tracked
// across string literals and escapes so nested objects and braces
// inside values are handled correctly.
func firstJSONObject(raw string) (string, bool) {
	for start := 0; start < len(raw); start++ {
		if raw[start] != '{' {
			continue
		}
		end, ok := matchBrace(raw, start)
		if !ok {
			continue
		}
		candidate := raw[start : end+1]
		if json.Valid([]byte(candidate)) {
			return candidate, true
		}
	}
	return "", false
}

// matchBrace returns the index of the brace closing the object opened
// at start, or false if the object never closes.
func matchBrace(raw string, start int) (int, bool) {
	depth := 0
	inString := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch c {
			case '\\':
				i++ // skip escaped character
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// stringify flattens a JSON value to the string form used in CSV
// cells. Arrays are joined with "; ", null becomes the empty string.
func stringify(value json.RawMessage) string {
	var v any
	if err := json.Unmarshal(value, &v); err != nil {
		return ""
	}
	return flatten(v)
}

func flatten(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := flatten(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// assign maps a schema key onto its record field. Keys are compared
// ignoring case, spaces, hyphens and underscores so "Areas of
// Clinical Practice", "areas_of_clinical_practice" and
// "AreasOfClinicalPractice" all land in the same field.
func assign(rec *ProviderRecord, key, value string) {
	switch normalizeKey(key) {
	case "name":
		rec.Name = value
	case "credentials":
		rec.Credentials = value
	case "titles":
		rec.Titles = value
	case "specialty", "specialties":
		rec.Specialty = value
	case "locations":
		rec.Locations = value
	case "areasofclinicalpractice":
		rec.AreasOfClinicalPractice = value
	case "diseasestreated":
		rec.DiseasesTreated = value
	case "languages":
		rec.Languages = value
	case "undergraduatedegree":
		rec.UndergraduateDegree = value
	case "medicaldegree":
		rec.MedicalDegree = value
	case "residency":
		rec.Residency = value
	case "fellowship":
		rec.Fellowship = value
	case "boardcertifications":
		rec.BoardCertifications = value
	case "awards":
		rec.Awards = value
	case "other":
		rec.Other = value
	case "profileurl":
		rec.ProfileURL = value
	case "lastmodified":
		rec.LastModified = value
	}
}

func normalizeKey(key string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(key) {
		switch r {
		case ' ', '-', '_':
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// preview truncates raw for error messages, cutting on a rune
// boundary so the diagnostic stays valid UTF-8.
func preview(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) <= previewLen {
		return raw
	}
	cut := previewLen
	for cut > 0 && !utf8.RuneStart(raw[cut]) {
		cut--
	}
	return raw[:cut] + "..."
}
