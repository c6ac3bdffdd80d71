package provinv

// Columns returns the inventory CSV header, in output order. The
// order and count are part of the output contract: every data row
// carries exactly these columns.
func Columns() []string {
	return []string{
		"Name",
		"Credentials",
		"Titles",
		"Specialty",
		"Locations",
		"Areas of Clinical Practice",
		"Diseases Treated",
		"Languages",
		"Undergraduate Degree",
		"Medical Degree",
		"Residency",
		"Fellowship",
		"Board Certifications",
		"Awards",
		"Other",
		"Profile URL",
		"Last Modified",
	}
}

// ProviderRecord is one row of the inventory, describing a single
// clinician profile. Every field except ProfileURL is optional; a
// field the model reported no data for holds the empty string (the
// canonical empty-value marker), so each row always has the full
// column count.
type ProviderRecord struct {
	Name                    string
	Credentials             string
	Titles                  string
	Specialty               string
	Locations               string
	AreasOfClinicalPractice string
	DiseasesTreated         string
	Languages               string
	UndergraduateDegree     string
	MedicalDegree           string
	Residency               string
	Fellowship              string
	BoardCertifications     string
	Awards                  string
	Other                   string
	ProfileURL              string
	LastModified            string
}

// Validate returns an error if the record contains invalid fields.
func (r *ProviderRecord) Validate() error {
	if r.ProfileURL == "" {
		return Errorf(EINVALID, "record profile URL required")
	}
	return nil
}

// Row returns the record's values in Columns() order.
func (r *ProviderRecord) Row() []string {
	return []string{
		r.Name,
		r.Credentials,
		r.Titles,
		r.Specialty,
		r.Locations,
		r.AreasOfClinicalPractice,
		r.DiseasesTreated,
		r.Languages,
		r.UndergraduateDegree,
		r.MedicalDegree,
		r.Residency,
		r.Fellowship,
		r.BoardCertifications,
		r.Awards,
		r.Other,
		r.ProfileURL,
		r.LastModified,
	}
}

// FailureEntry records a URL that could not produce a record after
// its pipeline stages were exhausted.
type FailureEntry struct {
	URL    string
	Code   string // error code of the failing stage (EFETCH, EEXTRACT, EPARSE)
	Reason string
}

// RunStats counts per-URL outcomes for one run.
type RunStats struct {
	Total     int
	Processed int
	Succeeded int
	Failed    int
}

// SuccessRate returns Succeeded/Total. Defined as 0 when Total is
// zero to avoid division by zero.
func (s RunStats) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Succeeded) / float64(s.Total)
}
