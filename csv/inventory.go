// Package csv serializes the provider inventory in its fixed
// 17-column format and formats the end-of-run failure summary.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/provinv"
)

// WriteInventory writes the header row followed by one row per
// record, preserving record order. Output is deterministic: the same
// record list always produces identical bytes.
func WriteInventory(w io.Writer, records []*provinv.ProviderRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(provinv.Columns()); err != nil {
		return provinv.Errorf(provinv.EWRITE, "write header: %v", err)
	}

	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
		if err := cw.Write(rec.Row()); err != nil {
			return provinv.Errorf(provinv.EWRITE, "write row for %s: %v", rec.ProfileURL, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return provinv.Errorf(provinv.EWRITE, "flush inventory: %v", err)
	}
	return nil
}

// WriteInventoryFile writes the inventory to path, truncating any
// existing file. A failure here is fatal to the run; the file is the
// run's whole purpose.
func WriteInventoryFile(path string, records []*provinv.ProviderRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return provinv.Errorf(provinv.EWRITE, "create %s: %v", path, err)
	}

	if err := WriteInventory(f, records); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return provinv.Errorf(provinv.EWRITE, "close %s: %v", path, err)
	}
	return nil
}

// FormatFailures renders the failure summary. It is emitted alongside
// the final report, never mixed into the inventory rows. Returns the
// empty string when there were no failures.
func FormatFailures(failures []provinv.FailureEntry) string {
	if len(failures) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Failed URLs:\n")
	for _, f := range failures {
		fmt.Fprintf(&sb, "  - %s (%s: %s)\n", f.URL, f.Code, f.Reason)
	}
	return sb.String()
}
