// Package export renders stored leads into interchange formats (CSV and
// JSON) for downstream tools such as CRM importers.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-faster/jx"

	"leadscore/pkg/storage"
)

// csvHeader is the column layout of CSV exports. Kept stable so downstream
// importers can rely on it.
var csvHeader = []string{ //nolint: gochecknoglobals
	"domain",
	"name",
	"industry",
	"tier",
	"total_score",
	"confidence",
	"created_at",
}

// WriteCSV streams the leads as CSV, header first.
func WriteCSV(w io.Writer, leads []storage.Lead) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("could not write csv header: %w", err)
	}

	for i := range leads {
		lead := &leads[i]

		confidence := ""
		if lead.Outcome != nil {
			confidence = strconv.FormatFloat(lead.Outcome.Breakdown.Confidence, 'f', 2, 64)
		}

		record := []string{
			lead.CompanyDomain,
			lead.Profile.Name,
			lead.Profile.Industry,
			string(lead.Tier),
			strconv.Itoa(lead.TotalScore),
			confidence,
			lead.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write csv record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("could not flush csv: %w", err)
	}

	return nil
}

// WriteJSON streams the leads as a JSON array of flat objects. The jx encoder
// writes incrementally, so large exports do not buffer the whole payload.
func WriteJSON(w io.Writer, leads []storage.Lead) error {
	var e jx.Encoder

	e.ArrStart()
	for i := range leads {
		lead := &leads[i]

		e.ObjStart()
		e.FieldStart("domain")
		e.Str(lead.CompanyDomain)
		e.FieldStart("name")
		e.Str(lead.Profile.Name)
		e.FieldStart("industry")
		e.Str(lead.Profile.Industry)
		e.FieldStart("tier")
		e.Str(string(lead.Tier))
		e.FieldStart("total_score")
		e.Int(lead.TotalScore)
		if lead.Outcome != nil {
			e.FieldStart("confidence")
			e.Float64(lead.Outcome.Breakdown.Confidence)
		}
		e.FieldStart("created_at")
		e.Str(lead.CreatedAt.Format(time.RFC3339))
		e.ObjEnd()
	}
	e.ArrEnd()

	if _, err := w.Write(e.Bytes()); err != nil {
		return fmt.Errorf("could not write json export: %w", err)
	}

	return nil
}
