package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"leadscore/pkg/domain"
	"leadscore/pkg/export"
	"leadscore/pkg/storage"
)

func sampleLeads() []storage.Lead {
	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	return []storage.Lead{
		{
			ID:            domain.LeadID(uuid.New()),
			UserID:        domain.UserID(uuid.New()),
			CompanyDomain: "acme.io",
			Profile: domain.CompanyProfile{
				Domain:   "acme.io",
				Name:     "Acme",
				Industry: "saas",
			},
			Outcome: &domain.ScoringOutcome{
				Breakdown: domain.ScoreBreakdown{
					TotalScore: 85,
					Confidence: 0.75,
				},
				Tier: domain.TierHot,
			},
			Tier:       domain.TierHot,
			TotalScore: 85,
			CreatedAt:  created,
		},
		{
			ID:            domain.LeadID(uuid.New()),
			UserID:        domain.UserID(uuid.New()),
			CompanyDomain: "example.com",
			Profile: domain.CompanyProfile{
				Domain: "example.com",
			},
			Tier:      domain.TierUnqualified,
			CreatedAt: created,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, sampleLeads()); err != nil {
		t.Fatalf("could not export csv: %+v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("could not parse exported csv: %+v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header and two records, got %d rows", len(records))
	}

	if records[0][0] != "domain" || records[0][3] != "tier" {
		t.Fatalf("unexpected header: %v", records[0])
	}

	if records[1][0] != "acme.io" || records[1][3] != "Hot" || records[1][4] != "85" || records[1][5] != "0.75" {
		t.Fatalf("unexpected first record: %v", records[1])
	}

	// No outcome means no confidence value.
	if records[2][5] != "" {
		t.Fatalf("expected empty confidence for unscored lead, got %q", records[2][5])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, sampleLeads()); err != nil {
		t.Fatalf("could not export json: %+v", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("could not parse exported json: %+v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected two rows, got %d", len(rows))
	}

	if rows[0]["domain"] != "acme.io" || rows[0]["tier"] != "Hot" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}

	if _, ok := rows[1]["confidence"]; ok {
		t.Fatalf("expected no confidence for unscored lead, got %v", rows[1]["confidence"])
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, nil); err != nil {
		t.Fatalf("could not export json: %+v", err)
	}

	if buf.String() != "[]" {
		t.Fatalf("expected empty array, got %q", buf.String())
	}
}
