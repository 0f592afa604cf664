package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"leadscore/pkg/domain"
	"leadscore/pkg/storage"
)

type PgLead struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	CompanyDomain string          `db:"company_domain"`
	Profile       json.RawMessage `db:"profile"`
	Outcome       json.RawMessage `db:"outcome"`
	Tier          string          `db:"tier"`
	TotalScore    int             `db:"total_score"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgLead) ToStorage() (*storage.Lead, error) {
	var profile domain.CompanyProfile
	if err := json.Unmarshal(p.Profile, &profile); err != nil {
		return nil, fmt.Errorf("could not unmarshal lead profile: %w", err)
	}

	var outcome *domain.ScoringOutcome
	if len(p.Outcome) > 0 {
		outcome = &domain.ScoringOutcome{}
		if err := json.Unmarshal(p.Outcome, outcome); err != nil {
			return nil, fmt.Errorf("could not unmarshal lead outcome: %w", err)
		}
	}

	return &storage.Lead{
		ID:            domain.LeadID(p.ID),
		UserID:        domain.UserID(p.UserID),
		CompanyDomain: p.CompanyDomain,
		Profile:       profile,
		Outcome:       outcome,
		Tier:          domain.Tier(p.Tier),
		TotalScore:    p.TotalScore,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt.Time,
	}, nil
}

func (p *PgLead) FromStorage(lead storage.Lead) error {
	profile, err := json.Marshal(lead.Profile)
	if err != nil {
		return fmt.Errorf("could not marshal lead profile: %w", err)
	}

	var outcome json.RawMessage
	if lead.Outcome != nil {
		outcome, err = json.Marshal(lead.Outcome)
		if err != nil {
			return fmt.Errorf("could not marshal lead outcome: %w", err)
		}
	}

	*p = PgLead{
		ID:            uuid.UUID(lead.ID),
		UserID:        uuid.UUID(lead.UserID),
		CompanyDomain: lead.CompanyDomain,
		Profile:       profile,
		Outcome:       outcome,
		Tier:          string(lead.Tier),
		TotalScore:    lead.TotalScore,
		CreatedAt:     lead.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  lead.UpdatedAt,
			Valid: !lead.UpdatedAt.IsZero(),
		},
	}

	return nil
}

func pgLeadsToStorage(leads []PgLead) ([]storage.Lead, error) {
	out := make([]storage.Lead, 0, len(leads))
	for _, lead := range leads {
		s, err := lead.ToStorage()
		if err != nil {
			return nil, err
		}

		out = append(out, *s)
	}

	return out, nil
}

type PgBatch struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Status         string `db:"status"`
	TotalSubmitted int    `db:"total_submitted"`
	Completed      int    `db:"completed" goqu:"skipinsert"`
	Succeeded      int    `db:"succeeded" goqu:"skipinsert"`
	Failed         int    `db:"failed"    goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgBatch) ToStorage() *storage.Batch {
	return &storage.Batch{
		ID:             domain.BatchID(p.ID),
		UserID:         domain.UserID(p.UserID),
		Status:         domain.BatchStatus(p.Status),
		TotalSubmitted: p.TotalSubmitted,
		Completed:      p.Completed,
		Succeeded:      p.Succeeded,
		Failed:         p.Failed,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
	}
}

func (p *PgBatch) FromStorage(batch storage.Batch) {
	*p = PgBatch{
		ID:             uuid.UUID(batch.ID),
		UserID:         uuid.UUID(batch.UserID),
		Status:         string(batch.Status),
		TotalSubmitted: batch.TotalSubmitted,
	}
}

type PgBatchItem struct {
	BatchID uuid.UUID `db:"batch_id"`
	Idx     int       `db:"idx"`

	CompanyDomain string          `db:"company_domain"`
	Profile       json.RawMessage `db:"profile"`
	Outcome       json.RawMessage `db:"outcome"        goqu:"skipinsert"`
	LastError     sql.NullString  `db:"last_error"     goqu:"skipinsert"`
	FailureReason sql.NullString  `db:"failure_reason" goqu:"skipinsert"`
}

func (p *PgBatchItem) ToStorage() (*storage.BatchItem, error) {
	var profile domain.CompanyProfile
	if err := json.Unmarshal(p.Profile, &profile); err != nil {
		return nil, fmt.Errorf("could not unmarshal batch item profile: %w", err)
	}

	var outcome *domain.ScoringOutcome
	if len(p.Outcome) > 0 {
		outcome = &domain.ScoringOutcome{}
		if err := json.Unmarshal(p.Outcome, outcome); err != nil {
			return nil, fmt.Errorf("could not unmarshal batch item outcome: %w", err)
		}
	}

	return &storage.BatchItem{
		BatchID:       domain.BatchID(p.BatchID),
		Index:         p.Idx,
		CompanyDomain: p.CompanyDomain,
		Profile:       profile,
		Outcome:       outcome,
		Error:         p.LastError.String,
		Reason:        p.FailureReason.String,
	}, nil
}

func (p *PgBatchItem) FromStorage(item storage.BatchItem) error {
	profile, err := json.Marshal(item.Profile)
	if err != nil {
		return fmt.Errorf("could not marshal batch item profile: %w", err)
	}

	*p = PgBatchItem{
		BatchID:       uuid.UUID(item.BatchID),
		Idx:           item.Index,
		CompanyDomain: item.CompanyDomain,
		Profile:       profile,
		LastError: sql.NullString{
			String: item.Error,
			Valid:  item.Error != "",
		},
		FailureReason: sql.NullString{
			String: item.Reason,
			Valid:  item.Reason != "",
		},
	}

	return nil
}

func storageBatchItemsToPg(items []storage.BatchItem) ([]PgBatchItem, error) {
	out := make([]PgBatchItem, len(items))
	for i := range out {
		if err := out[i].FromStorage(items[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgBatchItemsToStorage(items []PgBatchItem) ([]storage.BatchItem, error) {
	out := make([]storage.BatchItem, 0, len(items))
	for _, item := range items {
		s, err := item.ToStorage()
		if err != nil {
			return nil, err
		}

		out = append(out, *s)
	}

	return out, nil
}
