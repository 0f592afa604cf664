package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"leadscore/pkg/domain"
	"leadscore/pkg/storage"
)

const (
	leadsTable = "leads"
)

// UpsertLead inserts the lead or, when the user already has a row for the
// same company domain, overwrites its profile and scoring outcome. Upserting
// a soft-deleted lead resurrects it.
func (p *PgSQL) UpsertLead(ctx context.Context, lead storage.Lead) (*storage.Lead, error) {
	var row PgLead
	if err := row.FromStorage(lead); err != nil {
		return nil, err
	}

	var result PgLead
	found, err := p.Builder.Insert(leadsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("user_id, company_domain", goqu.Record{
			"profile":     row.Profile,
			"outcome":     row.Outcome,
			"tier":        row.Tier,
			"total_score": row.TotalScore,
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
			"deleted_at":  goqu.L("NULL"),
		})).
		Returning(&PgLead{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not upsert lead into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not upsert lead into pg: no row returned")
	}

	return result.ToStorage()
}

// LeadByID returns a lead by its ID, excluding soft-deleted rows.
func (p *PgSQL) LeadByID(ctx context.Context, userID domain.UserID, id domain.LeadID) (*storage.Lead, error) {
	var row PgLead
	found, err := p.Builder.From(leadsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch lead by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToStorage()
}

// UserLeads returns a page of a user's leads ordered by created_at DESC,
// id DESC, optionally filtered by tier and minimum score. The filter's Cursor
// acts as the keyset cursor; the tuple comparison mirrors the listing order,
// so rows sharing the boundary timestamp still land on the next page.
func (p *PgSQL) UserLeads(ctx context.Context, filter storage.LeadFilter) (storage.UserLeads, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(filter.UserID)),
		goqu.I("deleted_at").IsNull(),
	}
	if filter.Tier != "" {
		w = append(w, goqu.I("tier").Eq(string(filter.Tier)))
	}
	if filter.MinScore != nil {
		w = append(w, goqu.I("total_score").Gte(*filter.MinScore))
	}
	if c := filter.Cursor; c != nil {
		w = append(w, goqu.L("(created_at, id) < (?, ?)", c.CreatedAt, uuid.UUID(c.ID)))
	}

	// fetch one extra to determine if there is a next page
	fetch := filter.Limit + 1
	ds := p.Builder.From(leadsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgLead
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserLeads{}, fmt.Errorf("could not fetch user leads from pg: %w", err)
	}

	var nextCursor *storage.LeadCursor
	if uint(len(rows)) > filter.Limit {
		trimmed := rows[:filter.Limit]
		last := trimmed[len(trimmed)-1]
		nextCursor = &storage.LeadCursor{
			CreatedAt: last.CreatedAt,
			ID:        domain.LeadID(last.ID),
		}
		rows = trimmed
	}

	leads, err := pgLeadsToStorage(rows)
	if err != nil {
		return storage.UserLeads{}, err
	}

	return storage.UserLeads{
		Leads:      leads,
		NextCursor: nextCursor,
	}, nil
}

// DeleteLead performs a soft delete by setting deleted_at for a given lead id
// and user, returning the deleted record.
func (p *PgSQL) DeleteLead(ctx context.Context, userID domain.UserID, id domain.LeadID) (*storage.Lead, error) {
	var row PgLead
	found, err := p.Builder.Update(leadsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgLead{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete lead in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToStorage()
}
