package v1handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"leadscore/pkg/domain"
	"leadscore/pkg/export"
	"leadscore/pkg/serrors"
	"leadscore/pkg/storage"
)

// exportPageSize is how many leads are fetched per storage round-trip while
// streaming an export.
const exportPageSize = 500

// Lead is the API representation of a stored lead.
type Lead struct {
	ID            string                 `json:"id"`
	CompanyDomain string                 `json:"company_domain"`
	Profile       domain.CompanyProfile  `json:"profile"`
	Outcome       *domain.ScoringOutcome `json:"outcome,omitempty"`
	Tier          domain.Tier            `json:"tier"`
	TotalScore    int                    `json:"total_score"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at,omitempty"`
}

// LeadList is one page of leads plus the cursor for the next page.
type LeadList struct {
	Items      []Lead `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// StorageLeadToV1 maps a persistence lead to its API representation.
func StorageLeadToV1(in *storage.Lead) *Lead {
	return &Lead{
		ID:            uuid.UUID(in.ID).String(),
		CompanyDomain: in.CompanyDomain,
		Profile:       in.Profile,
		Outcome:       in.Outcome,
		Tier:          in.Tier,
		TotalScore:    in.TotalScore,
		CreatedAt:     in.CreatedAt,
		UpdatedAt:     in.UpdatedAt,
	}
}

// ScoreLead scores the submitted company profile and returns the stored lead.
func (h *Handler) ScoreLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var profile domain.CompanyProfile
	if err := decodeJSON(r, &profile); err != nil {
		writeError(ctx, w, err)

		return
	}

	lead, err := h.deps.Leads.Score(ctx, GetUserIDFromContext(ctx), profile)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, StorageLeadToV1(lead))
}

// EnrichScoreLead enriches the submitted profile from the external provider
// before scoring it.
func (h *Handler) EnrichScoreLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var profile domain.CompanyProfile
	if err := decodeJSON(r, &profile); err != nil {
		writeError(ctx, w, err)

		return
	}

	lead, err := h.deps.Leads.EnrichScore(ctx, GetUserIDFromContext(ctx), profile)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, StorageLeadToV1(lead))
}

// ListLeads returns a page of the user's leads, newest first. Supported query
// parameters: tier, min_score, cursor and limit.
func (h *Handler) ListLeads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	minScore, err := parseMinScore(r.URL.Query().Get("min_score"))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	userLeads, nextCursor, err := h.deps.Leads.UserLeads(ctx,
		GetUserIDFromContext(ctx),
		domain.Tier(r.URL.Query().Get("tier")),
		minScore,
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	items := make([]Lead, 0, len(userLeads))
	for i := range userLeads {
		items = append(items, *StorageLeadToV1(&userLeads[i]))
	}

	writeJSON(ctx, w, http.StatusOK, LeadList{Items: items, NextCursor: nextCursor})
}

// GetLead returns a single lead by ID.
func (h *Handler) GetLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := leadIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	lead, err := h.deps.Leads.Lead(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, StorageLeadToV1(lead))
}

// GetRecommendations returns the stored recommendation for a lead.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := leadIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	rec, err := h.deps.Leads.Recommendation(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, rec)
}

// DeleteLead removes a lead.
func (h *Handler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := leadIDFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err := h.deps.Leads.Delete(ctx, GetUserIDFromContext(ctx), id); err != nil {
		writeError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExportLeads streams all of the user's leads in the requested format
// (csv or json, default csv). The same tier and min_score filters as ListLeads
// apply.
func (h *Handler) ExportLeads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	minScore, err := parseMinScore(r.URL.Query().Get("min_score"))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	userID := GetUserIDFromContext(ctx)
	tier := domain.Tier(r.URL.Query().Get("tier"))

	var all []storage.Lead
	cursor := ""
	for {
		page, next, err := h.deps.Leads.UserLeads(ctx, userID, tier, minScore, cursor, exportPageSize)
		if err != nil {
			writeError(ctx, w, err)

			return
		}
		all = append(all, page...)
		if next == "" {
			break
		}
		cursor = next
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="leads.csv"`)
		err = export.WriteCSV(w, all)
	case "json":
		w.Header().Set("Content-Type", "application/json")
		err = export.WriteJSON(w, all)
	default:
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "unsupported export format %q", format))

		return
	}
	if err != nil {
		writeError(ctx, w, err)
	}
}

func leadIDFromRequest(r *http.Request) (domain.LeadID, error) {
	id, err := uuidFromRequest(r)

	return domain.LeadID(id), err
}

func parseMinScore(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid min_score")
	}

	return &v, nil
}

func parseLimit(raw string) (uint, error) {
	if raw == "" {
		return DefaultLimit, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid limit %q", raw)
	}
	if v > MaxLimit {
		v = MaxLimit
	}

	return uint(v), nil
}
