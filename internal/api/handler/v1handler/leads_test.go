package v1handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	mockleads "leadscore/internal/leads/mock"
	"leadscore/pkg/domain"
	"leadscore/pkg/serrors"
	"leadscore/pkg/storage"
)

// sampleLead constructs a minimal stored lead for tests.
func sampleLead(userID domain.UserID, companyDomain string) storage.Lead {
	return storage.Lead{
		ID:            domain.LeadID(uuid.New()),
		UserID:        userID,
		CompanyDomain: companyDomain,
		Profile:       domain.CompanyProfile{Domain: companyDomain, Name: "Acme"},
		Outcome: &domain.ScoringOutcome{
			Breakdown: domain.ScoreBreakdown{TotalScore: 85, Confidence: 0.8},
			Tier:      domain.TierHot,
			Recommendation: domain.Recommendation{
				Actions:  []domain.Action{{Priority: 1, Text: "Call them"}},
				Timing:   "Immediate",
				Approach: "Direct",
			},
		},
		Tier:       domain.TierHot,
		TotalScore: 85,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

func TestHandler_ScoreLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockleads.NewMockLeads(ctrl)

	userID := domain.UserID(uuid.New())
	lead := sampleLead(userID, "acme.io")
	m.EXPECT().Score(gomock.Any(), userID, domain.CompanyProfile{Domain: "acme.io"}).Return(&lead, nil)

	h := newTestRouter(m, userID)
	rec, body := doJSON(t, h, http.MethodPost, "/leads/score", strings.NewReader(`{"domain":"acme.io"}`))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if body["company_domain"] != "acme.io" {
		t.Fatalf("company_domain = %v", body["company_domain"])
	}
	if body["tier"] != "Hot" {
		t.Fatalf("tier = %v", body["tier"])
	}
	if body["total_score"] != float64(85) {
		t.Fatalf("total_score = %v", body["total_score"])
	}
}

func TestHandler_ScoreLead_InvalidProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockleads.NewMockLeads(ctrl)

	userID := domain.UserID(uuid.New())
	m.EXPECT().Score(gomock.Any(), userID, gomock.Any()).
		Return(nil, serrors.With(serrors.ErrInvalidProfile, "invalid company domain"))

	h := newTestRouter(m, userID)
	rec, body := doJSON(t, h, http.MethodPost, "/leads/score", strings.NewReader(`{"domain":"nodot"}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := errorCode(t, body); got != "INVALID_PROFILE" {
		t.Fatalf("error code = %q", got)
	}
}

func TestHandler_ScoreLead_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockleads.NewMockLeads(ctrl)

	h := newTestRouter(m, domain.UserID(uuid.New()))
	rec, body := doJSON(t, h, http.MethodPost, "/leads/score", strings.NewReader(`{`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := errorCode(t, body); got != "BAD_REQUEST" {
		t.Fatalf("error code = %q", got)
	}
}

func TestHandler_EnrichScoreLead_ProviderDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockleads.NewMockLeads(ctrl)

	userID := domain.UserID(uuid.New())
	m.EXPECT().EnrichScore(gomock.Any(), userID, gomock.Any()).
		Return(nil, serrors.With(serrors.ErrEnrichmentUnavailable, "provider unreachable"))

	h := newTestRouter(m, userID)
	rec, body := doJSON(t, h, http.MethodPost, "/leads/enrich-score", strings.NewReader(`{"domain":"acme.io"}`))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := errorCode(t, body); got != "ENRICHMENT_UNAVAILABLE" {
		t.Fatalf("error code = %q", got)
	}
}

func TestHandler_ListLeads_FiltersAndPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockleads.NewMockLeads(ctrl)

	userID := domain.UserID(uuid.New())
	leads := []storage.Lead{sampleLead(userID, "a.com"), sampleLead(userID, "b.com")}
	minScore := 60
	m.EXPECT().UserLeads(gomock.Any(), userID, domain.TierHot, &minScore, "c0", uint(5)).
		Return(leads, "c1", nil)

	h := newTestRouter(m, userID)
	rec, body := doJSON(t, h, http.MethodGet, "/leads?tier=Hot&min_score=60&cursor=c0&limit=5", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	items, ok := body["items"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("items = %v", body["items"])
	}
	if body["next_cursor"] != "c1" {
		t.Fatalf("next_cursor = %v", body["next_cursor"])
	}
}

func TestHandler_ListLeads_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockleads.NewMockLeads(ctrl)

	userID := domain.UserID(uuid.New())
	m.EXPECT().UserLeads(gomock.Any(), userID, domain.Tier(""), nil, "", uint(20)).
		Return([]storage.Lead{}, "", nil)

	h := newTestRouter(m, userID)
	rec, body := doJSON(t, h, http.MethodGet, "/leads", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if _, ok := body["next_cursor"]; ok {
		t.Fatalf("next_cursor should be omitted when empty")
	}
}

func TestHandler_ListLeads_InvalidMinScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockleads.NewMockLeads(ctrl)

	h := newTestRouter(m, domain.UserID(uuid.New()))
	rec, _ := doJSON(t, h, http.MethodGet, "/leads?min_score=abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandler_GetLead_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockleads.NewMockLeads(ctrl)

	userID := domain.UserID(uuid.New())
	id := uuid.New()
	m.EXPECT().Lead(gomock.Any(), userID, domain.LeadID(id)).
		Return(nil, serrors.With(serrors.ErrNotFound, "lead not found"))

	h := newTestRouter(m, userID)
	rec, body := doJSON(t, h, http.MethodGet, "/leads/"+id.String(), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := errorCode(t, body); got != "NOT_FOUND" {
		t.Fatalf("error code = %q", got)
	}
}

func TestHandler_GetLead_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockleads.NewMockLeads(ctrl)

	h := newTestRouter(m, domain.UserID(uuid.New()))
	rec, _ := doJSON(t, h, http.MethodGet, "/leads/not-a-uuid", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandler_GetRecommendations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockleads.NewMockLeads(ctrl)

	userID := domain.UserID(uuid.New())
	id := uuid.New()
	rec0 := domain.Recommendation{
		Actions:  []domain.Action{{Priority: 1, Text: "Call them"}},
		Timing:   "Immediate",
		Approach: "Direct",
	}
	m.EXPECT().Recommendation(gomock.Any(), userID, domain.LeadID(id)).Return(&rec0, nil)

	h := newTestRouter(m, userID)
	rec, body := doJSON(t, h, http.MethodGet, "/leads/"+id.String()+"/recommendations", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body["timing"] != "Immediate" {
		t.Fatalf("timing = %v", body["timing"])
	}
}

func TestHandler_DeleteLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockleads.NewMockLeads(ctrl)

	userID := domain.UserID(uuid.New())
	id := uuid.New()
	m.EXPECT().Delete(gomock.Any(), userID, domain.LeadID(id)).Return(nil)

	h := newTestRouter(m, userID)
	rec, _ := doJSON(t, h, http.MethodDelete, "/leads/"+id.String(), nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandler_InternalErrorHidesDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockleads.NewMockLeads(ctrl)

	userID := domain.UserID(uuid.New())
	id := uuid.New()
	m.EXPECT().Lead(gomock.Any(), userID, domain.LeadID(id)).
		Return(nil, errors.New("pq: connection refused"))

	h := newTestRouter(m, userID)
	rec, body := doJSON(t, h, http.MethodGet, "/leads/"+id.String(), nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := errorCode(t, body); got != "INTERNAL" {
		t.Fatalf("error code = %q", got)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Fatalf("internal details leaked: %s", rec.Body.String())
	}
}

func TestHandler_ExportLeads_CSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockleads.NewMockLeads(ctrl)

	userID := domain.UserID(uuid.New())
	leads := []storage.Lead{sampleLead(userID, "a.com")}
	m.EXPECT().UserLeads(gomock.Any(), userID, domain.Tier(""), nil, "", uint(500)).
		Return(leads, "", nil)

	h := newTestRouter(m, userID)
	req := httptest.NewRequest(http.MethodGet, "/leads/export", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "a.com") {
		t.Fatalf("exported csv missing lead: %s", rec.Body.String())
	}
}

func TestHandler_ExportLeads_PaginatesUntilExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockleads.NewMockLeads(ctrl)

	userID := domain.UserID(uuid.New())
	first := []storage.Lead{sampleLead(userID, "a.com")}
	second := []storage.Lead{sampleLead(userID, "b.com")}
	gomock.InOrder(
		m.EXPECT().UserLeads(gomock.Any(), userID, domain.Tier(""), nil, "", uint(500)).Return(first, "c1", nil),
		m.EXPECT().UserLeads(gomock.Any(), userID, domain.Tier(""), nil, "c1", uint(500)).Return(second, "", nil),
	)

	h := newTestRouter(m, userID)
	req := httptest.NewRequest(http.MethodGet, "/leads/export?format=json", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "a.com") || !strings.Contains(rec.Body.String(), "b.com") {
		t.Fatalf("export missing leads: %s", rec.Body.String())
	}
}

func TestHandler_ExportLeads_UnsupportedFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mockleads.NewMockLeads(ctrl)

	h := newTestRouter(m, domain.UserID(uuid.New()))
	rec, _ := doJSON(t, h, http.MethodGet, "/leads/export?format=xml", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
