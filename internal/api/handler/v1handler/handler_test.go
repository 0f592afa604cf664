package v1handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"leadscore/internal/api/handler/v1handler"
	mockleads "leadscore/internal/leads/mock"
	"leadscore/pkg/domain"
	"leadscore/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// newTestRouter mounts the v1 routes behind a middleware that injects the
// given user ID, standing in for the authentication middleware.
func newTestRouter(m *mockleads.MockLeads, userID domain.UserID) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), v1handler.UserIDKey, userID)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	v1handler.New(v1handler.Deps{Leads: m}).Routes(r)

	return r
}

func doJSON(t *testing.T, h http.Handler, method, target string, body io.Reader) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("could not decode response body %q: %v", rec.Body.String(), err)
		}
	}

	return rec, decoded
}

func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()

	e, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error envelope, got %v", body)
	}
	code, _ := e["code"].(string)

	return code
}
