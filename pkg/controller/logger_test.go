package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"leadscore/pkg/controller"
	"leadscore/pkg/logger"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *http.Request)
		want  string
	}{
		{
			name: "x-forwarded-for picks the first hop",
			setup: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
			},
			want: "1.2.3.4",
		},
		{
			name: "x-real-ip",
			setup: func(r *http.Request) {
				r.Header.Set("X-Real-IP", "9.8.7.6")
			},
			want: "9.8.7.6",
		},
		{
			name: "remote addr without headers",
			setup: func(r *http.Request) {
				r.RemoteAddr = "10.0.0.1:12345"
			},
			want: "10.0.0.1",
		},
		{
			name: "unparseable remote addr passes through",
			setup: func(r *http.Request) {
				r.RemoteAddr = "not-an-addr"
			},
			want: "not-an-addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)
			if ip := controller.GetClientIP(req); ip != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, ip)
			}
		})
	}
}

func TestWithLogger_RequestID(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	// echo the context request ID into a header so it can be asserted
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s, _ := r.Context().Value(controller.RequestIDKey).(string); s != "" {
			w.Header().Set("X-Echo-Request-Id", s)
		}
		w.WriteHeader(http.StatusCreated)
	})

	// a client-supplied ID is preserved
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)

	res := rec.Result()
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, res.StatusCode)
	}
	if got := res.Header.Get("X-Echo-Request-Id"); got != "abc-123" {
		t.Fatalf("expected echoed request id \"abc-123\", got %q", got)
	}

	// a missing ID is generated
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)

	if got := rec.Result().Header.Get("X-Echo-Request-Id"); got == "" {
		t.Fatal("expected a generated request id")
	}
}
