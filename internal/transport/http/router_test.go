package httptransport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	appointmentHandler "lifelink/internal/appointment/handler"
	appointmentService "lifelink/internal/appointment/service"
	appointmentStore "lifelink/internal/appointment/store"
	centerHandler "lifelink/internal/center/handler"
	donorHandler "lifelink/internal/donor/handler"
	donorService "lifelink/internal/donor/service"
	donorStore "lifelink/internal/donor/store"
	"lifelink/internal/platform/metrics"
	httptransport "lifelink/internal/transport/http"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(ctx context.Context) error { return p.err }

func newServer(t *testing.T, pinger httptransport.Pinger) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	donors := donorService.NewService(donorStore.NewInMemory(), m, logger)
	appointments := appointmentService.NewService(appointmentStore.NewInMemory(), m, logger)

	return httptransport.NewRouter(httptransport.Deps{
		Logger:       logger,
		Metrics:      m,
		Gatherer:     reg,
		Store:        pinger,
		Donors:       donorHandler.New(donors, logger),
		Appointments: appointmentHandler.New(appointments, logger),
		Centers:      centerHandler.New(logger),
	})
}

func TestAPIRoutesMounted(t *testing.T) {
	srv := newServer(t, &stubPinger{})

	paths := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/donors", http.StatusOK},
		{http.MethodGet, "/api/appointments", http.StatusOK},
		{http.MethodGet, "/api/centers", http.StatusOK},
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/nope", http.StatusNotFound},
	}
	for _, tc := range paths {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Errorf("%s %s: expected %d, got %d", tc.method, tc.path, tc.want, rec.Code)
		}
	}
}

func TestRegisterThroughRouter(t *testing.T) {
	srv := newServer(t, &stubPinger{})

	payload := map[string]any{
		"firstName":        "Jane",
		"lastName":         "Doe",
		"dateOfBirth":      "1990-01-01",
		"phone":            "5551234567",
		"address":          "1 Elm St",
		"city":             "Springfield",
		"state":            "IL",
		"zipCode":          "62704",
		"bloodType":        "O-",
		"emergencyContact": "John Doe 5557654321",
		"termsAccepted":    true,
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if id := rec.Header().Get("X-Request-ID"); id == "" {
		t.Error("expected X-Request-ID header")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("expected JSON content type, got %q", ct)
	}

	// the new donor appears first in the listing
	listReq := httptest.NewRequest(http.MethodGet, "/api/donors", nil)
	list := httptest.NewRecorder()
	srv.ServeHTTP(list, listReq)

	var listBody struct {
		Donors []map[string]any `json:"donors"`
	}
	if err := json.Unmarshal(list.Body.Bytes(), &listBody); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(listBody.Donors) != 1 || listBody.Donors[0]["firstName"] != "Jane" {
		t.Errorf("expected registered donor in list, got %v", listBody.Donors)
	}
}

func TestHealthzUnavailable(t *testing.T) {
	srv := newServer(t, &stubPinger{err: errors.New("no reachable servers")})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Success {
		t.Error("expected success false")
	}
}

func TestMetricsExposition(t *testing.T) {
	srv := newServer(t, &stubPinger{})

	// drive one request through so the latency histogram has a sample
	seed := httptest.NewRequest(http.MethodGet, "/api/donors", nil)
	srv.ServeHTTP(httptest.NewRecorder(), seed)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "lifelink_http_request_duration_seconds") {
		t.Error("expected request duration metric in exposition")
	}
}
