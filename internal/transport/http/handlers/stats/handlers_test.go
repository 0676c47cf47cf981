package stats_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	statsdomain "tippool/internal/domain/stats"
	tipsdomain "tippool/internal/domain/tips"
	statshandler "tippool/internal/transport/http/handlers/stats"
)

type stubLister struct {
	calcs []tipsdomain.Calculation
	err   error
}

func (s *stubLister) List(context.Context, int) ([]tipsdomain.Calculation, error) {
	return s.calcs, s.err
}

func newRouter(lister statsdomain.CalculationLister) chi.Router {
	router := chi.NewRouter()
	statshandler.NewHandler(statsdomain.NewService(lister)).RegisterRoutes(router)
	return router
}

func TestStatisticsEmptyHistory(t *testing.T) {
	router := newRouter(&stubLister{})

	req := httptest.NewRequest(http.MethodGet, "/statistics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var env struct {
		Data statsdomain.Summary `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.TotalCalculations != 0 || env.Data.MostActiveEmployee != nil {
		t.Fatalf("expected zero summary, got %+v", env.Data)
	}
}

func TestStatisticsRollup(t *testing.T) {
	router := newRouter(&stubLister{calcs: []tipsdomain.Calculation{
		{TotalTips: 10, WorkSessions: []tipsdomain.WorkSession{{EmployeeID: "a", EmployeeName: "Ana", HoursWorked: 8}}},
		{TotalTips: 20},
		{TotalTips: 30},
	}})

	req := httptest.NewRequest(http.MethodGet, "/statistics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env struct {
		Data statsdomain.Summary `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.TotalTipsDistributed != 60.00 || env.Data.AverageTipsPerCalculation != 20.00 {
		t.Fatalf("unexpected rollup %+v", env.Data)
	}
	if env.Data.MostActiveEmployee == nil || env.Data.MostActiveEmployee.Name != "Ana" {
		t.Fatalf("expected Ana most active, got %+v", env.Data.MostActiveEmployee)
	}
}

func TestStatisticsStoreError(t *testing.T) {
	router := newRouter(&stubLister{err: errors.New("boom")})

	req := httptest.NewRequest(http.MethodGet, "/statistics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
