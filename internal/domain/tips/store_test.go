package tips

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func newMockStore(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return NewStore(mock), mock
}

func TestStoreSaveAssignsID(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tip_calculations")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), 100.0, "RON", pgxmock.AnyArg(), 10.0, 10.0, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(created))

	stored, err := store.Save(context.Background(), Calculation{
		TotalTips:      100,
		Currency:       "RON",
		WorkSessions:   []WorkSession{{EmployeeID: "a", EmployeeName: "Ana", HoursWorked: 10}},
		TotalHours:     10,
		TipPerHour:     10,
		IndividualTips: map[string]float64{"a": 100},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if stored.ID == "" {
		t.Fatal("expected generated id")
	}
	if stored.Date.IsZero() {
		t.Fatal("expected date assigned")
	}
	if !stored.CreatedAt.Equal(created) {
		t.Fatalf("expected created_at %v, got %v", created, stored.CreatedAt)
	}
}

func TestStoreGetRoundTripsJSONB(t *testing.T) {
	store, mock := newMockStore(t)
	now := time.Now().UTC()
	sessions, _ := json.Marshal([]WorkSession{{EmployeeID: "a", EmployeeName: "Ana", HoursWorked: 5}})
	shares, _ := json.Marshal(map[string]float64{"a": 50})

	mock.ExpectQuery("SELECT id, date, total_tips").
		WithArgs("c1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "date", "total_tips", "currency", "work_sessions",
			"total_hours", "tip_per_hour", "individual_tips", "created_at",
		}).AddRow("c1", now, 50.0, "RON", sessions, 5.0, 10.0, shares, now))

	calc, err := store.Get(context.Background(), "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(calc.WorkSessions) != 1 || calc.WorkSessions[0].EmployeeName != "Ana" {
		t.Fatalf("unexpected sessions %+v", calc.WorkSessions)
	}
	if calc.IndividualTips["a"] != 50 {
		t.Fatalf("unexpected shares %+v", calc.IndividualTips)
	}
}

func TestStoreGetNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, date, total_tips").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "date", "total_tips", "currency", "work_sessions",
			"total_hours", "tip_per_hour", "individual_tips", "created_at",
		}))

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreListNewestFirst(t *testing.T) {
	store, mock := newMockStore(t)
	newer := time.Now().UTC()
	older := newer.Add(-time.Hour)
	sessions, _ := json.Marshal([]WorkSession{})
	shares, _ := json.Marshal(map[string]float64{})

	mock.ExpectQuery("SELECT id, date, total_tips").
		WithArgs(50).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "date", "total_tips", "currency", "work_sessions",
			"total_hours", "tip_per_hour", "individual_tips", "created_at",
		}).
			AddRow("c2", newer, 20.0, "RON", sessions, 2.0, 10.0, shares, newer).
			AddRow("c1", older, 10.0, "RON", sessions, 1.0, 10.0, shares, older))

	out, err := store.List(context.Background(), 50)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 || out[0].ID != "c2" {
		t.Fatalf("expected newest first, got %+v", out)
	}
}

func TestStoreDeleteNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tip_calculations")).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := store.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
