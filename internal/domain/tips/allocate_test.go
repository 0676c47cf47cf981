package tips

import (
	"errors"
	"math"
	"testing"
)

func TestAllocateEvenSplit(t *testing.T) {
	alloc, err := Allocate(100, []WorkSession{
		{EmployeeID: "a", EmployeeName: "Ana", HoursWorked: 5},
		{EmployeeID: "b", EmployeeName: "Bogdan", HoursWorked: 5},
	})
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if alloc.TotalHours != 10 {
		t.Fatalf("expected 10 total hours, got %v", alloc.TotalHours)
	}
	if alloc.TipPerHour != 10.00 {
		t.Fatalf("expected rate 10.00, got %v", alloc.TipPerHour)
	}
	if alloc.IndividualTips["a"] != 50.00 || alloc.IndividualTips["b"] != 50.00 {
		t.Fatalf("expected 50/50, got %v", alloc.IndividualTips)
	}
}

func TestAllocateProportional(t *testing.T) {
	alloc, err := Allocate(75, []WorkSession{
		{EmployeeID: "a", HoursWorked: 3},
		{EmployeeID: "b", HoursWorked: 2},
	})
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if alloc.TotalHours != 5 {
		t.Fatalf("expected 5 total hours, got %v", alloc.TotalHours)
	}
	if alloc.TipPerHour != 15.00 {
		t.Fatalf("expected rate 15.00, got %v", alloc.TipPerHour)
	}
	if alloc.IndividualTips["a"] != 45.00 {
		t.Fatalf("expected 45.00 for a, got %v", alloc.IndividualTips["a"])
	}
	if alloc.IndividualTips["b"] != 30.00 {
		t.Fatalf("expected 30.00 for b, got %v", alloc.IndividualTips["b"])
	}
}

func TestAllocateZeroHours(t *testing.T) {
	_, err := Allocate(0, []WorkSession{{EmployeeID: "a", HoursWorked: 0}})
	if !errors.Is(err, ErrZeroTotalHours) {
		t.Fatalf("expected ErrZeroTotalHours, got %v", err)
	}
}

func TestAllocateNoSessions(t *testing.T) {
	_, err := Allocate(100, nil)
	if !errors.Is(err, ErrZeroTotalHours) {
		t.Fatalf("expected ErrZeroTotalHours, got %v", err)
	}
}

func TestAllocateNegativeInputs(t *testing.T) {
	if _, err := Allocate(-10, []WorkSession{{EmployeeID: "a", HoursWorked: 5}}); !errors.Is(err, ErrNegativeTips) {
		t.Fatalf("expected ErrNegativeTips, got %v", err)
	}
	if _, err := Allocate(10, []WorkSession{{EmployeeID: "a", HoursWorked: -5}}); !errors.Is(err, ErrNegativeHours) {
		t.Fatalf("expected ErrNegativeHours, got %v", err)
	}
}

func TestAllocateSharesFromUnroundedRate(t *testing.T) {
	// 100 / 3 = 33.333...; the stored rate is 33.33 but shares must come from
	// the raw rate, so 2h yields 66.67, not 66.66.
	alloc, err := Allocate(100, []WorkSession{
		{EmployeeID: "a", HoursWorked: 1},
		{EmployeeID: "b", HoursWorked: 2},
	})
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if alloc.TipPerHour != 33.33 {
		t.Fatalf("expected stored rate 33.33, got %v", alloc.TipPerHour)
	}
	if alloc.IndividualTips["a"] != 33.33 {
		t.Fatalf("expected 33.33 for a, got %v", alloc.IndividualTips["a"])
	}
	if alloc.IndividualTips["b"] != 66.67 {
		t.Fatalf("expected 66.67 for b, got %v", alloc.IndividualTips["b"])
	}
}

func TestAllocateDuplicateEmployeeLastSessionWins(t *testing.T) {
	alloc, err := Allocate(100, []WorkSession{
		{EmployeeID: "a", HoursWorked: 6},
		{EmployeeID: "a", HoursWorked: 4},
	})
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	// rate = 10/h; the 4h session overwrites the 6h one.
	if alloc.IndividualTips["a"] != 40.00 {
		t.Fatalf("expected last-session amount 40.00, got %v", alloc.IndividualTips["a"])
	}
}

func TestAllocateSharesSumNearTotal(t *testing.T) {
	sessions := []WorkSession{
		{EmployeeID: "a", HoursWorked: 1.3},
		{EmployeeID: "b", HoursWorked: 2.7},
		{EmployeeID: "c", HoursWorked: 4.1},
	}
	alloc, err := Allocate(123.45, sessions)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}

	var sum float64
	for _, amount := range alloc.IndividualTips {
		sum += amount
	}
	tolerance := 0.01 * float64(len(sessions))
	if math.Abs(sum-123.45) > tolerance {
		t.Fatalf("shares sum %v too far from pool 123.45", sum)
	}
}
