package tips

import "time"

const DefaultCurrency = "RON"

// WorkSession records the hours one employee worked in the period a tip pool
// covers. It only exists embedded in a Calculation; the employee name is
// denormalized so history survives directory deletes.
type WorkSession struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	HoursWorked  float64 `json:"hours_worked"`
}

// Calculation is one stored tip distribution. Records are immutable once
// saved; there is no update path.
type Calculation struct {
	ID             string             `json:"id"`
	Date           time.Time          `json:"date"`
	TotalTips      float64            `json:"total_tips"`
	Currency       string             `json:"currency"`
	WorkSessions   []WorkSession      `json:"work_sessions"`
	TotalHours     float64            `json:"total_hours"`
	TipPerHour     float64            `json:"tip_per_hour"`
	IndividualTips map[string]float64 `json:"individual_tips"`
	CreatedAt      time.Time          `json:"created_at"`
}
