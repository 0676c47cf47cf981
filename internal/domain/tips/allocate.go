package tips

import "math"

// Allocation is the result of distributing a tip pool over work sessions.
type Allocation struct {
	TotalHours     float64
	TipPerHour     float64
	IndividualTips map[string]float64
}

// Allocate distributes totalTips proportionally to hours worked. Each
// employee's share is computed from the unrounded hourly rate and then rounded
// to 2 decimals; TipPerHour is rounded separately for storage. The rounded
// shares may not sum exactly to totalTips; that drift is accepted, never
// redistributed.
//
// When the same employee appears in several sessions, the last session's
// rounded amount wins. That matches the recorded history this service has
// always produced.
func Allocate(totalTips float64, sessions []WorkSession) (*Allocation, error) {
	if totalTips < 0 {
		return nil, ErrNegativeTips
	}

	var totalHours float64
	for _, session := range sessions {
		if session.HoursWorked < 0 {
			return nil, ErrNegativeHours
		}
		totalHours += session.HoursWorked
	}
	if totalHours == 0 {
		return nil, ErrZeroTotalHours
	}

	rate := totalTips / totalHours
	shares := make(map[string]float64, len(sessions))
	for _, session := range sessions {
		shares[session.EmployeeID] = round2(session.HoursWorked * rate)
	}

	return &Allocation{
		TotalHours:     totalHours,
		TipPerHour:     round2(rate),
		IndividualTips: shares,
	}, nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
