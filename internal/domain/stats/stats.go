package stats

import (
	"math"

	"tippool/internal/domain/tips"
)

// WindowSize is the fixed number of most recent calculations a summary covers,
// independent of any history-listing limit.
const WindowSize = 10

type MostActiveEmployee struct {
	Name       string  `json:"name"`
	TotalHours float64 `json:"total_hours"`
}

type Summary struct {
	TotalCalculations         int                 `json:"total_calculations"`
	TotalTipsDistributed      float64             `json:"total_tips_distributed"`
	AverageTipsPerCalculation float64             `json:"average_tips_per_calculation"`
	MostActiveEmployee        *MostActiveEmployee `json:"most_active_employee"`
}

// Summarize rolls up a window of calculations, newest first. An empty window
// yields the zero summary with a null most-active employee. Monetary totals
// are rounded to 2 decimals; the most-active hours stay unrounded. Ties on
// hours go to the employee encountered first in session order.
func Summarize(window []tips.Calculation) Summary {
	if len(window) > WindowSize {
		window = window[:WindowSize]
	}
	if len(window) == 0 {
		return Summary{}
	}

	var totalTips float64
	hoursByEmployee := make(map[string]float64)
	nameByEmployee := make(map[string]string)
	var order []string

	for _, calc := range window {
		totalTips += calc.TotalTips
		for _, session := range calc.WorkSessions {
			if _, seen := hoursByEmployee[session.EmployeeID]; !seen {
				order = append(order, session.EmployeeID)
				nameByEmployee[session.EmployeeID] = session.EmployeeName
			}
			hoursByEmployee[session.EmployeeID] += session.HoursWorked
		}
	}

	var mostActive *MostActiveEmployee
	var bestHours float64
	for _, employeeID := range order {
		hours := hoursByEmployee[employeeID]
		if mostActive == nil || hours > bestHours {
			bestHours = hours
			mostActive = &MostActiveEmployee{
				Name:       nameByEmployee[employeeID],
				TotalHours: hours,
			}
		}
	}

	count := len(window)
	return Summary{
		TotalCalculations:         count,
		TotalTipsDistributed:      round2(totalTips),
		AverageTipsPerCalculation: round2(totalTips / float64(count)),
		MostActiveEmployee:        mostActive,
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
