package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jung-kurt/gofpdf"

	"tippool/internal/domain/tips"
)

// CalculationGetter is the slice of the history store the report needs.
type CalculationGetter interface {
	Get(ctx context.Context, id string) (*tips.Calculation, error)
}

type Service struct {
	history   CalculationGetter
	reportDir string
}

func NewService(history CalculationGetter, reportDir string) *Service {
	return &Service{history: history, reportDir: reportDir}
}

// GeneratePayoutSheet renders a calculation as a PDF payout sheet and returns
// the file path. Rows are ordered by employee name so reruns are stable.
func (s *Service) GeneratePayoutSheet(ctx context.Context, calculationID string) (string, error) {
	calc, err := s.history.Get(ctx, calculationID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.reportDir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(s.reportDir, fmt.Sprintf("payout-%s.pdf", calc.ID))

	nameByEmployee := make(map[string]string, len(calc.WorkSessions))
	hoursByEmployee := make(map[string]float64, len(calc.WorkSessions))
	for _, session := range calc.WorkSessions {
		if _, ok := nameByEmployee[session.EmployeeID]; !ok {
			nameByEmployee[session.EmployeeID] = session.EmployeeName
		}
		hoursByEmployee[session.EmployeeID] += session.HoursWorked
	}

	employeeIDs := make([]string, 0, len(calc.IndividualTips))
	for employeeID := range calc.IndividualTips {
		employeeIDs = append(employeeIDs, employeeID)
	}
	sort.Slice(employeeIDs, func(i, j int) bool {
		return nameByEmployee[employeeIDs[i]] < nameByEmployee[employeeIDs[j]]
	})

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Tip Payout Sheet")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", calc.Date.Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Pool: %.2f %s", calc.TotalTips, calc.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total hours: %.2f", calc.TotalHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Rate: %.2f %s/hour", calc.TipPerHour, calc.Currency))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(80, 8, "Employee")
	pdf.Cell(40, 8, "Hours")
	pdf.Cell(40, 8, "Payout")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, employeeID := range employeeIDs {
		pdf.Cell(80, 8, nameByEmployee[employeeID])
		pdf.Cell(40, 8, fmt.Sprintf("%.2f", hoursByEmployee[employeeID]))
		pdf.Cell(40, 8, fmt.Sprintf("%.2f %s", calc.IndividualTips[employeeID], calc.Currency))
		pdf.Ln(7)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
