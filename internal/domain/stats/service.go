package stats

import (
	"context"

	"tippool/internal/domain/tips"
)

// CalculationLister is the slice of the history store this service reads.
type CalculationLister interface {
	List(ctx context.Context, limit int) ([]tips.Calculation, error)
}

type Service struct {
	history CalculationLister
}

func NewService(history CalculationLister) *Service {
	return &Service{history: history}
}

func (s *Service) Statistics(ctx context.Context) (Summary, error) {
	window, err := s.history.List(ctx, WindowSize)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(window), nil
}
