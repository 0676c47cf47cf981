package tips

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Service struct {
	store           *Store
	defaultCurrency string
	calculations    prometheus.Counter
}

// NewService builds the calculation service. calculations may be nil when
// metrics are disabled.
func NewService(store *Store, defaultCurrency string, calculations prometheus.Counter) *Service {
	if strings.TrimSpace(defaultCurrency) == "" {
		defaultCurrency = DefaultCurrency
	}
	return &Service{store: store, defaultCurrency: defaultCurrency, calculations: calculations}
}

// Create allocates the pool over the sessions and persists the result as an
// immutable history record.
func (s *Service) Create(ctx context.Context, totalTips float64, currency string, sessions []WorkSession) (*Calculation, error) {
	alloc, err := Allocate(totalTips, sessions)
	if err != nil {
		return nil, err
	}

	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = s.defaultCurrency
	}

	calc := Calculation{
		Date:           time.Now().UTC(),
		TotalTips:      totalTips,
		Currency:       currency,
		WorkSessions:   sessions,
		TotalHours:     alloc.TotalHours,
		TipPerHour:     alloc.TipPerHour,
		IndividualTips: alloc.IndividualTips,
	}

	stored, err := s.store.Save(ctx, calc)
	if err != nil {
		return nil, err
	}
	if s.calculations != nil {
		s.calculations.Inc()
	}
	return stored, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]Calculation, error) {
	return s.store.List(ctx, limit)
}

func (s *Service) Get(ctx context.Context, id string) (*Calculation, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
