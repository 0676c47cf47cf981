package tips

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tippool/internal/platform/db"
)

// Store persists calculations append-only. Sessions and per-employee shares
// live in JSONB columns so the record keeps its document shape.
type Store struct {
	db db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{db: q}
}

func (s *Store) Save(ctx context.Context, calc Calculation) (*Calculation, error) {
	if calc.ID == "" {
		calc.ID = uuid.NewString()
	}
	if calc.Date.IsZero() {
		calc.Date = time.Now().UTC()
	}

	sessions, err := json.Marshal(calc.WorkSessions)
	if err != nil {
		return nil, err
	}
	shares, err := json.Marshal(calc.IndividualTips)
	if err != nil {
		return nil, err
	}

	err = s.db.QueryRow(ctx, `
    INSERT INTO tip_calculations (id, date, total_tips, currency, work_sessions, total_hours, tip_per_hour, individual_tips)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING created_at
  `, calc.ID, calc.Date, calc.TotalTips, calc.Currency, sessions, calc.TotalHours, calc.TipPerHour, shares).Scan(&calc.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &calc, nil
}

func (s *Store) List(ctx context.Context, limit int) ([]Calculation, error) {
	rows, err := s.db.Query(ctx, `
    SELECT id, date, total_tips, currency, work_sessions, total_hours, tip_per_hour, individual_tips, created_at
    FROM tip_calculations
    ORDER BY created_at DESC
    LIMIT $1
  `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Calculation
	for rows.Next() {
		calc, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *calc)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (*Calculation, error) {
	row := s.db.QueryRow(ctx, `
    SELECT id, date, total_tips, currency, work_sessions, total_hours, tip_per_hour, individual_tips, created_at
    FROM tip_calculations
    WHERE id = $1
  `, id)

	calc, err := scanCalculation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return calc, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	cmd, err := s.db.Exec(ctx, `DELETE FROM tip_calculations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanCalculation(row pgx.Row) (*Calculation, error) {
	var calc Calculation
	var sessions, shares []byte
	if err := row.Scan(
		&calc.ID, &calc.Date, &calc.TotalTips, &calc.Currency, &sessions,
		&calc.TotalHours, &calc.TipPerHour, &shares, &calc.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(sessions, &calc.WorkSessions); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(shares, &calc.IndividualTips); err != nil {
		return nil, err
	}
	return &calc, nil
}
