package employees

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tippool/internal/platform/db"
)

type Store struct {
	db db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{db: q}
}

func (s *Store) Create(ctx context.Context, name, position string) (*Employee, error) {
	emp := Employee{ID: uuid.NewString(), Name: name, Position: position}
	err := s.db.QueryRow(ctx, `
    INSERT INTO employees (id, name, position)
    VALUES ($1, $2, $3)
    RETURNING created_at
  `, emp.ID, emp.Name, emp.Position).Scan(&emp.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.db.Query(ctx, `
    SELECT id, name, position, created_at
    FROM employees
    ORDER BY created_at, id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Position, &emp.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := s.db.QueryRow(ctx, `
    SELECT id, name, position, created_at
    FROM employees
    WHERE id = $1
  `, id).Scan(&emp.ID, &emp.Name, &emp.Position, &emp.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) Update(ctx context.Context, id string, patch Patch) (*Employee, error) {
	var emp Employee
	err := s.db.QueryRow(ctx, `
    UPDATE employees
    SET name = COALESCE($2, name),
        position = COALESCE($3, position)
    WHERE id = $1
    RETURNING id, name, position, created_at
  `, id, patch.Name, patch.Position).Scan(&emp.ID, &emp.Name, &emp.Position, &emp.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	cmd, err := s.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
