package employees

import (
	"context"
	"strings"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, name, position string) (*Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	position = strings.TrimSpace(position)
	if position == "" {
		position = DefaultPosition
	}
	return s.store.Create(ctx, name, position)
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Employee, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Employee, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, ErrEmptyName
	}
	return s.store.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
