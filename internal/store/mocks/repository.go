// Package mocks provides testify mocks for the store contracts.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fleet_logistics/internal/store"
)

// Repository is a testify mock of store.Repository. Relations are passed to
// Called as a []string, nil when none were requested.
type Repository[T any] struct {
	mock.Mock
}

var _ store.Repository[struct{}] = (*Repository[struct{}])(nil)

func NewRepository[T any]() *Repository[T] {
	return &Repository[T]{}
}

func (m *Repository[T]) Find(ctx context.Context, where store.Where, relations ...string) ([]T, error) {
	args := m.Called(ctx, where, relations)
	out, _ := args.Get(0).([]T)
	return out, args.Error(1)
}

func (m *Repository[T]) FindOne(ctx context.Context, where store.Where, relations ...string) (*T, error) {
	args := m.Called(ctx, where, relations)
	out, _ := args.Get(0).(*T)
	return out, args.Error(1)
}

func (m *Repository[T]) Exists(ctx context.Context, where store.Where) (bool, error) {
	args := m.Called(ctx, where)
	return args.Bool(0), args.Error(1)
}

func (m *Repository[T]) Create(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *Repository[T]) Save(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *Repository[T]) Update(ctx context.Context, id uint, fields map[string]any) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *Repository[T]) Remove(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}
