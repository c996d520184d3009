// Package store is the persistence layer shared by the controllers.
package store

import (
	"context"
	"reflect"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned by FindOne when no row matches.
var ErrNotFound = errors.New("record not found")

// Where is a column-name keyed filter. A nil Where matches every row.
type Where map[string]any

// ByID filters on the primary key.
func ByID(id uint) Where {
	return Where{"id": id}
}

// Repository is the store contract the controllers depend on. Relations are
// gorm association names to eager-load, e.g. "Truck" or "Brands.Brand".
type Repository[T any] interface {
	Find(ctx context.Context, where Where, relations ...string) ([]T, error)
	FindOne(ctx context.Context, where Where, relations ...string) (*T, error)
	Exists(ctx context.Context, where Where) (bool, error)
	Create(ctx context.Context, entity *T) error
	Save(ctx context.Context, entity *T) error
	Update(ctx context.Context, id uint, fields map[string]any) error
	Remove(ctx context.Context, entity *T) error
}

// GormRepository implements Repository on a shared *gorm.DB.
type GormRepository[T any] struct {
	db   *gorm.DB
	name string
}

func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	var zero T
	return &GormRepository[T]{db: db, name: reflect.TypeOf(zero).Name()}
}

func (r *GormRepository[T]) query(ctx context.Context, where Where, relations []string) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, rel := range relations {
		q = q.Preload(rel)
	}
	if len(where) > 0 {
		q = q.Where(map[string]any(where))
	}
	return q
}

func (r *GormRepository[T]) Find(ctx context.Context, where Where, relations ...string) ([]T, error) {
	var out []T
	if err := r.query(ctx, where, relations).Find(&out).Error; err != nil {
		return nil, errors.Wrapf(err, "find %s", r.name)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (r *GormRepository[T]) FindOne(ctx context.Context, where Where, relations ...string) (*T, error) {
	var out T
	err := r.query(ctx, where, relations).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "find one %s", r.name)
	}
	return &out, nil
}

func (r *GormRepository[T]) Exists(ctx context.Context, where Where) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where(map[string]any(where)).Count(&n).Error; err != nil {
		return false, errors.Wrapf(err, "count %s", r.name)
	}
	return n > 0, nil
}

// Create inserts entity only; loaded associations are not upserted.
func (r *GormRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return errors.Wrapf(err, "create %s", r.name)
	}
	return nil
}

func (r *GormRepository[T]) Save(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error; err != nil {
		return errors.Wrapf(err, "save %s", r.name)
	}
	return nil
}

// Update writes only the given columns of the row with the given id.
func (r *GormRepository[T]) Update(ctx context.Context, id uint, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "update %s %d", r.name, id)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository[T]) Remove(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Delete(entity).Error; err != nil {
		return errors.Wrapf(err, "remove %s", r.name)
	}
	return nil
}
