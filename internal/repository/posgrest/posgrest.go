package posgrest

import (
	"context"
	"errors"

	"github.com/jeffleon2/campus-card-core/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository[T interface{}] struct {
	db *gorm.DB
}

func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(&entity).Error
}

func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCardNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *repository[T]) GetBy(ctx context.Context, key string, value interface{}) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(key+" = ?", value).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCardNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *repository[T]) GetAll(ctx context.Context) (*[]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return &entities, nil
}

func (r *repository[T]) Update(ctx context.Context, entity *T, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Updates(entity).Error
}

// Mutate runs fn against a fresh copy of the row inside a database
// transaction, then persists the mutated entity. Executor callbacks use
// this so a balance read-modify-write is atomic even if the process
// dies mid-way.
func (r *repository[T]) Mutate(ctx context.Context, id string, fn func(entity *T) error) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&entity).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrCardNotFound
			}
			return err
		}
		if err := fn(&entity); err != nil {
			return err
		}
		return tx.Save(&entity).Error
	})
	if err != nil {
		return nil, err
	}
	return &entity, nil
}
