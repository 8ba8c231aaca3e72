package datasource

import (
	"context"
	"errors"

	"github.com/zechsoft/new-trust-sub003/internal/listresource"
	"gorm.io/gorm"
)

// Gorm reads and writes one model table. T must be a gorm model whose
// primary key column is "id".
type Gorm[T any] struct {
	db    *gorm.DB
	order string
	id    func(T) string
}

func NewGorm[T any](db *gorm.DB, order string, id func(T) string) *Gorm[T] {
	return &Gorm[T]{db: db, order: order, id: id}
}

func (g *Gorm[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	q := g.db.WithContext(ctx)
	if g.order != "" {
		q = q.Order(g.order)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (g *Gorm[T]) Create(ctx context.Context, item T) (T, error) {
	if err := g.db.WithContext(ctx).Create(&item).Error; err != nil {
		return item, err
	}
	return item, nil
}

func (g *Gorm[T]) Update(ctx context.Context, item T) (T, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing T
		if err := tx.Where("id = ?", g.id(item)).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return listresource.ErrNotFound
			}
			return err
		}
		return tx.Save(&item).Error
	})
	return item, err
}

func (g *Gorm[T]) Delete(ctx context.Context, id string) error {
	res := g.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return listresource.ErrNotFound
	}
	return nil
}
