package store

import (
	"context"

	"Community_API/internal/pagination"

	"gorm.io/gorm"
)

type scope = func(*gorm.DB) *gorm.DB

// source is a pagination.Source over one table. filter applies to both count
// and fetch, preload only to fetch.
type source[T any] struct {
	db      *gorm.DB
	filter  scope
	preload scope
}

func newSource[T any](db *gorm.DB, filter, preload scope) pagination.Source[T] {
	return &source[T]{db: db, filter: filter, preload: preload}
}

func (s *source[T]) query(ctx context.Context) *gorm.DB {
	q := s.db.WithContext(ctx).Model(new(T))
	if s.filter != nil {
		q = q.Scopes(s.filter)
	}
	return q
}

func (s *source[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.query(ctx).Count(&n).Error
	return n, err
}

func (s *source[T]) Fetch(ctx context.Context, offset, limit int) ([]T, error) {
	q := s.query(ctx)
	if s.preload != nil {
		q = q.Scopes(s.preload)
	}
	var list []T
	err := q.Order(orderByID).Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}
