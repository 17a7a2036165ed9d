// Package repository provides the generic persistence gateway for the
// Author, Book and Publisher entities.
//
// # Interface Implementation
//
//	var _ Gateway[entities.Book, uint] = (*Repository[entities.Book])(nil)
//
// # Usage
//
//	books := repository.NewBookRepository(db.DB)
//	book, err := books.FindByID(ctx, 1)
//
// Scalar columns are written with associations omitted; each entity's
// Mapping then writes the foreign keys and join rows it is responsible for.
// Related rows are never created or updated as a side effect of a save.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gateway is the save/query/count contract shared by every entity type.
type Gateway[T any, K comparable] interface {
	// Save inserts the entity when its key is unassigned and updates it
	// otherwise. The returned pointer is the argument, with its key set.
	Save(ctx context.Context, entity *T) (*T, error)
	// FindAll returns every row, relationships loaded one level deep.
	FindAll(ctx context.Context) ([]*T, error)
	Count(ctx context.Context) (int64, error)
	// FindByID returns a *NotFoundError when no row has the key.
	FindByID(ctx context.Context, id K) (*T, error)
	// Delete removes only the entity's own row.
	Delete(ctx context.Context, entity *T) error
}

// Mapping binds an entity type to its table-level behaviour.
type Mapping[T any] struct {
	Entity   string
	Preloads []string
	ID       func(*T) uint
	// BeforeSave copies in-memory references into foreign key columns.
	BeforeSave func(*T)
	// AfterSave writes the associations owned by this side, in the same
	// transaction as the row itself.
	AfterSave func(tx *gorm.DB, entity *T) error
}

type Repository[T any] struct {
	db      *gorm.DB
	mapping Mapping[T]
}

func New[T any](db *gorm.DB, mapping Mapping[T]) *Repository[T] {
	return &Repository[T]{db: db, mapping: mapping}
}

var byPrimaryKey = clause.OrderByColumn{Column: clause.PrimaryColumn}

func orderByPrimaryKey(db *gorm.DB) *gorm.DB {
	return db.Order(byPrimaryKey)
}

func (r *Repository[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, name := range r.mapping.Preloads {
		q = q.Preload(name, orderByPrimaryKey)
	}
	return q
}

func (r *Repository[T]) storageErr(op string, err error) error {
	return &StorageError{Op: op, Entity: r.mapping.Entity, Err: err}
}

func (r *Repository[T]) Save(ctx context.Context, entity *T) (*T, error) {
	if entity == nil {
		return nil, r.storageErr("save", ErrNilEntity)
	}
	if r.mapping.BeforeSave != nil {
		r.mapping.BeforeSave(entity)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(entity).Error; err != nil {
			return err
		}
		if r.mapping.AfterSave != nil {
			return r.mapping.AfterSave(tx, entity)
		}
		return nil
	})
	if err != nil {
		return nil, r.storageErr("save", err)
	}
	return entity, nil
}

func (r *Repository[T]) FindAll(ctx context.Context) ([]*T, error) {
	var items []*T
	if err := r.query(ctx).Order(byPrimaryKey).Find(&items).Error; err != nil {
		return nil, r.storageErr("find_all", err)
	}
	return items, nil
}

func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&count).Error; err != nil {
		return 0, r.storageErr("count", err)
	}
	return count, nil
}

func (r *Repository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	entity := new(T)
	err := r.query(ctx).First(entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: r.mapping.Entity, ID: id}
	}
	if err != nil {
		return nil, r.storageErr("find_by_id", err)
	}
	return entity, nil
}

func (r *Repository[T]) Delete(ctx context.Context, entity *T) error {
	if entity == nil {
		return r.storageErr("delete", ErrNilEntity)
	}
	id := r.mapping.ID(entity)
	if id == 0 {
		return r.storageErr("delete", ErrUnassignedID)
	}

	result := r.db.WithContext(ctx).Omit(clause.Associations).Delete(entity)
	if result.Error != nil {
		return r.storageErr("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: r.mapping.Entity, ID: id}
	}
	return nil
}
