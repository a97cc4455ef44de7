// repository.go
//
// A multi-resource catalog data service with filtering, caching and localization
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of catalogdb.
// catalogdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// catalogdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with catalogdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/hints"
)

// ErrNotFound is matched by every not-found error returned from this package
var ErrNotFound = errors.New("not found")

// NotFoundError names the missing entity
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// Is reports ErrNotFound as the target so callers can use errors.Is
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Scope narrows a query
type Scope = func(*gorm.DB) *gorm.DB

// WhereIn restricts column to values. An empty list imposes no restriction.
func WhereIn[V any](column string, values []V) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		if len(values) == 0 {
			return tx
		}
		return tx.Where(column+" IN ?", values)
	}
}

// WhereEq restricts column to a single value
func WhereEq(column string, value interface{}) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(column+" = ?", value)
	}
}

// Repository implements identity based CRUD for one entity type.
// merge copies the mutable fields of src onto dst during Update.
type Repository[T any] struct {
	db      *gorm.DB
	entity  string
	scopes  []Scope
	merge   func(dst, src *T)
	cascade func(tx *gorm.DB, id uint) error
}

// NewRepository creates a repository for entity
func NewRepository[T any](db *gorm.DB, entity string, merge func(dst, src *T)) *Repository[T] {
	return &Repository[T]{db: db, entity: entity, merge: merge}
}

// Bind returns a copy of the repository that runs on db, typically a transaction
func (r *Repository[T]) Bind(db *gorm.DB) *Repository[T] {
	clone := *r
	clone.db = db
	return &clone
}

// With returns a copy of the repository that applies scopes to every query
func (r *Repository[T]) With(scopes ...Scope) *Repository[T] {
	clone := *r
	clone.scopes = append(append([]Scope{}, r.scopes...), scopes...)
	return &clone
}

// OnDelete registers work that runs in the delete transaction before the row is removed
func (r *Repository[T]) OnDelete(fn func(tx *gorm.DB, id uint) error) *Repository[T] {
	r.cascade = fn
	return r
}

func (r *Repository[T]) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Scopes(r.scopes...)
}

func (r *Repository[T]) notFound(id uint) error {
	return &NotFoundError{Entity: r.entity, ID: id}
}

// Find returns every row matching the repository scopes, ordered by id
func (r *Repository[T]) Find(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	err := r.query(ctx).
		Clauses(hints.CommentBefore("select", "list "+r.entity)).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.entity, err)
	}
	return items, nil
}

// FindByIDs returns the rows with the given ids, or every row when ids is empty
func (r *Repository[T]) FindByIDs(ctx context.Context, ids []uint) ([]T, error) {
	return r.With(WhereIn("id", ids)).Find(ctx)
}

// Get returns the row with id
func (r *Repository[T]) Get(ctx context.Context, id uint) (*T, error) {
	var item T
	if err := r.query(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, r.notFound(id)
		}
		return nil, fmt.Errorf("failed to get %s %d: %w", r.entity, id, err)
	}
	return &item, nil
}

// Exists returns a NotFoundError when no row has id
func (r *Repository[T]) Exists(ctx context.Context, id uint) error {
	var count int64
	if err := r.query(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check %s %d: %w", r.entity, id, err)
	}
	if count == 0 {
		return r.notFound(id)
	}
	return nil
}

// Create inserts item and fills in its id
func (r *Repository[T]) Create(ctx context.Context, item *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", r.entity, err)
	}
	return nil
}

// CreateBatch inserts every item in a single transaction
func (r *Repository[T]) CreateBatch(ctx context.Context, items []T) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create %s batch: %w", r.entity, err)
		}
		return nil
	})
}

// Update loads the row with id, merges the mutable fields of src onto it and saves it
func (r *Repository[T]) Update(ctx context.Context, id uint, src *T) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stored T
		if err := tx.Scopes(r.scopes...).First(&stored, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return r.notFound(id)
			}
			return fmt.Errorf("failed to load %s %d: %w", r.entity, id, err)
		}

		r.merge(&stored, src)

		if err := tx.Omit(clause.Associations).Save(&stored).Error; err != nil {
			return fmt.Errorf("failed to update %s %d: %w", r.entity, id, err)
		}
		return nil
	})
}

// Delete removes the row with id, running any registered cascade first
func (r *Repository[T]) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if r.cascade != nil {
			if err := r.cascade(tx, id); err != nil {
				return fmt.Errorf("failed to delete %s %d dependents: %w", r.entity, id, err)
			}
		}

		result := tx.Scopes(r.scopes...).Delete(new(T), id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete %s %d: %w", r.entity, id, result.Error)
		}
		if result.RowsAffected == 0 {
			return r.notFound(id)
		}
		return nil
	})
}
