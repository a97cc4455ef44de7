// children.go
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
)

// Children serves a child entity addressed through its parent.
// Every operation on a missing parent returns a NotFoundError naming the parent.
type Children[P, C any] struct {
	parents *Repository[P]
	items   *Repository[C]
	column  string
	assign  func(item *C, parentID uint)
	prepare func(item *C) error
}

// NewChildren links items to parents through the foreign key column.
// assign writes the parent id into a child before it is stored.
func NewChildren[P, C any](parents *Repository[P], items *Repository[C], column string, assign func(*C, uint)) *Children[P, C] {
	return &Children[P, C]{
		parents: parents,
		items:   items,
		column:  column,
		assign:  assign,
	}
}

// WithPrepare registers a hook run on every child before create and update
func (c *Children[P, C]) WithPrepare(fn func(item *C) error) *Children[P, C] {
	c.prepare = fn
	return c
}

func (c *Children[P, C]) scoped(parentID uint) *Repository[C] {
	return c.items.With(WhereEq(c.column, parentID))
}

func (c *Children[P, C]) List(ctx context.Context, parentID uint) ([]C, error) {
	if err := c.parents.Exists(ctx, parentID); err != nil {
		return nil, err
	}
	return c.scoped(parentID).Find(ctx)
}

func (c *Children[P, C]) Get(ctx context.Context, parentID, id uint) (*C, error) {
	if err := c.parents.Exists(ctx, parentID); err != nil {
		return nil, err
	}
	return c.scoped(parentID).Get(ctx, id)
}

// Create stores item under parentID, overriding any parent id in the body
func (c *Children[P, C]) Create(ctx context.Context, parentID uint, item *C) error {
	if err := c.parents.Exists(ctx, parentID); err != nil {
		return err
	}
	c.assign(item, parentID)
	if c.prepare != nil {
		if err := c.prepare(item); err != nil {
			return err
		}
	}
	return c.items.Create(ctx, item)
}

func (c *Children[P, C]) Update(ctx context.Context, parentID, id uint, item *C) error {
	if err := c.parents.Exists(ctx, parentID); err != nil {
		return err
	}
	c.assign(item, parentID)
	if c.prepare != nil {
		if err := c.prepare(item); err != nil {
			return err
		}
	}
	return c.scoped(parentID).Update(ctx, id, item)
}

// Delete removes the child only when it belongs to parentID
func (c *Children[P, C]) Delete(ctx context.Context, parentID, id uint) error {
	return c.scoped(parentID).Delete(ctx, id)
}
