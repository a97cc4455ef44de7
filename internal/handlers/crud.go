// crud.go
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

package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/catalogdb/internal/types"
)

func notify(ctx context.Context, after []invalidator) {
	for _, fn := range after {
		fn(ctx)
	}
}

// listAll responds with every item returned by load
func listAll[T any](c *fiber.Ctx, op string, load func(context.Context) ([]T, error)) error {
	items, err := load(c.UserContext())
	if err != nil {
		return handleError(c, err, op)
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

func getOne[T any](c *fiber.Ctx, op string, get func(context.Context, uint) (*T, error)) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	item, err := get(c.UserContext(), id)
	if err != nil {
		return handleError(c, err, op)
	}
	return c.Status(fiber.StatusOK).JSON(item)
}

func createOne[T any](c *fiber.Ctx, op string, create func(context.Context, *T) error, after ...invalidator) error {
	var item T
	if err := parseBody(c, &item); err != nil {
		return err
	}

	if err := create(c.UserContext(), &item); err != nil {
		return handleError(c, err, op)
	}
	notify(c.UserContext(), after)

	return c.Status(fiber.StatusOK).JSON(&item)
}

// createBatch accepts a JSON array or a single object
func createBatch[T any](c *fiber.Ctx, op string, create func(context.Context, []T) error, after ...invalidator) error {
	var body types.FlexList[T]
	if err := c.BodyParser(&body); err != nil {
		return types.BadRequest("Invalid input", "data.validation.input")
	}

	items := body.Slice()
	if len(items) == 0 {
		return types.BadRequest("Invalid input", "data.validation.input")
	}
	for i := range items {
		if err := validate.Struct(&items[i]); err != nil {
			return types.BadRequest(err.Error(), "data.validation.input")
		}
	}

	if err := create(c.UserContext(), items); err != nil {
		return handleError(c, err, op)
	}
	notify(c.UserContext(), after)

	return c.Status(fiber.StatusOK).JSON(items)
}

// checkBodyID rejects a non-zero body id that differs from the path id
func checkBodyID(c *fiber.Ctx, id uint) error {
	fromBody, err := bodyID(c)
	if err != nil {
		return err
	}
	if fromBody != 0 && fromBody != id {
		return types.BadRequest("Id mismatch", "data.validation.id")
	}
	return nil
}

func updateOne[T any](c *fiber.Ctx, op string, update func(context.Context, uint, *T) error, after ...invalidator) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := checkBodyID(c, id); err != nil {
		return err
	}

	var item T
	if err := parseBody(c, &item); err != nil {
		return err
	}

	if err := update(c.UserContext(), id, &item); err != nil {
		return handleError(c, err, op)
	}
	notify(c.UserContext(), after)

	return c.SendStatus(fiber.StatusNoContent)
}

func deleteOne(c *fiber.Ctx, op string, del func(context.Context, uint) error, after ...invalidator) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := del(c.UserContext(), id); err != nil {
		return handleError(c, err, op)
	}
	notify(c.UserContext(), after)

	return c.SendStatus(fiber.StatusNoContent)
}

func listChildren[T any](c *fiber.Ctx, op string, load func(context.Context, uint) ([]T, error)) error {
	parentID, err := parseID(c, "parentId")
	if err != nil {
		return err
	}
	return listAll(c, op, func(ctx context.Context) ([]T, error) {
		return load(ctx, parentID)
	})
}

func getChild[T any](c *fiber.Ctx, op string, get func(context.Context, uint, uint) (*T, error)) error {
	parentID, err := parseID(c, "parentId")
	if err != nil {
		return err
	}
	return getOne(c, op, func(ctx context.Context, id uint) (*T, error) {
		return get(ctx, parentID, id)
	})
}

func createChild[T any](c *fiber.Ctx, op string, create func(context.Context, uint, *T) error, after ...invalidator) error {
	parentID, err := parseID(c, "parentId")
	if err != nil {
		return err
	}
	return createOne(c, op, func(ctx context.Context, item *T) error {
		return create(ctx, parentID, item)
	}, after...)
}

func updateChild[T any](c *fiber.Ctx, op string, update func(context.Context, uint, uint, *T) error, after ...invalidator) error {
	parentID, err := parseID(c, "parentId")
	if err != nil {
		return err
	}
	return updateOne(c, op, func(ctx context.Context, id uint, item *T) error {
		return update(ctx, parentID, id, item)
	}, after...)
}

func deleteChild(c *fiber.Ctx, op string, del func(context.Context, uint, uint) error, after ...invalidator) error {
	parentID, err := parseID(c, "parentId")
	if err != nil {
		return err
	}
	return deleteOne(c, op, func(ctx context.Context, id uint) error {
		return del(ctx, parentID, id)
	}, after...)
}
