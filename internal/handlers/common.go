// common.go
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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/catalogdb/internal/logging"
	"github.com/localnerve/catalogdb/internal/services"
	"github.com/localnerve/catalogdb/internal/types"
	"github.com/localnerve/catalogdb/internal/utils"
)

var validate = validator.New()

// invalidator runs after a successful write
type invalidator func(ctx context.Context)

// parseQueryValues extracts every value of a query parameter, supporting both
// repeated keys and comma-separated values. Empty values are dropped.
func parseQueryValues(c *fiber.Ctx, name string) []string {
	var values []string

	args := c.Context().QueryArgs()
	for _, raw := range args.PeekMulti(name) {
		for _, v := range strings.Split(string(raw), ",") {
			v = strings.TrimSpace(v)
			if v != "" {
				values = append(values, v)
			}
		}
	}

	return values
}

// parseQueryUints is parseQueryValues for unsigned integer filters
func parseQueryUints(c *fiber.Ctx, name string) ([]uint, error) {
	raw := parseQueryValues(c, name)
	if len(raw) == 0 {
		return nil, nil
	}

	values := make([]uint, 0, len(raw))
	for _, v := range raw {
		n, err := strconv.ParseUint(v, 10, 0)
		if err != nil {
			return nil, types.BadRequest(fmt.Sprintf("Invalid value %q for filter %s", v, name), "data.validation.filter")
		}
		values = append(values, uint(n))
	}
	return values, nil
}

// parseID reads an unsigned integer path parameter
func parseID(c *fiber.Ctx, param string) (uint, error) {
	n, err := strconv.ParseUint(c.Params(param), 10, 0)
	if err != nil {
		return 0, types.BadRequest(fmt.Sprintf("Invalid %s", param), "data.validation.input")
	}
	return uint(n), nil
}

// bodyID returns the id field of the JSON body, or zero when it is absent
func bodyID(c *fiber.Ctx) (uint, error) {
	var body struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return 0, types.BadRequest("Invalid input", "data.validation.input")
	}
	return body.ID, nil
}

// parseBody decodes and validates the request body into item
func parseBody[T any](c *fiber.Ctx, item *T) error {
	if err := c.BodyParser(item); err != nil {
		return types.BadRequest("Invalid input", "data.validation.input")
	}
	if err := validate.Struct(item); err != nil {
		return types.BadRequest(err.Error(), "data.validation.input")
	}
	return nil
}

// handleError renders a service error: not found becomes 404, anything else 500
func handleError(c *fiber.Ctx, err error, op string) error {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		return utils.NotFoundResponse(c, notFound.Entity+" not found")
	}
	if errors.Is(err, services.ErrNotFound) {
		return utils.NotFoundResponse(c, "Not found")
	}

	var custom *types.CustomError
	if errors.As(err, &custom) {
		return utils.ErrorResponse(c, custom.Message, custom.Code, custom.Type)
	}

	logging.Error().Err(err).Str("op", op).Str("url", c.OriginalURL()).Msg("Request failed")
	return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, op)
}

// ErrorHandler renders errors returned from handlers and middleware
func ErrorHandler(c *fiber.Ctx, err error) error {
	var custom *types.CustomError
	if errors.As(err, &custom) {
		return utils.ErrorResponse(c, custom.Message, custom.Code, custom.Type)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return utils.ErrorResponse(c, fiberErr.Message, fiberErr.Code, "http")
	}

	return handleError(c, err, "unknown")
}
