// auth.go
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

package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/catalogdb/internal/metrics"
	"github.com/localnerve/catalogdb/internal/types"
)

// DefaultAuthHeader carries the shared secret on gated routes
const DefaultAuthHeader = "passwordKey"

// SharedSecret rejects requests whose header does not equal secret with a 403
func SharedSecret(header, secret string, m *metrics.Metrics) fiber.Handler {
	if header == "" {
		header = DefaultAuthHeader
	}
	expected := []byte(secret)

	return func(c *fiber.Ctx) error {
		provided := c.Get(header)
		if provided == "" {
			m.GateRejected()
			return types.Forbidden("Header \""+header+"\" not found", "data.authorization")
		}

		if subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
			m.GateRejected()
			return types.Forbidden("Invalid \""+header+"\" header", "data.authorization")
		}

		return c.Next()
	}
}
