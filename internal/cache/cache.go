// cache.go
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

// Package cache stores serialized list responses keyed by resource scope and
// canonical filter string, with scope-wide invalidation.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrClosed is returned by operations on a closed cache
var ErrClosed = errors.New("cache closed")

// Cache is implemented by the memory and Redis backends.
// A key always belongs to exactly one scope; InvalidateScope drops every key of that scope
// and advances the scope generation. Set stores only while the scope is still at gen, so a
// value loaded before an invalidation is never written after it.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Generation(ctx context.Context, scope string) (uint64, error)
	Set(ctx context.Context, scope, key string, gen uint64, value []byte) error
	InvalidateScope(ctx context.Context, scope string) error
	Ping(ctx context.Context) error
	Close() error
}

// Key builds the cache key for a scope and a canonical filter string
func Key(scope, canonical string) string {
	return scope + "?" + canonical
}

// Options configures a backend
type Options struct {
	// TTL of zero means entries never expire
	TTL time.Duration
}
