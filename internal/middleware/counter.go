package middleware

import (
	"strconv"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
)

// HeaderRequestCount carries the running request count on every response
const HeaderRequestCount = "X-Request-Count"

// RequestCounter counts requests served since it was created
type RequestCounter struct {
	count atomic.Uint64
}

func NewRequestCounter() *RequestCounter {
	return &RequestCounter{}
}

// Count returns the number of requests seen so far
func (rc *RequestCounter) Count() uint64 {
	return rc.count.Load()
}

// Handler increments the count and writes it to the response header
func (rc *RequestCounter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		n := rc.count.Add(1)
		c.Set(HeaderRequestCount, strconv.FormatUint(n, 10))
		return c.Next()
	}
}
