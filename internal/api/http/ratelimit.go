package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-insights/internal/persistence"
	apperrors "github.com/spec-kit/ticket-insights/pkg/util"
)

// NewRateLimiter bounds per-client request rates with a fixed one-minute
// window in Redis. It fails open: an unreachable Redis must not take the
// recommendation API down with it.
func NewRateLimiter(store *persistence.Redis, perMinute int, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if store == nil || store.Client == nil || perMinute <= 0 {
			return c.Next()
		}

		window := time.Now().Unix() / 60
		key := fmt.Sprintf("ratelimit:%s:%d", c.IP(), window)

		ctx := c.UserContext()
		count, err := store.Client.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("rate limit check failed", zap.Error(err))
			return c.Next()
		}
		if count == 1 {
			store.Client.Expire(ctx, key, time.Minute)
		}
		if count > int64(perMinute) {
			return apperrors.NewTooManyRequests("rate limit exceeded")
		}
		return c.Next()
	}
}
