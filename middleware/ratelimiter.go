package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimiter returns a Gin middleware that limits requests per IP.
// Calendar views are recomputed on every request, so keep a generous
// budget for SPA navigation while still stopping runaway clients.
func RateLimiter() gin.HandlerFunc {
	store := memory.NewStore()
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  300,
	}

	// 🚦 Gin-compatible middleware
	instance := limiter.New(store, rate)
	return ginlimiter.NewMiddleware(instance)
}
