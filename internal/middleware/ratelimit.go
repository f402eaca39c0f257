package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RateLimit aplica janela fixa por IP (INCR + EXPIRE) via Redis. Usado
// no endpoint de token para frear tentativa de adivinhação de senha.
// Sem Redis configurado, degrada para no-op.
func RateLimit(rdb *redis.Client, prefix string, max int, window time.Duration) gin.HandlerFunc {
	if rdb == nil || max <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := prefix + ":" + c.ClientIP()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// Redis fora do ar não derruba a API
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(max) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too_many_requests"})
			return
		}

		c.Next()
	}
}
