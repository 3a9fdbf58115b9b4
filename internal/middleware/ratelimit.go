package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type clientInfo struct {
	windowStart time.Time
	count       int
}

// RateLimit blocks clients that send more than maxRequests per window.
// Used on the unauthenticated auth endpoints to slow down credential
// guessing; counters live in process, one per client IP.
func RateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	var mu sync.Mutex
	clients := make(map[string]*clientInfo)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		ci, ok := clients[ip]
		if !ok || now.Sub(ci.windowStart) > window {
			clients[ip] = &clientInfo{windowStart: now, count: 1}
			mu.Unlock()
			c.Next()
			return
		}
		ci.count++
		count := ci.count
		mu.Unlock()

		if count > maxRequests {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests, try again later"})
			return
		}

		c.Next()
	}
}
