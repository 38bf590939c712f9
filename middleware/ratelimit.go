package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// IPRateLimit 按 IP 限流中间件
// 每 IP 在 window 窗口内最多 maxAttempts 次请求，超过返回 429
// 用于登录和发送验证码等敏感接口
func IPRateLimit(maxAttempts int, window time.Duration) gin.HandlerFunc {
	var (
		mu    sync.Mutex
		store = make(map[string][]time.Time)
	)

	// 定期清理过期数据，避免 map 无限增长
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			mu.Lock()
			cutoff := time.Now().Add(-window)
			for ip, ts := range store {
				kept := pruneBefore(ts, cutoff)
				if len(kept) == 0 {
					delete(store, ip)
				} else {
					store[ip] = kept
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		kept := pruneBefore(store[ip], now.Add(-window))
		if len(kept) >= maxAttempts {
			store[ip] = kept
			mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "请求过于频繁，请稍后再试",
			})
			c.Abort()
			return
		}
		store[ip] = append(kept, now)
		mu.Unlock()

		c.Next()
	}
}

// pruneBefore 丢弃 cutoff 之前的时间戳
func pruneBefore(ts []time.Time, cutoff time.Time) []time.Time {
	kept := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}
