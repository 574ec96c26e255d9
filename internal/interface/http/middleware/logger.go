package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Logger 请求日志中间件
//
// 教学要点:
// 1. 为每个请求生成唯一的请求ID,写入响应头便于排查
// 2. 记录方法、路径、状态码、耗时、客户端IP
// 3. 不记录请求体,避免泄露敏感信息并影响性能
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)

		var errMsg string
		if len(c.Errors) > 0 {
			errMsg = c.Errors.String()
		}

		fmt.Printf("[LIB] %s | %3d | %13v | %15s | %-7s %s %s\n",
			time.Now().Format("2006/01/02 - 15:04:05"),
			c.Writer.Status(),
			latency,
			c.ClientIP(),
			c.Request.Method,
			c.Request.URL.Path,
			errMsg,
		)

		// 慢请求告警(记录型API的查询都应在毫秒级完成)
		if latency > 3*time.Second {
			fmt.Printf("[WARN] Slow request: %s %s took %v (request_id=%s)\n",
				c.Request.Method,
				c.Request.URL.Path,
				latency,
				requestID,
			)
		}
	}
}
