package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS 跨域资源共享中间件
//
// 教学要点:
// 1. 浏览器同源策略下,跨域请求需要服务端返回CORS头部
// 2. 预检请求(OPTIONS)直接204返回,不进入业务路由
// 3. 记录管理类API通常给内部前端使用,默认放开所有来源,
//    生产部署时应通过网关收紧
func CORS() gin.HandlerFunc {
	allowMethods := strings.Join([]string{
		http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions,
	}, ", ")

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", allowMethods)
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
