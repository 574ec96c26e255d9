// Package metrics 提供基于Prometheus的指标收集
//
// 核心概念:
// - Counter(计数器): 只增不减的累计值,以`_total`结尾
// - Histogram(直方图): 观测值分布,自动计算分位数(P50/P90/P99),以单位结尾
//
// 指标通过/metrics端点暴露,由Prometheus Server定期抓取
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// httpRequestsTotal HTTP请求总数(按方法/路由/状态码分维度)
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "library_http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	// httpRequestDuration HTTP请求耗时分布
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "library_http_request_duration_seconds",
			Help:    "HTTP请求耗时(秒)",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// loansBorrowedTotal 成功借出总数
	loansBorrowedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "library_loans_borrowed_total",
			Help: "成功借出的图书总数",
		},
	)

	// loansReturnedTotal 成功归还总数
	loansReturnedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "library_loans_returned_total",
			Help: "成功归还的图书总数",
		},
	)

	// loansOutOfStockTotal 因无可借副本被拒绝的借出请求总数
	loansOutOfStockTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "library_loans_out_of_stock_total",
			Help: "因无可借副本被拒绝的借出请求总数",
		},
	)
)

// IncLoanBorrowed 记录一次成功借出
func IncLoanBorrowed() {
	loansBorrowedTotal.Inc()
}

// IncLoanReturned 记录一次成功归还
func IncLoanReturned() {
	loansReturnedTotal.Inc()
}

// IncLoanOutOfStock 记录一次库存不足拒绝
func IncLoanOutOfStock() {
	loansOutOfStockTotal.Inc()
}

// Handler 返回Prometheus指标端点的HTTP处理器
// 用法: r.GET("/metrics", gin.WrapH(metrics.Handler()))
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware HTTP指标中间件
// 使用c.FullPath()而非原始URL作为path标签,避免/loans/123这类路径导致标签基数爆炸
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			// 未匹配到路由(404),统一归入一个标签值
			path = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		httpRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}
