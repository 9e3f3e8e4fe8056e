package metrics

import (
	"time"

	"github.com/marmotedu/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/code"
)

// 存储操作结果标签。
const (
	ResultOK          = "ok"
	ResultNotFound    = "not_found"
	ResultUnavailable = "unavailable"
	ResultError       = "error"
)

var (
	StoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "user_store_operations_total",
		Help: "Total number of user store operations by result",
	}, []string{"operation", "result"})

	StoreDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "user_store_operation_duration_seconds",
		Help:    "Duration of user store operations",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
	}, []string{"operation"})
)

// RecordStoreOperation 记录一次存储调用，found 为 false 表示记录不存在。
func RecordStoreOperation(operation string, begin time.Time, found bool, err error) {
	StoreDuration.WithLabelValues(operation).Observe(time.Since(begin).Seconds())
	StoreOperations.WithLabelValues(operation, resultOf(found, err)).Inc()
}

func resultOf(found bool, err error) string {
	switch {
	case err == nil && found:
		return ResultOK
	case err == nil:
		return ResultNotFound
	case errors.IsCode(err, code.ErrStoreUnavailable):
		return ResultUnavailable
	default:
		return ResultError
	}
}
