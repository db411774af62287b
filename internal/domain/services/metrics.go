package services

import (
	"time"

	"github.com/drujensen/taskapi/internal/domain/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	taskOperationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskapi_task_operations_total",
			Help: "Total number of task store operations",
		},
		[]string{"operation", "status"},
	)

	taskOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taskapi_task_operation_duration_seconds",
			Help:    "Duration of task store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func observeOperation(operation string, start time.Time, err *error) {
	taskOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	taskOperationCount.WithLabelValues(operation, operationStatus(*err)).Inc()
}

func operationStatus(err error) string {
	switch err.(type) {
	case nil:
		return "success"
	case *errs.ValidationError:
		return "invalid"
	case *errs.NotFoundError:
		return "not_found"
	default:
		return "error"
	}
}
