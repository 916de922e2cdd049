package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LeadsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leads_created_total",
		Help: "Total number of leads created",
	})

	LeadsWonTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leads_won_total",
		Help: "Total number of leads that reached stage Won",
	})

	LeadsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leads_deleted_total",
		Help: "Total number of leads deleted",
	})

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders created",
	})

	OrdersAutoCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_auto_created_total",
		Help: "Total number of orders auto-created for won leads",
	})

	RemindersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reminders_created_total",
		Help: "Total number of reminders created",
	})

	RemindersCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reminders_completed_total",
		Help: "Total number of reminders marked completed",
	})

	DocumentsUploadedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "documents_uploaded_total",
		Help: "Total number of documents uploaded",
	}, []string{"entity_type"})

	DocumentsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "documents_deleted_total",
		Help: "Total number of documents deleted",
	})

	UploadSizeBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "upload_size_bytes",
		Help:    "Size of uploaded documents",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	})

	DashboardQueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dashboard_queries_total",
		Help: "Total number of dashboard snapshots computed",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
