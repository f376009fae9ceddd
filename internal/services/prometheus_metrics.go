package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	budgetUpserts         *prometheus.CounterVec
	budgetUpsertDuration  prometheus.Histogram
	expensesRecorded      *prometheus.CounterVec
	expenseAmount         prometheus.Histogram
	summariesCalculated   *prometheus.CounterVec
	summaryDuration       prometheus.Histogram
	reconciliationRuns    *prometheus.CounterVec
	reconciliationSkipped *prometheus.GaugeVec
	seededRows            *prometheus.CounterVec
	exportsTotal          *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		budgetUpserts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_upserts_total",
				Help: "Total number of budget upserts by source table",
			},
			[]string{"source", "status"},
		),
		budgetUpsertDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_upsert_duration_milliseconds",
				Help:    "Budget upsert duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		expensesRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_recorded_total",
				Help: "Total number of expenses recorded",
			},
			[]string{"status"},
		),
		expenseAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "expense_amount_yen",
				Help:    "Recorded expense amounts in yen",
				Buckets: prometheus.ExponentialBuckets(100, 10, 6),
			},
		),
		summariesCalculated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "summary_calculated_total",
				Help: "Total number of monthly summaries by budget source and status",
			},
			[]string{"source", "status"},
		),
		summaryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "summary_calculation_duration_seconds",
				Help:    "Monthly summary calculation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		reconciliationRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reconciliation_runs_total",
				Help: "Total number of bulk reconciliation runs",
			},
			[]string{"direction"},
		),
		reconciliationSkipped: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "reconciliation_skipped_rows",
				Help: "Rows skipped by the last reconciliation run",
			},
			[]string{"direction"},
		),
		seededRows: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seeded_rows_total",
				Help: "Total number of rows inserted by default seeding",
			},
			[]string{"table"},
		),
		exportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_exports_total",
				Help: "Total number of spreadsheet exports",
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "budget_upserts_total":
		m.budgetUpserts.WithLabelValues(tags["source"], status).Inc()
	case "expenses_recorded_total":
		if status != "" {
			m.expensesRecorded.WithLabelValues(status).Inc()
		}
	case "summary_calculated_total":
		m.summariesCalculated.WithLabelValues(tags["source"], status).Inc()
	case "reconciliation_runs_total":
		m.reconciliationRuns.WithLabelValues(tags["direction"]).Inc()
	case "expense_exports_total":
		if status != "" {
			m.exportsTotal.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "budget_upsert":
		m.budgetUpsertDuration.Observe(float64(duration.Milliseconds()))
	case "summary_calculation":
		m.summaryDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "expense_amount":
		m.expenseAmount.Observe(value)
	case "reconciliation_skipped":
		m.reconciliationSkipped.WithLabelValues(tags["direction"]).Set(value)
	case "seeded_rows":
		if table := tags["table"]; table != "" {
			m.seededRows.WithLabelValues(table).Add(value)
		}
	}
}
