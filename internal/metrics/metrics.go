// Package metrics содержит Prometheus-инструментацию движка расчетов.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// PurchasesCreated считает успешно созданные покупки
	PurchasesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlement_purchases_created_total",
		Help: "Total number of purchases created",
	})

	// PurchaseTransitions считает переходы покупок по статусам
	PurchaseTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settlement_purchase_transitions_total",
		Help: "Total number of purchase status transitions",
	}, []string{"to_status"})

	// BreakdownFailures считает отклоненные распределения (отрицательные компоненты)
	BreakdownFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlement_breakdown_failures_total",
		Help: "Total number of rejected settlement breakdowns",
	})

	// ConcurrencyConflicts считает проигранные гонки условных обновлений статуса
	ConcurrencyConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlement_concurrency_conflicts_total",
		Help: "Total number of lost status update races",
	})
)

// Handler возвращает HTTP-обработчик метрик Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
