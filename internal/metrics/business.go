package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	drawModeUsed  = "mark_used"
	drawModeCycle = "cycle"
)

var (
	draws = promauto.NewCounterVec(
		prometheusCounterOpts("draws_total", "Total number of items drawn from the bag"),
		[]string{"mode"},
	)
	passesCompleted = promauto.NewCounter(
		prometheusCounterOpts("passes_completed_total", "Total number of completed passes over the bag"),
	)
	resets = promauto.NewCounter(
		prometheusCounterOpts("resets_total", "Total number of explicit bag resets"),
	)
	rangeViolations = promauto.NewCounter(
		prometheusCounterOpts("range_violations_total", "Total number of values rejected from a misbehaving random source"),
	)
	bagSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "shufflebag",
		Name:      "items",
		Help:      "Number of items in the bag",
	})
)

// IncDraws увеличивает счётчик выборок. markUsed различает проходы с пометкой и бесконечный цикл.
func IncDraws(markUsed bool) {
	if markUsed {
		draws.WithLabelValues(drawModeUsed).Inc()
		return
	}
	draws.WithLabelValues(drawModeCycle).Inc()
}

// IncPassesCompleted увеличивает счётчик завершённых проходов.
func IncPassesCompleted() {
	passesCompleted.Inc()
}

// IncResets увеличивает счётчик явных сбросов мешка.
func IncResets() {
	resets.Inc()
}

// IncRangeViolations увеличивает счётчик значений, отвергнутых проверкой контракта.
func IncRangeViolations() {
	rangeViolations.Inc()
}

// SetBagSize запоминает текущий размер мешка.
func SetBagSize(size int) {
	if size < 0 {
		return
	}
	bagSize.Set(float64(size))
}

func prometheusCounterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: "shufflebag",
		Name:      name,
		Help:      help,
	}
}
