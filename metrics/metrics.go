// metrics 包记录文档生成过程中的计数，供 /metrics 和 textfile 导出。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gh_docs"

// 运行结果
const (
	ResultSuccess = "success"
	ResultPartial = "partial"
	ResultFailure = "failure"
)

// Metrics 所有方法对 nil 接收者安全，不需要指标时传 nil 即可
type Metrics struct {
	pagesWritten  *prometheus.CounterVec
	fetchFailures *prometheus.CounterVec
	runs          *prometheus.CounterVec
	lastRun       prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		pagesWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pages_written_total",
			Help:      "Total number of markdown pages written",
		}, []string{"section"}),
		fetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_failures_total",
			Help:      "Total number of failed GitHub API fetches",
		}, []string{"section", "op"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total number of generation runs by result",
		}, []string{"result"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "UNIX timestamp of the last finished generation run",
		}),
	}
	reg.MustRegister(m.pagesWritten, m.fetchFailures, m.runs, m.lastRun)
	return m
}

func (m *Metrics) PageWritten(section string) {
	if m == nil {
		return
	}
	m.pagesWritten.WithLabelValues(section).Inc()
}

func (m *Metrics) FetchFailed(section, op string) {
	if m == nil {
		return
	}
	m.fetchFailures.WithLabelValues(section, op).Inc()
}

func (m *Metrics) RunFinished(result string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(result).Inc()
	m.lastRun.SetToCurrentTime()
}
