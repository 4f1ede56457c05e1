package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultVerified = "verified"
	ResultRejected = "rejected"
)

type Metrics struct {
	CodesIssued   prometheus.Counter
	MailFailures  prometheus.Counter
	Verifications *prometheus.CounterVec
	SweptCodes    prometheus.Counter
	PendingCodes  prometheus.Gauge
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer in main
// and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CodesIssued: f.NewCounter(prometheus.CounterOpts{
			Name: "loancompare_verification_codes_issued_total",
			Help: "Total number of email verification codes issued",
		}),
		MailFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "loancompare_verification_mail_failures_total",
			Help: "Total number of verification emails that could not be sent",
		}),
		Verifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "loancompare_verification_attempts_total",
			Help: "Total number of verification attempts by result",
		}, []string{"result"}),
		SweptCodes: f.NewCounter(prometheus.CounterOpts{
			Name: "loancompare_verification_codes_swept_total",
			Help: "Total number of expired codes removed by the background sweep",
		}),
		PendingCodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "loancompare_verification_codes_pending",
			Help: "Current number of stored verification codes, expired ones included",
		}),
	}
}

func (m *Metrics) IncrementIssued() {
	m.CodesIssued.Inc()
}

func (m *Metrics) IncrementMailFailures() {
	m.MailFailures.Inc()
}

func (m *Metrics) ObserveVerification(ok bool) {
	result := ResultRejected
	if ok {
		result = ResultVerified
	}
	m.Verifications.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveSweep(removed, remaining int) {
	m.SweptCodes.Add(float64(removed))
	m.PendingCodes.Set(float64(remaining))
}

func (m *Metrics) SetPending(count int) {
	m.PendingCodes.Set(float64(count))
}
