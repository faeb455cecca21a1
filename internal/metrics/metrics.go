package metrics

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github/chapool/mobile-wallet/internal/config"
)

const namespace = "mobile_wallet"

// Submission outcomes.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomeRejected  = "rejected"
)

// Kinds of async responses that can go stale.
const (
	KindBalance = "balance"
	KindGas     = "gas"
)

// Service owns the prometheus registry of the wallet.
// All recording methods are safe to call on a nil *Service.
type Service struct {
	registry *prometheus.Registry

	flowsOpened    prometheus.Counter
	submissions    *prometheus.CounterVec
	staleResponses *prometheus.CounterVec
	rpcDuration    *prometheus.HistogramVec
}

func New(_ config.Server) (*Service, error) {
	s := &Service{
		registry: prometheus.NewRegistry(),
		flowsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "send",
			Name:      "flows_opened_total",
			Help:      "Number of times a send flow was opened.",
		}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "send",
			Name:      "submissions_total",
			Help:      "Number of submit attempts by outcome.",
		}, []string{"outcome"}),
		staleResponses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "send",
			Name:      "stale_responses_total",
			Help:      "Number of async responses discarded because newer input superseded them.",
		}, []string{"kind"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "call_duration_seconds",
			Help:      "Duration of collaborator calls issued by the send flow.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"call"}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.flowsOpened,
		s.submissions,
		s.staleResponses,
		s.rpcDuration,
	} {
		if err := s.registry.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register collector")
		}
	}

	return s, nil
}

func (s *Service) Registry() *prometheus.Registry {
	return s.registry
}

// Handler serves the registry in the prometheus exposition format.
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry})
}

func (s *Service) FlowOpened() {
	if s == nil {
		return
	}
	s.flowsOpened.Inc()
}

func (s *Service) Submission(outcome string) {
	if s == nil {
		return
	}
	s.submissions.WithLabelValues(outcome).Inc()
}

func (s *Service) StaleDiscarded(kind string) {
	if s == nil {
		return
	}
	s.staleResponses.WithLabelValues(kind).Inc()
}

func (s *Service) ObserveCall(call string, started time.Time) {
	if s == nil {
		return
	}
	s.rpcDuration.WithLabelValues(call).Observe(time.Since(started).Seconds())
}
