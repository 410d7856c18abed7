package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// demoMetrics counts the channel and select events this run produces.
type demoMetrics struct {
	sendsTotal         prometheus.Counter
	receivesTotal      prometheus.Counter
	selectWinnerTotal  *prometheus.CounterVec
	selectDefaultTotal prometheus.Counter
	selectAllClosed    prometheus.Counter
}

func newDemoMetrics(reg prometheus.Registerer) *demoMetrics {
	factory := promauto.With(reg)
	return &demoMetrics{
		sendsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "chandemo_sends_total",
			Help: "Number of values sent through the demo channel.",
		}),
		receivesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "chandemo_receives_total",
			Help: "Number of values received from the demo channel.",
		}),
		selectWinnerTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chandemo_select_winner_total",
			Help: "Number of select races won, by channel label.",
		}, []string{"channel"}),
		selectDefaultTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "chandemo_select_default_total",
			Help: "Number of select sweeps that fell through to the default handler.",
		}),
		selectAllClosed: factory.NewCounter(prometheus.CounterOpts{
			Name: "chandemo_select_all_closed_total",
			Help: "Number of selects that found every channel closed and empty.",
		}),
	}
}

// serveMetrics exposes the registry on addr until the returned shutdown
// func is called.
func serveMetrics(addr string, reg *prometheus.Registry) (shutdown func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		_ = server.ListenAndServe()
	}()

	return func() { _ = server.Close() }
}
