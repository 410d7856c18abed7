// Command chandemo runs the channel and select toolkit end to end:
// a rate-limited producer filling a bounded channel to the point of
// backpressure, a close-then-drain, and both select variants racing a
// handful of channels. It exists to exercise chanx/chanutil the way a
// human would drive them from a terminal, not to be a library itself.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/example/chanselect/chanx"
	"github.com/example/chanselect/chanutil"
	"github.com/example/chanselect/internal/config"
)

func main() {
	configPath := flag.String("config", "testdata/chandemo.yaml", "path to the demo YAML config")
	metricsAddr := flag.String("metrics-addr", ":9190", "address to serve /metrics on")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("loading config:", err)
		return
	}

	logger := setupLogger(&cfg.Logging)
	runID := uuid.New().String()
	logger = logger.With().Str("run_id", runID).Logger()

	reg := prometheus.NewRegistry()
	metrics := newDemoMetrics(reg)
	shutdownMetrics := serveMetrics(*metricsAddr, reg)
	defer shutdownMetrics()

	logger.Info().Str("metrics_addr", *metricsAddr).Msg("starting chandemo")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Producer.ShutdownAfter)*time.Millisecond)
	defer cancel()

	runBackpressureDemo(ctx, logger, metrics, cfg)
	runSelectWithoutDefaultDemo(logger, metrics, cfg.Select.RaceChannels)
	runSelectWithDefaultDemo(logger, metrics)
	runFanInDemo(logger)

	logger.Info().Msg("chandemo complete")
}

// runBackpressureDemo paces a producer through a rate.Limiter into a
// bounded channel, then closes it and drains whatever is left, showing
// that buffered values survive a close.
func runBackpressureDemo(ctx context.Context, logger zerolog.Logger, m *demoMetrics, cfg *config.Config) {
	logger.Info().Int("capacity", cfg.Channel.Capacity).Msg("backpressure demo: start")

	ch := chanx.New[int](cfg.Channel.Capacity)
	limiter := rate.NewLimiter(rate.Limit(cfg.Producer.PerSecond), cfg.Producer.BurstSize)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < cfg.Producer.Count; i++ {
			if err := limiter.Wait(ctx); err != nil {
				break
			}
			if ch.Send(i) {
				m.sendsTotal.Inc()
			}
		}
		ch.Close()
	}()

	received := 0
	ch.Range(func(v int) bool {
		m.receivesTotal.Inc()
		received++
		return true
	})
	<-done

	logger.Info().Int("received", received).Msg("backpressure demo: done")
}

// runSelectWithoutDefaultDemo races several channels: only the one that
// actually sends wins, and the others' pending receives are cancelled
// without ever blocking a sender.
func runSelectWithoutDefaultDemo(logger zerolog.Logger, m *demoMetrics, raceChannels int) {
	winner := chanx.New[string](1)

	go func() {
		time.Sleep(time.Duration(rand.Intn(20)) * time.Millisecond)
		winner.Send("hi")
	}()

	s := chanx.NewSelector()
	s = chanx.WithCase(s, winner, func(v string) {
		m.selectWinnerTotal.WithLabelValues("winner").Inc()
		logger.Info().Str("value", v).Msg("select without default: winner case won")
	})

	// The remaining race_channels-1 cases never send; they exist purely
	// to exercise cancellation of every losing branch once winner wins.
	losers := make([]*chanx.Channel[int], 0, raceChannels-1)
	for i := 0; i < raceChannels-1; i++ {
		loser := chanx.New[int](0)
		losers = append(losers, loser)
		label := fmt.Sprintf("loser-%d", i)
		s = chanx.WithCase(s, loser, func(v int) {
			m.selectWinnerTotal.WithLabelValues(label).Inc()
			logger.Info().Int("value", v).Msg("select without default: loser case won")
		})
	}

	if !s.Run() {
		m.selectAllClosed.Inc()
		logger.Info().Msg("select without default: all channels closed")
	}

	for _, loser := range losers {
		loser.Close()
	}
}

// runSelectWithDefaultDemo sweeps three closed/empty channels and falls
// through to the default handler.
func runSelectWithDefaultDemo(logger zerolog.Logger, m *demoMetrics) {
	a := chanx.New[int](0)
	b := chanx.New[int](0)
	c := chanx.New[int](0)
	a.Close()
	c.Close()

	s := chanx.NewSelector()
	s = chanx.WithCase(s, a, func(int) {})
	s = chanx.WithCase(s, b, func(int) {})
	s = chanx.WithCase(s, c, func(int) {})
	s = s.WithDefault(func() {
		m.selectDefaultTotal.Inc()
		logger.Info().Msg("select with default: default handler ran")
	})

	s.Run()
}

// runFanInDemo merges two producer channels into one via chanutil.Merge.
// out.Range is the only consumer of out: it returns once Merge has closed
// out, so there is nothing left for a second observer to wait on.
func runFanInDemo(logger zerolog.Logger) {
	in1 := chanx.New[int](2)
	in2 := chanx.New[int](2)
	out := chanx.New[int](0)

	chanutil.Merge(out, in1, in2)

	go func() {
		in1.Send(1)
		in2.Send(2)
		in1.Close()
		in2.Close()
	}()

	out.Range(func(v int) bool {
		logger.Info().Int("value", v).Msg("fan-in demo: received")
		return true
	})
}
