// Package debug provides a periodic runtime telemetry logger, enabled by the
// debug config flag. It samples goroutine counts, heap and stack usage, and
// the OS working set where the platform exposes one, to make leak hunts in
// long preview sessions cheap.
package debug

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// StartTelemetry launches a goroutine that logs runtime stats every interval.
// It is best-effort and never stops; disable by running without the debug flag.
func StartTelemetry(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		var rssErrLogged bool
		for range t.C {
			metrics.Read(samples)
			goroutines := samples[0].Value.Uint64()
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			rss, ok, err := workingSet()
			if err != nil && !rssErrLogged {
				logger.Warn("telemetry: working set query failed", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			attrs := []any{
				slog.Uint64("goroutines", goroutines),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("heap_sys", ms.HeapSys),
				slog.Uint64("stack_inuse", uint64(ms.StackInuse)),
				slog.Uint64("next_gc", ms.NextGC),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			}
			if ok {
				attrs = append(attrs, slog.Uint64("rss", rss))
			}
			logger.Info("runtime-telemetry", attrs...)
		}
	}()
}
