package core

import "time"

// Latency simulates the network delay of a real backend so the admin
// frontend can be developed against realistic response times. The zero
// value never sleeps; tests rely on that.
type Latency struct {
	enabled bool
}

func NewLatency(conf *Config) Latency {
	return Latency{enabled: conf.Mock.Latency}
}

func (l Latency) Sleep(d time.Duration) {
	if l.enabled && d > 0 {
		time.Sleep(d)
	}
}

// SleepSteps reports incremental progress: it pauses before each of the
// 10%-increment callbacks from 0 to 100. A nil fn falls back to a single
// sleep of total. Callbacks fire even when latency is disabled.
func (l Latency) SleepSteps(total, pause time.Duration, fn func(pct int)) {
	if fn == nil {
		l.Sleep(total)
		return
	}
	for pct := 0; pct <= 100; pct += 10 {
		l.Sleep(pause)
		fn(pct)
	}
}
