package otp

import (
	"log/slog"
	"time"
)

// Sweeper periodically garbage-collects expired registry entries. It is
// owned by the service lifecycle: started at boot, stopped at shutdown.
type Sweeper struct {
	registry Registry
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewSweeper(registry Registry, interval time.Duration) *Sweeper {
	return &Sweeper{
		registry: registry,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop in its own goroutine.
func (s *Sweeper) Start() {
	go s.run()
}

func (s *Sweeper) run() {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := s.registry.DeleteExpired(time.Now()); n > 0 {
				slog.Debug("swept expired otp entries", "count", n)
			}
		case <-s.stop:
			return
		}
	}
}

// Stop halts the sweep loop and waits for it to exit.
func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
}
