package verification

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper periodically removes expired records from a Cache on a cron schedule.
// Verify already treats expired records as absent, so sweeping only bounds memory.
type Sweeper struct {
	cache   *Cache
	spec    string
	onSweep func(removed, remaining int)
	cron    *cron.Cron
}

// NewSweeper builds a sweeper for spec (standard 5-field cron or a descriptor such as
// "@every 5m"). onSweep may be nil.
func NewSweeper(cache *Cache, spec string, onSweep func(removed, remaining int)) *Sweeper {
	return &Sweeper{
		cache:   cache,
		spec:    spec,
		onSweep: onSweep,
		cron:    cron.New(cron.WithLocation(time.UTC)),
	}
}

// Start schedules the sweep and starts the cron runner.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.run); err != nil {
		return fmt.Errorf("schedule verification sweep %q: %w", s.spec, err)
	}
	s.cron.Start()
	slog.Info("verification sweep scheduled", "spec", s.spec)
	return nil
}

// Stop halts the runner and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Sweeper) run() {
	removed := s.cache.Sweep()
	remaining := s.cache.Len()
	if removed > 0 {
		slog.Debug("expired verification codes swept", "removed", removed, "remaining", remaining)
	}
	if s.onSweep != nil {
		s.onSweep(removed, remaining)
	}
}
