package janitor

import (
	"sync"
	"time"

	"github.com/oarkflow/log"
)

// Purger is implemented by caches that can be emptied in one call.
type Purger interface {
	Purge() int
}

// Janitor empties a cache at a fixed interval so long-running services do
// not keep stems for vocabulary they stopped seeing.
type Janitor struct {
	name             string
	target           Purger
	cleanupFrequency time.Duration
	stopChan         chan struct{}
	stopOnce         sync.Once
}

// New creates a Janitor for target. name only appears in logs.
func New(name string, target Purger, cleanupFrequency time.Duration) *Janitor {
	return &Janitor{
		name:             name,
		target:           target,
		cleanupFrequency: cleanupFrequency,
		stopChan:         make(chan struct{}),
	}
}

// Start runs CleanUp in its own goroutine.
func (j *Janitor) Start() {
	go j.CleanUp()
}

// CleanUp runs the cleanup process periodically until Stop is called.
func (j *Janitor) CleanUp() {
	if j.cleanupFrequency <= 0 {
		return
	}
	ticker := time.NewTicker(j.cleanupFrequency)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			j.cleanupProcess()
		case <-j.stopChan:
			return
		}
	}
}

func (j *Janitor) cleanupProcess() int {
	removed := j.target.Purge()
	log.Info().Str("cache", j.name).Int("removed", removed).Msg("Purged cache")
	return removed
}

// Stop stops the janitor's cleanup process. It is safe to call more than once.
func (j *Janitor) Stop() {
	j.stopOnce.Do(func() {
		close(j.stopChan)
	})
}
