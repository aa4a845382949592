package audit

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type status struct {
	linesProcessed uint64
	cacheHits      uint64
	start          time.Time
	ticker         *time.Ticker
	progress       chan bool
}

func newStatus() *status {
	return &status{
		start:    time.Now(),
		ticker:   time.NewTicker(10 * time.Second),
		progress: make(chan bool),
	}
}

// BeginProgress reports the progress of the audit every 10 seconds.
func (s *status) BeginProgress() {
	go func() {
		for {
			select {
			case <-s.progress:
				return
			case <-s.ticker.C:
				log.Info().Msgf("%d lines audited. %.0f lines/s",
					atomic.LoadUint64(&s.linesProcessed), s.linesPerSecond())
			}
		}
	}()
}

func (s *status) LineProcessed() {
	atomic.AddUint64(&s.linesProcessed, 1)
}

func (s *status) CacheHit() {
	atomic.AddUint64(&s.cacheHits, 1)
}

func (s *status) linesPerSecond() float64 {
	elapsed := time.Since(s.start)
	if elapsed.Nanoseconds() > 0 {
		return float64(atomic.LoadUint64(&s.linesProcessed)) / elapsed.Seconds()
	}
	return float64(atomic.LoadUint64(&s.linesProcessed))
}

func (s *status) Done() {
	s.progress <- true

	p := message.NewPrinter(language.English)
	log.Info().Msgf("finished auditing %s lines in %v. %.0f lines/s",
		p.Sprintf("%d", atomic.LoadUint64(&s.linesProcessed)), time.Since(s.start), s.linesPerSecond())
	log.Debug().Msgf("%s duplicate lines answered from cache", p.Sprintf("%d", atomic.LoadUint64(&s.cacheHits)))
}
