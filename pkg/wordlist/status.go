package wordlist

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type status struct {
	sourcesFetched   uint64
	entriesRead      uint64
	requests         uint64
	requestTimeTotal uint64
	start            time.Time
	ticker           *time.Ticker
	progress         chan bool
	totalSources     int
}

func newStatus(totalSources int) *status {
	return &status{
		start:        time.Now(),
		ticker:       time.NewTicker(10 * time.Second),
		progress:     make(chan bool),
		totalSources: totalSources,
	}
}

// BeginProgress reports the progress of the fetch every 10 seconds.
func (s *status) BeginProgress() {
	go func() {
		for {
			select {
			case <-s.progress:
				return
			case <-s.ticker.C:
				log.Info().Msgf("%d of %d sources fetched. %.0f entries/s",
					atomic.LoadUint64(&s.sourcesFetched), s.totalSources, s.entriesPerSecond())
			}
		}
	}()
}

func (s *status) SourceFetched() {
	atomic.AddUint64(&s.sourcesFetched, 1)
}

func (s *status) EntriesRead(n int) {
	atomic.AddUint64(&s.entriesRead, uint64(n))
}

func (s *status) RequestComplete(millis int64) {
	atomic.AddUint64(&s.requestTimeTotal, uint64(millis))
	atomic.AddUint64(&s.requests, 1)
}

func (s *status) entriesPerSecond() float64 {
	elapsed := time.Since(s.start)
	if elapsed.Nanoseconds() > 0 {
		return float64(atomic.LoadUint64(&s.entriesRead)) / elapsed.Seconds()
	}
	return float64(atomic.LoadUint64(&s.entriesRead))
}

func (s *status) Done() {
	s.progress <- true

	requestAverage := 0.0
	if s.requests > 0 {
		requestAverage = float64(s.requestTimeTotal) / float64(s.requests)
	}

	p := message.NewPrinter(language.English)
	log.Info().Msgf("finished fetching all sources in %v. %.0f entries/s", time.Since(s.start), s.entriesPerSecond())
	log.Debug().Msgf("made %s requests. Average response time %.2f ms", p.Sprintf("%d", s.requests), requestAverage)
	log.Debug().Msgf("read %s raw entries before the merge", p.Sprintf("%d", s.entriesRead))
}
