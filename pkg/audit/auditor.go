// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package audit scores whole files of candidate passwords, one per line,
// and aggregates the results into a summary.
package audit

import (
	"bufio"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/dgraph-io/ristretto"
	"github.com/rs/zerolog/log"
	"github.com/thinhdanggroup/executor"

	"pwd-audit/internal/util"
	"pwd-audit/pkg/analyzer"
)

// Sample is one of the weakest lines found during an audit.
type Sample struct {
	Line                int
	Password            string
	Length              int
	Category            analyzer.Category
	EntropyBitsAdjusted float64
}

// Summary aggregates one audit run. CacheHits counts lines answered from
// the report cache; it is a best-effort number since the cache admits
// asynchronously.
type Summary struct {
	Total      int
	CacheHits  int
	ByCategory map[analyzer.Category]int
	Weakest    []Sample
}

type Auditor struct {
	engine      *analyzer.Analyzer
	parallelism int
	top         int
	cache       *ristretto.Cache
	stat        *status
	mu          sync.Mutex
	summary     Summary
}

// NewAuditor builds an auditor around engine. A nil engine selects the
// default analyzer; top caps the retained weakest samples (default 10).
func NewAuditor(engine *analyzer.Analyzer, parallelism int, top int) (*Auditor, error) {
	if engine == nil {
		engine = analyzer.New(analyzer.Options{})
	}
	if top <= 0 {
		top = 10
	}

	// Password dumps repeat entries a lot; cache reports so duplicate
	// lines are scored once.
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1 << 20,
		MaxCost:     64 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &Auditor{
		engine:      engine,
		parallelism: parallelism,
		top:         top,
		cache:       cache,
	}, nil
}

func (a *Auditor) Close() {
	a.cache.Close()
}

// ProcessFile audits every non-blank line of fileName concurrently and
// returns the aggregated summary.
func (a *Auditor) ProcessFile(fileName string) (Summary, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return Summary{}, err
	}

	defer func(file *os.File) {
		if err = file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing audit input file")
		}
	}(file)

	s := util.Stats()
	defer s()

	threads := a.parallelism
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	auditTasks, err := executor.New(executor.Config{
		ReqPerSeconds: 0,
		QueueSize:     2 * threads,
		NumWorkers:    threads,
	})
	if err != nil {
		return Summary{}, err
	}
	defer auditTasks.Close()

	log.Info().Msgf("auditing passwords from file %s with %d threads", fileName, threads)
	a.stat = newStatus()
	a.stat.BeginProgress()
	a.summary = Summary{ByCategory: make(map[analyzer.Category]int)}

	lineNo := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lineNo++
		if err = auditTasks.Publish(a.AuditLine, line, lineNo); err != nil {
			log.Panic().Err(err).Msgf("there is a programming error here.")
		}
	}

	auditTasks.Wait()
	a.cache.Wait()
	a.stat.Done()

	return a.summary, scanner.Err()
}

func (a *Auditor) AuditLine(password string, line int) {
	var report analyzer.Report
	hit := false
	if cached, ok := a.cache.Get(password); ok {
		report = cached.(analyzer.Report)
		hit = true
		a.stat.CacheHit()
	} else {
		report = a.engine.Analyze(password)
		a.cache.Set(password, report, 1)
	}

	a.mu.Lock()
	a.summary.Total++
	if hit {
		a.summary.CacheHits++
	}
	a.summary.ByCategory[report.Category]++
	a.recordWeakest(Sample{
		Line:                line,
		Password:            password,
		Length:              report.PasswordLength,
		Category:            report.Category,
		EntropyBitsAdjusted: report.EntropyBitsAdjusted,
	})
	a.mu.Unlock()

	a.stat.LineProcessed()
}

// recordWeakest keeps the samples sorted by adjusted bits ascending,
// capped at top. Caller holds the mutex.
func (a *Auditor) recordWeakest(sample Sample) {
	weakest := a.summary.Weakest
	i := sort.Search(len(weakest), func(i int) bool {
		return weakest[i].EntropyBitsAdjusted >= sample.EntropyBitsAdjusted
	})
	if i >= a.top {
		return
	}

	weakest = append(weakest, Sample{})
	copy(weakest[i+1:], weakest[i:])
	weakest[i] = sample
	if len(weakest) > a.top {
		weakest = weakest[:a.top]
	}
	a.summary.Weakest = weakest
}
