// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package wordlist fetches and merges common-password source lists into a
// single deduplicated file usable as an analyzer wordlist.
package wordlist

import (
	"bufio"
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/jfcg/sorty/v2"
	"github.com/rs/zerolog/log"
	"github.com/thinhdanggroup/executor"
	"golang.org/x/net/context"

	"pwd-audit/internal/util"
)

// DefaultSources are the SecLists common-credential files merged into the
// output when no custom sources are given.
var DefaultSources = []string{
	"https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/Common-Credentials/10-million-password-list-top-1000.txt",
	"https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/Common-Credentials/10-million-password-list-top-10000.txt",
	"https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/Common-Credentials/10-million-password-list-top-100000.txt",
	"https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/darkweb2017-top10000.txt",
	"https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/xato-net-10-million-passwords-10000.txt",
}

type Fetcher struct {
	parallelism int
	stat        *status
	mu          sync.Mutex
	entries     []string
	fileName    string
	writer      *bufio.Writer
	http        *retryablehttp.Client
	sources     []string
}

func NewFetcher(out *os.File, parallelism int, sources []string) *Fetcher {
	if len(sources) == 0 {
		sources = DefaultSources
	}

	return &Fetcher{
		parallelism: parallelism,
		writer:      bufio.NewWriter(out),
		http:        initHttpClient(),
		fileName:    out.Name(),
		sources:     sources,
	}
}

func initHttpClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	// Too much garbage in the logs otherwise.
	client.Logger = nil

	// Retry Max 10 times on protocol errors. Any other are just reported and not retried.
	client.RetryMax = 10

	client.HTTPClient = &http.Client{
		Transport: &http.Transport{
			DisableCompression: false,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS13,
			},
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       10 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
		},
	}

	return client
}

// Fetch downloads every source concurrently, then merges the collected
// entries into the output file, lowercased, sorted and deduplicated.
func (f *Fetcher) Fetch() error {
	util.CheckDiskSpace(f.fileName, 64)
	// The merge holds every entry in memory; rough per-source estimate.
	util.CheckRam(uint64(len(f.sources))*120000, 16)

	s := util.Stats()
	defer s()

	threads := f.parallelism
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > len(f.sources) {
		threads = len(f.sources)
	}

	fetchTasks, err := executor.New(executor.Config{
		ReqPerSeconds: 0,
		QueueSize:     2 * threads,
		NumWorkers:    threads,
	})
	if err != nil {
		return err
	}
	defer fetchTasks.Close()

	log.Info().Msgf("fetching %d wordlist sources into file %s with %d threads", len(f.sources), f.fileName, threads)
	f.stat = newStatus(len(f.sources))
	f.stat.BeginProgress()

	for _, source := range f.sources {
		if err = fetchTasks.Publish(f.FetchSource, source); err != nil {
			log.Panic().Err(err).Msgf("there is a programming error here.")
		}
	}

	fetchTasks.Wait()
	f.stat.Done()

	return f.writeMerged()
}

func (f *Fetcher) FetchSource(source string) {
	if data, err := f.downloadSource(source); err == nil {
		f.collect(data)
		f.stat.SourceFetched()
	} else {
		log.Error().Err(err).Msgf("error fetching wordlist source %s", source)
	}
}

func sourceHttpRequest(source string) (*retryablehttp.Request, error) {
	ctx := context.WithValue(context.Background(), "source", source)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "golang-wordlist-fetcher/1.0")
	return req, nil
}

func (f *Fetcher) downloadSource(source string) ([]byte, error) {
	timer := time.Now()
	req, err := sourceHttpRequest(source)
	if err != nil {
		return nil, err
	}

	res, err := f.http.Do(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 400 {
		resBody, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, err
		}

		defer func(Body io.ReadCloser) {
			err = Body.Close()
			if err != nil {
				log.Warn().Err(err).Msgf("error closing body for source %s", source)
			}
		}(res.Body)

		f.stat.RequestComplete(time.Since(timer).Milliseconds())
		return resBody, nil
	}

	return nil, fmt.Errorf("request [%s] failed with status [%d] %s", req.RequestURI, res.StatusCode, res.Status)
}

func (f *Fetcher) collect(data []byte) {
	var batch []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		batch = append(batch, line)
	}

	f.mu.Lock()
	f.entries = append(f.entries, batch...)
	f.mu.Unlock()

	f.stat.EntriesRead(len(batch))
}

func (f *Fetcher) writeMerged() error {
	merged := Merge(f.entries)
	for _, entry := range merged {
		if _, err := f.writer.WriteString(entry + "\n"); err != nil {
			return err
		}
	}

	if err := f.writer.Flush(); err != nil {
		return err
	}

	log.Info().Msgf("wrote %d unique entries to %s", len(merged), f.fileName)
	return nil
}

// Merge normalizes entries to lowercase, drops blanks and comments, sorts
// them in parallel and removes duplicates.
func Merge(entries []string) []string {
	normalized := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}
		normalized = append(normalized, entry)
	}
	if len(normalized) == 0 {
		return nil
	}

	sorty.SortSlice(normalized)

	merged := normalized[:1]
	for _, entry := range normalized[1:] {
		if entry != merged[len(merged)-1] {
			merged = append(merged, entry)
		}
	}
	return merged
}
