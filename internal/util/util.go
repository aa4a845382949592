package util

import (
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"net/http"
	"runtime"
	"strings"
	"unicode"
)

func Stats() func() {
	return func() {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		log.Debug().Msgf("Alloc: %d MB, TotalAlloc: %d MB, Requested: %d MB",
			ms.Alloc/1024/1024, ms.TotalAlloc/1024/1024, ms.Sys/1024/1024)
		log.Debug().Msgf("Mallocs: %d, Frees: %d, GC: %d", ms.Mallocs, ms.Frees, ms.NumGC)
		log.Debug().Msgf("HeapAlloc: %d MB, HeapSys: %d MB, HeapIdle: %d MB",
			ms.HeapAlloc/1024/1024, ms.HeapSys/1024/1024, ms.HeapIdle/1024/1024)
		log.Debug().Msgf("HeapObjects: %d", ms.HeapObjects)
	}
}

func ApplyCliSettings(verbose bool, profile bool, pprofPort uint16) {
	if verbose {
		log.Warn().Msgf("Verbosity up")
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if profile {
		log.Info().Msgf("Profiling is enabled for this session. Server will listen on port %d", pprofPort)
		go func() {
			if err := http.ListenAndServe(fmt.Sprintf(":%d", pprofPort), nil); err != nil {
				log.Error().Err(err).Msgf("Error starting profiling server on port %d", pprofPort)
				return
			}
		}()
	}
}

// CheckRam warns when holding items entries of roughly bytesPer bytes each
// may not fit in the available system memory.
func CheckRam(items uint64, bytesPer uint64) {
	required := (items * bytesPer) / (1024 * 1024)
	if memStat, err := mem.VirtualMemory(); err == nil {
		log.Debug().Msgf("System has %.2f MiB of RAM available", float64(memStat.Available)/(1024*1024))
		if required > memStat.Available/(1024*1024) {
			log.Warn().Msgf("This process may need about %d MiB and could cause disk swapping. ^C now to stop the process.", required)
		}
	} else {
		log.Warn().Msgf("Estimated memory use for %d items is %d MiB", items, required)
	}
}

func CheckDiskSpace(fileName string, sizeMb int) {
	if parts, err := disk.Partitions(false); err == nil {
		for _, part := range parts {
			if strings.Index(fileName, part.Mountpoint) >= 0 {
				if usage, err := disk.Usage(part.Mountpoint); err == nil {
					log.Debug().Msgf("%s has %.2f GiB free", part.Mountpoint, float64(usage.Free)/(1024*1024*1024))
					required := uint64(sizeMb * 1024 * 1024)
					if required > usage.Free {
						log.Fatal().Msgf("Drive %s does not have sufficient space free (%d MB) for the download. Please free some space before trying again", part.Mountpoint, sizeMb)
					}
				} else {
					log.Debug().Err(err).Msgf("Error getting current storage sizes")
				}
			}
		}
	} else {
		log.Debug().Err(err).Msgf("Error getting current storage sizes")
	}
}

// ToScreamingSnakeCase converts a CamelCase field name to the SCREAMING
// form used for environment variables, e.g. TLSCert -> TLS_CERT.
func ToScreamingSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
