// benchmark.go
// A reusable benchmarking module for fastqstats
// Measures execution time and memory usage for any wrapped function

package benchmark

import (
	"log"
	"os"
	"runtime"
	"time"
)

// Run wraps f to measure its runtime and memory usage, reporting through logger.
// Host and OS information is logged for repeatability. f's error is returned
// unchanged; the report is written either way.
func Run(logger *log.Logger, label string, f func() error) error {
	logger.Printf("[Benchmark] Running: %s", label)

	// Snapshot environment info
	logger.Println("[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		logger.Println("[Benchmark] Hostname:", host)
	}
	logger.Println("[Benchmark] Go Version:", runtime.Version())
	logger.Printf("[Benchmark] OS/Arch: %s/%s", runtime.GOOS, runtime.GOARCH)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()

	err := f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	logger.Printf("[Benchmark] Time Elapsed: %v", elapsed)
	// Total memory ever allocated during run
	logger.Printf("[Benchmark] Total Allocated: %.2f MB", mb(memEnd.TotalAlloc-memStart.TotalAlloc))
	// Still in use after the run
	logger.Printf("[Benchmark] Peak Heap: %.2f MB", mb(memEnd.HeapAlloc))
	logger.Printf("[Benchmark] GC Cycles: %d", memEnd.NumGC-memStart.NumGC)
	logger.Printf("[Benchmark] Total System Memory Allocated: %.2f MB", mb(memEnd.Sys))
	logger.Printf("[Benchmark] CPU Cores: %d", runtime.NumCPU())
	logger.Println("[Benchmark] ----------------------------------------")
	return err
}

func mb(b uint64) float64 { return float64(b) / 1024.0 / 1024.0 }
