package profiling

import (
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU buckets. Names are "package.Operation"; the HUD groups them by prefix.

var (
	mu      sync.Mutex
	current = make(map[string]time.Duration)
	last    = make(map[string]time.Duration)
	counts  = make(map[string]int)
)

// Track starts a timer and returns the function that stops it.
//
//	defer profiling.Track("carve.Displace")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		current[name] += d
		counts[name]++
		mu.Unlock()
	}
}

// ResetFrame keeps the finished frame's totals for Snapshot and starts a new frame.
func ResetFrame() {
	mu.Lock()
	clear(last)
	for k, v := range current {
		last[k] = v
	}
	clear(current)
	clear(counts)
	mu.Unlock()
}

// Snapshot returns a copy of the last finished frame.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(last))
	for k, v := range last {
		out[k] = v
	}
	return out
}

// Calls returns how many times name was tracked in the frame in progress.
func Calls(name string) int {
	mu.Lock()
	defer mu.Unlock()
	return counts[name]
}

// SumWithPrefix adds up every bucket of the last frame whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	var total time.Duration
	for k, v := range Snapshot() {
		if strings.HasPrefix(k, prefix) {
			total += v
		}
	}
	return total
}

type entry struct {
	name string
	dur  time.Duration
}

// TopN formats the n slowest buckets of the last frame, e.g.
// "renderer.Render:4.2ms, carve.Displace:0.8ms".
func TopN(n int) string {
	snap := Snapshot()
	list := make([]entry, 0, len(snap))
	for k, v := range snap {
		list = append(list, entry{k, v})
	}
	slices.SortFunc(list, func(a, b entry) int {
		if a.dur != b.dur {
			if a.dur > b.dur {
				return -1
			}
			return 1
		}
		return strings.Compare(a.name, b.name)
	})
	n = min(n, len(list))

	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		parts = append(parts, e.name+":"+FormatMs(e.dur))
	}
	return strings.Join(parts, ", ")
}

// FormatMs prints d in milliseconds with one decimal, dropping ".0".
func FormatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
