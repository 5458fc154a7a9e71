//go:build profile

package profiler

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Enabled reports whether scopes are recorded in this build.
const Enabled = true

// -------- public API --------

// Init must be called once (e.g., on app start) with a capacity (#events).
// Example: profiler.Init(1 << 20) // ~1M scope events
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	evrb.init(capacity)
}

// Start begins a scope and returns an end func to be deferred.
func Start(name string) func() {
	if !evrb.ready.Load() {
		return func() {}
	}
	fid := intern(name)
	now := time.Now().UnixNano()
	evrb.push(evEntry{AtNS: now, FrameID: fid, Open: true})
	return func() {
		end := time.Now().UnixNano()
		if end < now {
			end = now
		}
		evrb.push(evEntry{AtNS: end, FrameID: fid, Open: false})
	}
}

// Dump writes the recorded scopes as a speedscope file and returns its
// path. An empty path writes to the temp directory.
func Dump(path string) (string, error) {
	evs := evrb.snapshot()
	if len(evs) == 0 {
		return "", errors.New("profiler: no events to dump")
	}
	if path == "" {
		path = filepath.Join(os.TempDir(), DefaultFile)
	}
	doc, err := buildSpeedscope(evs, frameNames())
	if err != nil {
		return "", err
	}
	if err := writeSpeedscope(doc, path); err != nil {
		return "", err
	}
	return path, nil
}

// ---------- event ring ----------

type evRing struct {
	ready atomic.Bool
	cap   uint64
	write atomic.Uint64
	evs   []evEntry
}

func (r *evRing) init(capacity int) {
	r.cap = uint64(capacity)
	r.evs = make([]evEntry, r.cap)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *evRing) push(e evEntry) {
	i := r.write.Add(1) - 1
	r.evs[i%r.cap] = e
}

// snapshot preserves write order; nothing is sorted later.
func (r *evRing) snapshot() []evEntry {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.cap {
		start = n - r.cap
	}
	out := make([]evEntry, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.cap])
	}
	return out
}

var evrb evRing

// ---------- string interner ----------

var (
	muFrames sync.Mutex
	frames   []string
	index    = map[string]int{}
)

func intern(name string) int {
	muFrames.Lock()
	defer muFrames.Unlock()
	if id, ok := index[name]; ok {
		return id
	}
	id := len(frames)
	index[name] = id
	frames = append(frames, name)
	return id
}

func frameNames() []string {
	muFrames.Lock()
	defer muFrames.Unlock()
	return append([]string(nil), frames...)
}
