package profiler

import (
	"encoding/json"
	"errors"
	"os"
	"runtime"
)

// DefaultFile is the file name Dump uses when no path is given.
const DefaultFile = "trellis.profile.speedscope.json"

type evEntry struct {
	AtNS    int64
	FrameID int
	Open    bool
}

// ---------- speedscope dump from EVENTS ----------

type ssFile struct {
	Schema             string      `json:"$schema"`
	Shared             ssShared    `json:"shared"`
	Profiles           []ssProfile `json:"profiles"`
	ActiveProfileIndex int         `json:"activeProfileIndex"`
	Exporter           string      `json:"exporter,omitempty"`
	Name               string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"` // "evented"
	Name       string    `json:"name"`
	Unit       string    `json:"unit"` // "microseconds"
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"`  // "O" or "C"
	At    int64  `json:"at"`    // µs since first event
	Frame int    `json:"frame"` // frame index
}

// buildSpeedscope turns events in write order into a balanced evented
// profile. Mismatched closes are dropped and scopes still open at the end
// are closed at the last timestamp.
func buildSpeedscope(evs []evEntry, names []string) (ssFile, error) {
	if len(evs) == 0 {
		return ssFile{}, errors.New("profiler: no events")
	}
	fs := make([]ssFrame, len(names))
	for i, name := range names {
		fs[i] = ssFrame{Name: name}
	}

	base := evs[0].AtNS
	endUS := int64(0)
	out := make([]ssEvent, 0, len(evs)+16)
	stack := make([]int, 0, 64)
	lastUS := int64(0)

	for _, e := range evs {
		// the ring may have overwritten the oldest opens
		if e.FrameID < 0 || e.FrameID >= len(names) {
			continue
		}
		atUS := (e.AtNS - base) / 1000
		if atUS < lastUS {
			atUS = lastUS
		}

		if e.Open {
			out = append(out, ssEvent{Type: "O", At: atUS, Frame: e.FrameID})
			stack = append(stack, e.FrameID)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.FrameID {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: atUS, Frame: e.FrameID})
		}

		lastUS = atUS
		endUS = max(endUS, atUS)
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: lastUS, Frame: stack[i]})
	}

	if len(out) == 0 {
		return ssFile{}, errors.New("profiler: no usable events after filtering")
	}

	return ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: fs},
		Profiles: []ssProfile{{
			Type:       "evented",
			Name:       "trellis (evented)",
			Unit:       "microseconds",
			StartValue: 0,
			EndValue:   endUS,
			Events:     out,
		}},
		Exporter: "trellis-profiler",
		Name:     "trellis capture",
	}, nil
}

// writeSpeedscope writes doc to a temp file next to path and renames it
// into place.
func writeSpeedscope(doc ssFile, path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// MemoryUsage returns the bytes of allocated heap objects.
func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func NumGoroutine() int {
	return runtime.NumGoroutine()
}
