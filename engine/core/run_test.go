package core

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedWindow struct {
	polls    int
	closeAt  int
	fbW, fbH int
	cb       func(Event)
}

func (w *scriptedWindow) PollEvents() {
	w.polls++
	if w.polls == 1 && w.cb != nil {
		w.fbW, w.fbH = 640, 480
		w.cb(EventResize{W: 640, H: 480})
	}
}

func (w *scriptedWindow) SwapBuffers()                    {}
func (w *scriptedWindow) ShouldClose() bool               { return w.polls >= w.closeAt }
func (w *scriptedWindow) RequestClose()                   { w.closeAt = 0 }
func (w *scriptedWindow) FramebufferSize() (int, int)     { return w.fbW, w.fbH }
func (w *scriptedWindow) ScaleFactor() float64            { return 1 }
func (w *scriptedWindow) SetTitle(string)                 {}
func (w *scriptedWindow) SetEventCallback(cb func(Event)) { w.cb = cb }

type recordingRenderer struct {
	resizes [][2]int
	clears  [][4]float32
	shut    bool
}

func (r *recordingRenderer) Init() error                         { return nil }
func (r *recordingRenderer) Resize(w, h int)                     { r.resizes = append(r.resizes, [2]int{w, h}) }
func (r *recordingRenderer) Clear(cr, cg, cb, ca float32)        { r.clears = append(r.clears, [4]float32{cr, cg, cb, ca}) }
func (r *recordingRenderer) UpdateMesh([]Vertex, []uint16) error { return nil }
func (r *recordingRenderer) DrawMesh(int)                        {}
func (r *recordingRenderer) GPUVendor() string                   { return "test" }
func (r *recordingRenderer) GPURenderer() string                 { return "test" }
func (r *recordingRenderer) Shutdown()                           { r.shut = true }

type recordingApp struct {
	started, updates, renders, shutdowns int
	events                               []Event
}

func (a *recordingApp) OnStart(e *Engine)              { a.started++ }
func (a *recordingApp) OnUpdate(e *Engine, dt float64) { a.updates++ }
func (a *recordingApp) OnRender(e *Engine)             { a.renders++ }
func (a *recordingApp) OnEvent(e *Engine, ev Event)    { a.events = append(a.events, ev) }
func (a *recordingApp) OnShutdown(e *Engine)           { a.shutdowns++ }

func TestRunLoop(t *testing.T) {
	win := &scriptedWindow{closeAt: 3, fbW: 320, fbH: 240}
	rend := &recordingRenderer{}
	app := &recordingApp{}
	cfg := Config{Title: "test", ClearColor: [4]float32{0.1, 0.2, 0.3, 1}}

	err := Run(app, cfg,
		func(Config) (Window, error) { return win, nil },
		func(Window, Config) (Renderer, error) { return rend, nil })
	require.NoError(t, err)

	assert.Equal(t, 1, app.started)
	assert.Equal(t, 1, app.shutdowns)
	assert.Equal(t, 3, app.updates)
	assert.Equal(t, 3, app.renders)
	assert.Equal(t, 3, len(rend.clears))
	assert.Equal(t, []Event{EventResize{W: 640, H: 480}}, app.events)
	assert.Equal(t, [][2]int{{320, 240}, {640, 480}}, rend.resizes)
	require.NotEmpty(t, rend.clears)
	assert.Equal(t, cfg.ClearColor, rend.clears[0])
	assert.True(t, rend.shut)
}

func TestRunFactoryErrors(t *testing.T) {
	boom := errors.New("no display")
	err := Run(&recordingApp{}, Config{},
		func(Config) (Window, error) { return nil, boom },
		func(Window, Config) (Renderer, error) { return &recordingRenderer{}, nil })
	assert.ErrorIs(t, err, boom)

	err = Run(&recordingApp{}, Config{},
		func(Config) (Window, error) { return &scriptedWindow{}, nil },
		func(Window, Config) (Renderer, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("hello", "k", 1)
	assert.Contains(t, buf.String(), "msg=hello k=1")

	SetLogger(nil)
	buf.Reset()
	Logger().Error("dropped")
	assert.Empty(t, buf.String())
}
