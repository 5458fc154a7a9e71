package ui

import (
	"github.com/hubastard/trellis/engine/core"
	"github.com/hubastard/trellis/engine/gfx/renderer2d"
	"github.com/hubastard/trellis/engine/units"
)

// App drives a widget tree from the engine loop: it keeps the window in
// sync with the surface and re-uploads the flattened mesh every frame.
type App struct {
	window  *Window
	r2d     *renderer2d.Renderer2D
	lastErr string
}

var _ core.App = (*App)(nil)

func NewApp(w *Window) *App { return &App{window: w} }

func (a *App) Window() *Window { return a.window }

// SetWindow swaps the tree being drawn. The new window inherits the current
// surface size and scale, which belong to the platform window.
func (a *App) SetWindow(w *Window) {
	if a.window != nil {
		w.SetScaleFactor(a.window.ScaleFactor())
		w.base.size = a.window.SurfaceSize()
	}
	a.window = w
	a.lastErr = ""
}

// Stats reports the batching counters of the last rendered frame.
func (a *App) Stats() renderer2d.Statistics {
	if a.r2d == nil {
		return renderer2d.Statistics{}
	}
	return a.r2d.Stats()
}

func (a *App) OnStart(e *core.Engine) {
	a.r2d = renderer2d.New(e.Renderer, MaxVertices)
	a.syncSurface(e)
	e.ClearColor = a.window.Node().Color()
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {}

func (a *App) OnRender(e *core.Engine) {
	e.ClearColor = a.window.Node().Color()

	m, err := a.window.Mesh()
	if err != nil {
		a.report(err)
		return
	}
	a.r2d.BeginScene()
	if err := a.r2d.Submit(m.Vertices, m.Indices); err != nil {
		a.report(err)
		return
	}
	if err := a.r2d.EndScene(); err != nil {
		a.report(err)
		return
	}
	a.lastErr = ""
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	switch ev := ev.(type) {
	case core.EventResize:
		if ev.W < 1 || ev.H < 1 {
			return
		}
		a.window.Resize(units.PhysicalSize(float64(ev.W), float64(ev.H)))
	case core.EventScaleChanged:
		a.window.SetScaleFactor(ev.Scale)
		a.syncSurface(e)
	case core.EventKey:
		if ev.Down && ev.Key == core.KeyEscape {
			e.Window.RequestClose()
		}
	}
}

func (a *App) OnShutdown(e *core.Engine) {}

func (a *App) syncSurface(e *core.Engine) {
	a.window.SetScaleFactor(e.Window.ScaleFactor())
	w, h := e.Window.FramebufferSize()
	if w < 1 || h < 1 {
		return
	}
	a.window.Resize(units.PhysicalSize(float64(w), float64(h)))
}

// report logs a frame error once until it changes or a frame succeeds.
func (a *App) report(err error) {
	if msg := err.Error(); msg != a.lastErr {
		core.Logger().Error("ui: frame skipped", "err", err)
		a.lastErr = msg
	}
}
