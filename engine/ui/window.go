package ui

import (
	"image"
	"math"

	"github.com/hubastard/trellis/engine/core"
	"github.com/hubastard/trellis/engine/profiler"
	"github.com/hubastard/trellis/engine/units"
)

// Window is the root container. It is the rendering surface rather than a
// mesh: it supplies the surface size and device scale to the flattening
// pass and its remaining properties go to the windowing system.
//
// A mutable window is created with defaults and customized with setters.
type Window struct {
	Common[*Window]
	title       string
	minSize     units.Size
	maxSize     units.Size
	resizable   bool
	alwaysOnTop bool
	icon        []image.Image
	scale       float64
}

var (
	_ WindowWidget = (*Window)(nil)
	_ Parent       = (*Window)(nil)
)

func NewWindow() *Window {
	w := &Window{
		title:     "Form1",
		minSize:   units.LogicalSize(100, 100),
		maxSize:   units.LogicalSize(800, 800),
		resizable: true,
		scale:     1,
	}
	w.Common = NewCommon(w)
	w.base.size = units.DefaultSize()
	return w
}

// IsRendered is false: the window is the surface, not a mesh on it.
func (w *Window) IsRendered() bool { return false }

func (w *Window) SetMinSize(size units.Size)        { w.minSize = size }
func (w *Window) SetMaxSize(size units.Size)        { w.maxSize = size }
func (w *Window) SetTitle(title string)             { w.title = title }
func (w *Window) SetResizable(resizable bool)       { w.resizable = resizable }
func (w *Window) SetAlwaysOnTop(alwaysOnTop bool)   { w.alwaysOnTop = alwaysOnTop }
func (w *Window) SetWindowIcon(icon ...image.Image) { w.icon = icon }

func (w *Window) Title() string           { return w.title }
func (w *Window) MinSize() units.Size     { return w.minSize }
func (w *Window) MaxSize() units.Size     { return w.maxSize }
func (w *Window) Resizable() bool         { return w.resizable }
func (w *Window) AlwaysOnTop() bool       { return w.alwaysOnTop }
func (w *Window) Icon() []image.Image     { return w.icon }
func (w *Window) ScaleFactor() float64    { return w.scale }
func (w *Window) SurfaceSize() units.Size { return w.base.size }

// SetScaleFactor stores the logical to physical pixel ratio. Non-positive
// or non-finite values are rejected and the previous scale is kept.
func (w *Window) SetScaleFactor(scale float64) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		core.Logger().Warn("ui: ignoring invalid scale factor", "scale", scale)
		return
	}
	w.scale = scale
}

// Resize records a new surface size reported in physical pixels. The
// window keeps its size in logical pixels; children are not touched.
func (w *Window) Resize(physical units.Size) {
	w.base.size = physical.ToLogical(w.scale)
}

// Frame is the geometry context for the window's direct children.
func (w *Window) Frame() Frame {
	return Frame{
		Surface: w.base.size.ToLogical(w.scale),
		Origin:  units.LogicalPosition(0, 0),
		Scale:   w.scale,
	}
}

// Mesh flattens the whole tree into fresh vertex and index buffers.
func (w *Window) Mesh() (Mesh, error) {
	defer profiler.Start("ui.Window.Mesh")()
	m, err := Flatten(w.base.children, w.Frame())
	if err != nil {
		return Mesh{}, err
	}
	core.Logger().Debug("ui: mesh built", "vertices", len(m.Vertices), "indices", len(m.Indices))
	return m, nil
}

// Config describes the window for the windowing system. Sizes are
// rounded to whole logical pixels.
func (w *Window) Config() core.Config {
	px := func(l units.Length) int { return int(l.LogicalLength(w.scale)) }
	return core.Config{
		Title:       w.title,
		Width:       px(w.base.size.Width),
		Height:      px(w.base.size.Height),
		MinWidth:    px(w.minSize.Width),
		MinHeight:   px(w.minSize.Height),
		MaxWidth:    px(w.maxSize.Width),
		MaxHeight:   px(w.maxSize.Height),
		Resizable:   w.resizable,
		AlwaysOnTop: w.alwaysOnTop,
		Icon:        w.icon,
		VSync:       true,
		ClearColor:  w.base.color,
	}
}
