package core

import (
	"image"
	"time"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)              // called once after window/renderer init
	OnUpdate(e *Engine, dt float64) // once per frame, dt in seconds since the previous one
	OnRender(e *Engine)             // after the clear, before the swap
	OnEvent(e *Engine, ev Event)    // input/window events
	OnShutdown(e *Engine)           // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window     Window
	Renderer   Renderer
	ClearColor [4]float32 // cleared to before every OnRender
	Frames     uint64     // frames presented so far
	start      time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	// ScaleFactor is the logical to physical pixel ratio of the monitor the
	// window is on.
	ScaleFactor() float64
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer is the GPU boundary. It receives whole vertex and index buffers
// and draws them; the previous contents are replaced on every UpdateMesh.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	UpdateMesh(vertices []Vertex, indices []uint16) error
	DrawMesh(indexCount int)
	GPUVendor() string
	GPURenderer() string
	Shutdown()
}

// Event model (can expand over time).
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

// EventResize carries the new framebuffer size in physical pixels.
type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

// EventScaleChanged is sent when the window moves to a monitor with a
// different logical to physical pixel ratio.
type EventScaleChanged struct{ Scale float64 }

func (EventScaleChanged) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyP
	KeyR
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for the engine run. Sizes are in logical pixels.
type Config struct {
	Title       string
	Width       int
	Height      int
	MinWidth    int
	MinHeight   int
	MaxWidth    int // 0 means unbounded
	MaxHeight   int // 0 means unbounded
	Resizable   bool
	AlwaysOnTop bool
	Icon        []image.Image
	VSync       bool
	ClearColor  [4]float32 // RGBA
}
