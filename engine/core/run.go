package core

import (
	"runtime"
	"time"
)

// Run wires the platform window + renderer and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)
	Logger().Info("engine started",
		"title", cfg.Title, "framebuffer_w", w, "framebuffer_h", h,
		"scale", win.ScaleFactor(), "gpu", rend.GPURenderer())

	eng := &Engine{Window: win, Renderer: rend, ClearColor: cfg.ClearColor, start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		app.OnEvent(eng, ev)
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			rend.Resize(fw, fh)
		}
	})

	app.OnStart(eng)

	// Each redraw polls the platform, lets the app update, then repaints
	// the whole surface.
	prev := time.Now()
	for !win.ShouldClose() {
		win.PollEvents()

		now := time.Now()
		app.OnUpdate(eng, now.Sub(prev).Seconds())
		prev = now

		c := eng.ClearColor
		rend.Clear(c[0], c[1], c[2], c[3])
		app.OnRender(eng)

		win.SwapBuffers()
		eng.Frames++
	}

	app.OnShutdown(eng)
	Logger().Info("engine exit", "uptime", eng.Uptime(), "frames", eng.Frames)
	return nil
}
