package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/hubastard/trellis/engine/config"
	"github.com/hubastard/trellis/engine/core"
	glbackend "github.com/hubastard/trellis/engine/gfx/gl"
	"github.com/hubastard/trellis/engine/platform"
	"github.com/hubastard/trellis/engine/profiler"
	"github.com/hubastard/trellis/engine/ui"
)

var (
	layoutPath  = flag.String("config", "", "TOML layout file; reloaded when it changes")
	verbose     = flag.Bool("v", false, "log per-frame debug output")
	vsync       = flag.Bool("vsync", true, "wait for vertical sync")
	profilePath = flag.String("profile", "", "speedscope output for Ctrl+P (default: temp dir)")
)

// Sandbox shows a widget tree and swaps it whenever the layout file is
// saved.
type Sandbox struct {
	*ui.App
	watcher *config.Watcher
}

func (s *Sandbox) OnUpdate(e *core.Engine, dt float64) {
	if s.watcher == nil {
		return
	}
	select {
	case <-s.watcher.Changes():
		s.reload(e)
	default:
	}
}

func (s *Sandbox) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Mods&core.ModCtrl != 0 {
		switch k.Key {
		case core.KeyP:
			s.dumpProfile(e)
			return
		case core.KeyR:
			s.reload(e)
			return
		}
	}
	s.App.OnEvent(e, ev)
}

func (s *Sandbox) reload(e *core.Engine) {
	if *layoutPath == "" {
		return
	}
	w, err := loadLayout(*layoutPath)
	if err != nil {
		// keep showing the last good tree
		core.Logger().Warn("layout reload failed", "path", *layoutPath, "err", err)
		return
	}
	s.SetWindow(w)
	e.Window.SetTitle(w.Title())
	core.Logger().Info("layout reloaded", "path", *layoutPath, "widgets", w.ChildrenLen())
}

func (s *Sandbox) dumpProfile(e *core.Engine) {
	st := s.Stats()
	core.Logger().Info("frame stats",
		"draw_calls", st.DrawCalls, "vertices", st.VertexCount, "triangles", st.TriangleCount(),
		"heap_bytes", profiler.MemoryUsage(), "goroutines", profiler.NumGoroutine(),
		"gpu", e.Renderer.GPURenderer(), "uptime", e.Uptime())
	if !profiler.Enabled {
		core.Logger().Info("scopes are not recorded; build with -tags profile")
		return
	}
	path, err := profiler.Dump(*profilePath)
	if err != nil {
		core.Logger().Warn("profile dump failed", "err", err)
		return
	}
	core.Logger().Info("profile written", "path", path)
}

func loadLayout(path string) (*ui.Window, error) {
	f, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return f.Build()
}

func run() error {
	profiler.Init(1 << 16)

	win := demoWindow()
	sb := &Sandbox{}
	if *layoutPath != "" {
		var err error
		if win, err = loadLayout(*layoutPath); err != nil {
			return err
		}
		if sb.watcher, err = config.Watch(*layoutPath); err != nil {
			return err
		}
		defer sb.watcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go sb.watcher.Run(ctx)
	}
	sb.App = ui.NewApp(win)

	cfg := win.Config()
	cfg.VSync = *vsync

	var glfwWin *platform.GLFWWindow
	defer func() {
		if glfwWin != nil {
			glfwWin.Destroy()
		}
	}()
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg, nil)
		if err != nil {
			return nil, err
		}
		glfwWin = w
		return w, nil
	}

	return core.Run(sb, cfg, newWindow, glbackend.NewRendererGL)
}

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(); err != nil {
		core.Logger().Error("sandbox failed", "err", err)
		os.Exit(1)
	}
}
