// Package config loads widget trees from TOML layout files and watches
// them for changes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/hubastard/trellis/engine/assets"
	"github.com/hubastard/trellis/engine/colors"
	"github.com/hubastard/trellis/engine/geom"
	"github.com/hubastard/trellis/engine/ui"
	"github.com/hubastard/trellis/engine/units"
)

var ErrInvalidLayout = errors.New("config: invalid layout")

// File is a parsed layout file. Numbers are logical pixels; omitted
// values keep the widget defaults.
type File struct {
	Window WindowSection `toml:"window"`

	// dir resolves relative paths (the icon) against the file's location.
	dir string
}

type WindowSection struct {
	Title       string          `toml:"title"`
	Width       *float64        `toml:"width"`
	Height      *float64        `toml:"height"`
	MinWidth    *float64        `toml:"min_width"`
	MinHeight   *float64        `toml:"min_height"`
	MaxWidth    *float64        `toml:"max_width"`
	MaxHeight   *float64        `toml:"max_height"`
	Resizable   *bool           `toml:"resizable"`
	AlwaysOnTop bool            `toml:"always_on_top"`
	Icon        string          `toml:"icon"`
	Background  string          `toml:"background"`
	Buttons     []ButtonSection `toml:"buttons"`
}

type ButtonSection struct {
	X       float64         `toml:"x"`
	Y       float64         `toml:"y"`
	Width   *float64        `toml:"width"`
	Height  *float64        `toml:"height"`
	Radius  *float64        `toml:"radius"`
	Fascets *int            `toml:"fascets"`
	Color   string          `toml:"color"`
	Hidden  bool            `toml:"hidden"`
	Buttons []ButtonSection `toml:"buttons"`
}

// Load reads and parses the layout file at path.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load layout %q: %w", path, err)
	}
	f, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("load layout %q: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// Parse decodes a layout document. Unknown keys are rejected so typos do
// not silently fall back to defaults.
func Parse(data []byte) (*File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %s", ErrInvalidLayout, row, col, derr.Error())
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidLayout, err)
	}
	return &f, nil
}

// Build creates the widget tree described by f.
func (f *File) Build() (*ui.Window, error) {
	ws := f.Window
	w := ui.NewWindow()
	if ws.Title != "" {
		w.SetTitle(ws.Title)
	}
	w.SetSize(size(w.Node().Size(), ws.Width, ws.Height))
	w.SetMinSize(size(w.MinSize(), ws.MinWidth, ws.MinHeight))
	w.SetMaxSize(size(w.MaxSize(), ws.MaxWidth, ws.MaxHeight))
	if ws.Resizable != nil {
		w.SetResizable(*ws.Resizable)
	}
	w.SetAlwaysOnTop(ws.AlwaysOnTop)
	if ws.Background != "" {
		c, err := colors.Hex(ws.Background)
		if err != nil {
			return nil, fmt.Errorf("%w: window background: %w", ErrInvalidLayout, err)
		}
		w.SetBackgroundColor(c)
	}
	if ws.Icon != "" {
		path := ws.Icon
		if !filepath.IsAbs(path) {
			path = filepath.Join(f.dir, path)
		}
		icon, err := assets.LoadIcon(path)
		if err != nil {
			return nil, err
		}
		w.SetWindowIcon(icon...)
	}

	for i, bs := range ws.Buttons {
		b, err := bs.build(fmt.Sprintf("window.buttons[%d]", i))
		if err != nil {
			return nil, err
		}
		w.AddChild(b)
	}
	return w, nil
}

func (bs ButtonSection) build(at string) (*ui.Button, error) {
	b := ui.NewButton().Position(bs.X, bs.Y).Visible(!bs.Hidden)
	b.SetSize(size(b.Node().Size(), bs.Width, bs.Height))
	if bs.Radius != nil {
		b.Radius(*bs.Radius)
	}
	if bs.Fascets != nil {
		if n := *bs.Fascets; n < geom.MinFascets || n > geom.MaxFascets {
			return nil, fmt.Errorf("%w: %s fascets %d outside [%d, %d]",
				ErrInvalidLayout, at, n, geom.MinFascets, geom.MaxFascets)
		}
		b.Fascets(*bs.Fascets)
	}
	if bs.Color != "" {
		c, err := colors.Hex(bs.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: %s color: %w", ErrInvalidLayout, at, err)
		}
		b.SetBackgroundColor(c)
	}
	for i, cs := range bs.Buttons {
		child, err := cs.build(fmt.Sprintf("%s.buttons[%d]", at, i))
		if err != nil {
			return nil, err
		}
		b.AddChild(child)
	}
	return b, nil
}

// size overrides the dimensions of def that are set.
func size(def units.Size, w, h *float64) units.Size {
	if w != nil {
		def.Width = units.FromLogicalPixels(*w)
	}
	if h != nil {
		def.Height = units.FromLogicalPixels(*h)
	}
	return def
}
