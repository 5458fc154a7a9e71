package ui

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/trellis/engine/colors"
	"github.com/hubastard/trellis/engine/units"
)

const eps = 1e-5

func TestNewButtonDefaults(t *testing.T) {
	b := NewButton()
	assert.True(t, b.Node().Size().Equal(units.LogicalSize(200, 100)))
	assert.True(t, b.CornerRadius().Equal(units.FromLogicalPixels(25)))
	assert.Equal(t, colors.Color{0.7, 0.1, 0.4, 1}, b.Node().Color())
	assert.True(t, b.Pos().X.IsZero())
	assert.True(t, b.Pos().Y.IsZero())
	assert.True(t, b.IsRendered())
	assert.Zero(t, b.ChildrenLen())
}

func TestButtonMesh(t *testing.T) {
	w := NewWindow().Add(NewButton())
	m, err := w.Mesh()
	require.NoError(t, err)

	require.Len(t, m.Vertices, 20)
	require.Len(t, m.Indices, 54)
	for _, idx := range m.Indices {
		assert.Less(t, int(idx), len(m.Vertices))
	}

	// outline starts at the top of the top-left corner
	first := m.Vertices[0]
	assert.InDelta(t, -0.9, first.Position[0], eps)
	assert.InDelta(t, 1.0, first.Position[1], eps)
	assert.Zero(t, first.Position[2])
	for _, v := range m.Vertices {
		assert.InDelta(t, 0.7, v.Color[0], eps)
		assert.InDelta(t, 0.1, v.Color[1], eps)
		assert.InDelta(t, 0.4, v.Color[2], eps)
	}
}

func TestSquareCornersButton(t *testing.T) {
	w := NewWindow().Add(NewButton().Radius(0))
	m, err := w.Mesh()
	require.NoError(t, err)

	require.Len(t, m.Vertices, 4)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, m.Indices)

	want := [][2]float32{{-1, 1}, {-1, 0.6}, {-0.2, 0.6}, {-0.2, 1}}
	for i, v := range m.Vertices {
		assert.InDelta(t, want[i][0], v.Position[0], eps, "x of vertex %d", i)
		assert.InDelta(t, want[i][1], v.Position[1], eps, "y of vertex %d", i)
	}
}

func TestNestedTreeIndices(t *testing.T) {
	grandchild := NewButton()
	child := NewButton().Add(grandchild)
	w := NewWindow().Add(
		NewButton().Add(child, NewButton()),
	)

	m, err := w.Mesh()
	require.NoError(t, err)
	require.Len(t, m.Vertices, 80)
	require.Len(t, m.Indices, 4*54)
	for _, idx := range m.Indices {
		assert.Less(t, int(idx), 80)
	}
	// depth-first: root, child, grandchild, sibling
	for node := 0; node < 4; node++ {
		assert.Equal(t, uint16(node*20), m.Indices[node*54], "first index of node %d", node)
	}
}

func TestChildrenArePlacedRelativeToParent(t *testing.T) {
	leaf := NewButton().Radius(0).Position(10, 20)
	w := NewWindow().Add(
		NewButton().Radius(0).Position(100, 50).Add(leaf),
	)

	m, err := w.Mesh()
	require.NoError(t, err)
	require.Len(t, m.Vertices, 8)

	// the leaf's top-left corner sits at (110, 70) on a 500x500 surface
	corner := m.Vertices[4].Position
	assert.InDelta(t, -0.56, corner[0], eps)
	assert.InDelta(t, 0.72, corner[1], eps)
}

func TestHiddenSubtreeIsSkipped(t *testing.T) {
	hidden := NewButton().Visible(false).Add(NewButton())
	w := NewWindow().Add(hidden, NewButton().Radius(0))

	m, err := w.Mesh()
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 4)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, m.Indices)
}

func TestResizeKeepsLogicalGeometry(t *testing.T) {
	b := NewButton().Position(40, 30)
	w := NewWindow().Add(b)

	sizes := []units.Size{
		units.PhysicalSize(800, 600),
		units.PhysicalSize(400, 300),
		units.PhysicalSize(1920, 1080),
	}
	var ref [][2]float64
	for _, s := range sizes {
		w.Resize(s)
		m, err := w.Mesh()
		require.NoError(t, err)
		require.Len(t, m.Vertices, 20)

		sw, sh := s.InLogical(w.ScaleFactor())
		got := make([][2]float64, len(m.Vertices))
		for i, v := range m.Vertices {
			// undo the clip mapping back to logical pixels
			got[i] = [2]float64{
				(float64(v.Position[0]) + 1) * sw / 2,
				(1 - float64(v.Position[1])) * sh / 2,
			}
		}
		if ref == nil {
			ref = got
			continue
		}
		for i := range got {
			assert.InDelta(t, ref[i][0], got[i][0], 1e-3)
			assert.InDelta(t, ref[i][1], got[i][1], 1e-3)
		}
	}

	assert.True(t, b.Pos().Equal(units.LogicalPosition(40, 30)))
	assert.True(t, b.Node().Size().Equal(units.LogicalSize(200, 100)))
}

func TestPhysicalButtonFollowsScale(t *testing.T) {
	b := NewButton()
	b.SetSize(units.PhysicalSize(200, 100))
	b.SetRadius(units.FromPhysicalPixels(0))
	b.SetPositionPhysical(100, 0)

	w := NewWindow().Add(b)
	w.SetScaleFactor(2)
	w.Resize(units.PhysicalSize(1000, 1000))
	assert.True(t, w.SurfaceSize().Equal(units.LogicalSize(500, 500)))

	m, err := w.Mesh()
	require.NoError(t, err)
	require.Len(t, m.Vertices, 4)
	// 100 physical pixels at scale 2 is 50 logical pixels
	assert.InDelta(t, -0.8, m.Vertices[0].Position[0], eps)
	// 200x100 physical is 100x50 logical
	assert.InDelta(t, -0.4, m.Vertices[2].Position[0], eps)
	assert.InDelta(t, 0.8, m.Vertices[2].Position[1], eps)
}

func TestPhysicalPositionOnLogicalButton(t *testing.T) {
	b := NewButton().Radius(0)
	b.SetPositionPhysical(100, 40)

	w := NewWindow().Add(b)
	w.SetScaleFactor(2)
	w.Resize(units.PhysicalSize(1000, 1000))

	m, err := w.Mesh()
	require.NoError(t, err)
	require.Len(t, m.Vertices, 4)
	// (100, 40) physical is (50, 20) logical on a 500x500 logical surface
	assert.InDelta(t, -0.8, m.Vertices[0].Position[0], eps)
	assert.InDelta(t, 0.92, m.Vertices[0].Position[1], eps)
	// 200x100 logical from there
	assert.InDelta(t, 0.0, m.Vertices[2].Position[0], eps)
	assert.InDelta(t, 0.52, m.Vertices[2].Position[1], eps)
}

func TestUnitMismatchIsReported(t *testing.T) {
	b := NewButton()
	b.SetRadius(units.FromPhysicalPixels(10))
	w := NewWindow().Add(b)

	_, err := w.Mesh()
	assert.ErrorIs(t, err, units.ErrUnitMismatch)
}

func TestHugeFascetsAreClamped(t *testing.T) {
	w := NewWindow().Add(NewButton().Fascets(math.MaxInt))
	assert.NotPanics(t, func() {
		m, err := w.Mesh()
		if err == nil {
			assert.LessOrEqual(t, len(m.Vertices), MaxVertices)
		}
	})
}

func TestIndexOffsetOverflow(t *testing.T) {
	b := NewButton()
	_, _, err := b.VerticesAndIndices(NewWindow().Frame(), MaxVertices-10)
	assert.ErrorIs(t, err, ErrTooManyVertices)

	vs, is, err := b.VerticesAndIndices(NewWindow().Frame(), 100)
	require.NoError(t, err)
	assert.Len(t, vs, 20)
	assert.Equal(t, uint16(100), is[0])
}

func TestEmptyButtonEmitsNothing(t *testing.T) {
	w := NewWindow().Add(NewButton().Size(0, 100))
	m, err := w.Mesh()
	require.NoError(t, err)
	assert.Empty(t, m.Vertices)
	assert.Empty(t, m.Indices)
}

func TestOwnership(t *testing.T) {
	a, b := NewButton(), NewButton()
	a.AddChild(b)
	assert.PanicsWithValue(t, "ui: widget already has a parent", func() {
		NewButton().AddChild(b)
	})
	assert.PanicsWithValue(t, "ui: adding a widget to its own subtree", func() {
		b.AddChild(a)
	})
	assert.PanicsWithValue(t, "ui: adding a widget to its own subtree", func() {
		a.AddChild(a)
	})
	assert.Equal(t, 1, a.ChildrenLen())
}

func TestWindowDefaults(t *testing.T) {
	w := NewWindow()
	assert.False(t, w.IsRendered())
	assert.Equal(t, "Form1", w.Title())
	assert.True(t, w.SurfaceSize().Equal(units.LogicalSize(500, 500)))
	assert.True(t, w.MinSize().Equal(units.LogicalSize(100, 100)))
	assert.True(t, w.MaxSize().Equal(units.LogicalSize(800, 800)))
	assert.True(t, w.Resizable())
	assert.False(t, w.AlwaysOnTop())
	assert.Equal(t, 1.0, w.ScaleFactor())

	cfg := w.Config()
	assert.Equal(t, "Form1", cfg.Title)
	assert.Equal(t, 500, cfg.Width)
	assert.Equal(t, 500, cfg.Height)
	assert.Equal(t, 100, cfg.MinWidth)
	assert.Equal(t, 800, cfg.MaxHeight)
	assert.True(t, cfg.VSync)
	assert.Equal(t, [4]float32(colors.Default), cfg.ClearColor)
}

func TestWindowSetters(t *testing.T) {
	w := NewWindow()
	w.SetTitle("Settings")
	w.SetAlwaysOnTop(true)
	w.SetResizable(false)
	w.SetMinSize(units.LogicalSize(50, 60))
	w.SetMaxSize(units.LogicalSize(0, 0))
	w.SetBackgroundColor(colors.Black)

	cfg := w.Config()
	assert.Equal(t, "Settings", cfg.Title)
	assert.True(t, cfg.AlwaysOnTop)
	assert.False(t, cfg.Resizable)
	assert.Equal(t, 50, cfg.MinWidth)
	assert.Equal(t, 60, cfg.MinHeight)
	assert.Zero(t, cfg.MaxWidth)
	assert.Equal(t, [4]float32(colors.Black), cfg.ClearColor)
}

func TestSetScaleFactorRejectsInvalid(t *testing.T) {
	w := NewWindow()
	w.SetScaleFactor(2)
	for _, s := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		w.SetScaleFactor(s)
		assert.Equal(t, 2.0, w.ScaleFactor(), "scale %v", s)
	}
}
