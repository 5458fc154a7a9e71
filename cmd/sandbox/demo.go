package main

import (
	"github.com/hubastard/trellis/engine/colors"
	"github.com/hubastard/trellis/engine/ui"
)

// demoWindow is shown when no layout file is given.
func demoWindow() *ui.Window {
	w := ui.NewWindow()
	w.SetTitle("trellis sandbox")
	w.SetBackgroundColor(colors.DarkGray)

	return w.Add(
		ui.NewButton().Position(40, 40).Size(420, 180).Radius(24).Fascets(8).Add(
			ui.NewButton().Position(20, 20).Size(120, 60).Radius(12).Color(colors.Magenta),
			ui.NewButton().Position(160, 20).Size(120, 60).Radius(30).Color(colors.Yellow),
			ui.NewButton().Position(300, 20).Size(100, 140).Radius(0).Color(colors.Cyan).Add(
				ui.NewButton().Position(10, 10).Size(80, 80).Radius(40).Fascets(12).Color(colors.White),
			),
		),
		ui.NewButton().Position(40, 260).Size(200, 100),
		ui.NewButton().Position(260, 260).Size(200, 100).Color(colors.Blue).Radius(50),
	)
}
