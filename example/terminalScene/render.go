package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/feather2d"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// cell is a terminal position
type cell struct {
	x, y int
}

// viewport maps world units to terminal cells. World Y grows upward while
// rows grow downward, so the vertical axis is flipped. Cells are about twice
// as tall as wide, so one row covers twice the world height of one column.
type viewport struct {
	width, height int
	center        mgl64.Vec2
	scale         float64 // columns per world unit
}

func (v viewport) toScreen(p mgl64.Vec2) cell {
	offset := p.Sub(v.center)

	return cell{
		x: v.width/2 + int(math.Round(offset.X()*v.scale)),
		y: v.height/2 - int(math.Round(offset.Y()*v.scale/2)),
	}
}

// fit picks the scale showing a world area of the given half size
func (v *viewport) fit(halfSize mgl64.Vec2) {
	scaleX := float64(v.width) / (2 * halfSize.X())
	scaleY := float64(v.height) / halfSize.Y()
	v.scale = math.Min(scaleX, scaleY)
}

// line rasterizes the segment from a to b with Bresenham's algorithm
func line(a, b cell) []cell {
	dx := abs(b.x - a.x)
	dy := -abs(b.y - a.y)
	sx, sy := 1, 1
	if a.x > b.x {
		sx = -1
	}
	if a.y > b.y {
		sy = -1
	}

	cells := make([]cell, 0, max(dx, -dy)+1)
	err := dx + dy
	for {
		cells = append(cells, a)
		if a == b {
			return cells
		}

		e2 := 2 * err
		if e2 >= dy {
			err += dy
			a.x += sx
		}
		if e2 <= dx {
			err += dx
			a.y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type renderer struct {
	screen   tcell.Screen
	viewport viewport
}

func (r *renderer) resize() {
	r.viewport.width, r.viewport.height = r.screen.Size()
	r.viewport.fit(mgl64.Vec2{170, 120})
}

func (r *renderer) draw(world *feather2d.World, status string) {
	r.screen.Clear()

	staticStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	circleStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	boxStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	for _, body := range world.Bodies() {
		style := boxStyle
		switch {
		case body.IsStatic():
			style = staticStyle
		case body.IsCircle():
			style = circleStyle
		}

		vertices := body.RenderVertices()
		for i := range vertices {
			a := r.viewport.toScreen(vertices[i])
			b := r.viewport.toScreen(vertices[(i+1)%len(vertices)])
			for _, c := range line(a, b) {
				r.set(c, '█', style)
			}
		}
	}

	r.text(0, 0, status, tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true))
	r.screen.Show()
}

func (r *renderer) set(c cell, ch rune, style tcell.Style) {
	if c.x < 0 || c.y < 0 || c.x >= r.viewport.width || c.y >= r.viewport.height {
		return
	}
	r.screen.SetContent(c.x, c.y, ch, nil, style)
}

func (r *renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.set(cell{x + i, y}, ch, style)
	}
}

func statusLine(world *feather2d.World, impacts int, paused bool) string {
	state := "running"
	if paused {
		state = "paused"
	}

	return fmt.Sprintf(" frame %d | bodies %d | impacts %d | %s | space pause, r reset, esc quit ",
		world.Frame(), world.Len(), impacts, state)
}
