package main

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/katalvlaran/genpos/geom"
)

const (
	drawSize    = 512
	drawPadding = 24
	dotRadius   = 3
)

// renderPNG draws the point set as dots on a dark canvas, scaled to its
// bounding box with the origin at the bottom left, and saves it to path.
func renderPNG(pts []geom.Point, path string) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// A single point or a fully degenerate box still gets a canvas.
	spanX := maxX - minX
	spanY := maxY - minY
	if len(pts) == 0 || spanX <= 0 {
		spanX = 1
	}
	if len(pts) == 0 || spanY <= 0 {
		spanY = 1
	}
	scale := math.Min(drawSize/spanX, drawSize/spanY)

	width := int(scale*spanX) + drawPadding*2
	height := int(scale*spanY) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)

	c.SetRGB(0, 1, 1)
	for _, p := range pts {
		c.DrawCircle(scale*(p.X-minX), scale*(p.Y-minY), dotRadius)
		c.Fill()
	}

	return c.SavePNG(path)
}

// catPNG prints the rendered file inline for terminals that support the
// iTerm2 image protocol.
func catPNG(path string) {
	imgcat.CatFile(path, os.Stdout)
}
