package geom

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the content so lines visibly extend past their
// intersections.
const drawPadding = 100

// Render draws the space's lines and their intersection points to a PNG at
// path. scale is pixels per unit. The viewport is fit to the intersection
// points (or the intercepts, if nothing intersects), and every line is drawn
// edge to edge across it.
func (s *Space2D) Render(path string, scale float64) error {
	if len(s.lines) == 0 {
		return errors.Wrap(ErrEmptyInput, "render empty space")
	}

	minX, minY, maxX, maxY := s.drawBounds()

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Extend each line past the viewport on both sides. The padding is in
	// device units, so convert it back to world units for the overshoot.
	overshoot := drawPadding / scale
	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	for _, l := range s.lines {
		x0 := minX - overshoot
		x1 := maxX + overshoot
		c.MoveTo(x0, l.At(x0))
		c.LineTo(x1, l.At(x1))
		c.Stroke()
	}

	c.SetRGB(0, 1, 0)
	for _, p := range s.Intersections() {
		c.DrawCircle(p.Component(0), p.Component(1), 4/scale)
		c.Fill()
	}

	return c.SavePNG(path)
}

// RenderTerminal renders the space to a temp file and cats it inline in the
// terminal (iTerm only). Debugging helper.
func (s *Space2D) RenderTerminal(scale float64) error {
	const path = "/tmp/geomspace.png"
	if err := s.Render(path, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}

// drawBounds fits the viewport to the intersection points, falling back to
// the y-intercepts around x=0 when no pair of lines intersects. Degenerate
// (zero-area) bounds are inflated so the context never has zero size.
func (s *Space2D) drawBounds() (minX, minY, maxX, maxY float64) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	points := s.Intersections()
	if len(points) == 0 {
		for _, l := range s.lines {
			minX = math.Min(minX, -1)
			maxX = math.Max(maxX, 1)
			minY = math.Min(minY, l.Intercept)
			maxY = math.Max(maxY, l.Intercept)
		}
	}
	for _, p := range points {
		minX = math.Min(minX, p.Component(0))
		minY = math.Min(minY, p.Component(1))
		maxX = math.Max(maxX, p.Component(0))
		maxY = math.Max(maxY, p.Component(1))
	}
	if minX == maxX {
		minX, maxX = minX-1, maxX+1
	}
	if minY == maxY {
		minY, maxY = minY-1, maxY+1
	}
	return minX, minY, maxX, maxY
}
