package pickup

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// Point is a position on the signature pad, in pad cells.
type Point struct {
	X, Y int
}

// Pad is a freehand drawing surface made of strokes. A stroke with a single point is a dot.
type Pad struct {
	width, height int
	strokes       [][]Point
	penDown       bool
}

// NewPad creates an empty pad of the given size in cells.
func NewPad(width, height int) *Pad {
	return &Pad{width: width, height: height}
}

// Width returns the pad width in cells.
func (p *Pad) Width() int {
	return p.width
}

// Height returns the pad height in cells.
func (p *Pad) Height() int {
	return p.height
}

// PenDown starts a new stroke at pt.
func (p *Pad) PenDown(pt Point) {
	pt = p.clamp(pt)
	p.strokes = append(p.strokes, []Point{pt})
	p.penDown = true
}

// MoveTo extends the current stroke when the pen is down.
func (p *Pad) MoveTo(pt Point) {
	if !p.penDown || len(p.strokes) == 0 {
		return
	}
	last := len(p.strokes) - 1
	p.strokes[last] = append(p.strokes[last], p.clamp(pt))
}

// PenUp ends the current stroke.
func (p *Pad) PenUp() {
	p.penDown = false
}

// IsPenDown reports whether a stroke is in progress.
func (p *Pad) IsPenDown() bool {
	return p.penDown
}

// Clear resets the pad to empty.
func (p *Pad) Clear() {
	p.strokes = nil
	p.penDown = false
}

// IsEmpty reports whether nothing has been drawn.
func (p *Pad) IsEmpty() bool {
	return len(p.strokes) == 0
}

// Inked reports whether any stroke passes through pt.
func (p *Pad) Inked(pt Point) bool {
	for _, stroke := range p.strokes {
		for i := range stroke {
			if i == 0 {
				if stroke[0] == pt {
					return true
				}
				continue
			}
			if onSegment(stroke[i-1], stroke[i], pt) {
				return true
			}
		}
	}
	return false
}

// Render draws the strokes as black lines on white, scale pixels per cell.
func (p *Pad) Render(scale int) (Image, error) {
	if p.IsEmpty() {
		return Image{}, ErrEmptyImage
	}
	if scale < 1 {
		scale = 1
	}

	img := image.NewGray(image.Rect(0, 0, p.width*scale, p.height*scale))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			if !p.Inked(Point{X: x, Y: y}) {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetGray(x*scale+dx, y*scale+dy, color.Gray{Y: 0})
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Image{}, err
	}
	return Image{Data: buf.Bytes(), ContentType: "image/png"}, nil
}

func (p *Pad) clamp(pt Point) Point {
	pt.X = min(max(pt.X, 0), p.width-1)
	pt.Y = min(max(pt.Y, 0), p.height-1)
	return pt
}

// onSegment walks the cells between a and b with Bresenham's algorithm.
func onSegment(a, b, pt Point) bool {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	e := dx + dy
	for {
		if a == pt {
			return true
		}
		if a == b {
			return false
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			a.X += sx
		}
		if e2 <= dx {
			e += dx
			a.Y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
