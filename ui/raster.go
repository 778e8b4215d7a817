package ui

import (
	"image/color"
)

// Frame is the draw request handed to the rasterizer: the serialized snake
// body as flat x,y pairs plus its segment count, the apple cell, the grid
// geometry and the control-mode flag that selects the snake color.
type Frame struct {
	Body      []int32
	Length    int32
	AppleX    int32
	AppleY    int32
	GridW     int32
	GridH     int32
	CellSize  int32
	AgentMode bool
}

var (
	colorBackground = color.RGBA{R: 0, G: 102, B: 0, A: 255}
	colorApple      = color.RGBA{R: 229, G: 0, B: 0, A: 255}
	colorSnake      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorAgentSnake = color.RGBA{R: 16, G: 32, B: 160, A: 255}
)

// Rasterizer fills a screen-sized pixel buffer from a Frame. It reproduces
// the per-pixel shading of the original compute kernel in software: every
// pixel maps to a grid cell, apple wins over snake, everything else is
// background. The buffer is reused across frames.
type Rasterizer struct {
	width  int
	height int
	pixels []color.RGBA
}

// NewRasterizer allocates a buffer for a width x height pixel output.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		pixels: make([]color.RGBA, width*height),
	}
}

// Rasterize renders the frame and returns the pixel buffer in row-major
// order. The returned slice aliases the rasterizer's internal buffer and is
// valid until the next call.
func (r *Rasterizer) Rasterize(f Frame) []color.RGBA {
	// Cell occupancy per grid cell; tiny compared to the pixel loop.
	occupied := make(map[[2]int32]bool, f.Length)
	for i := int32(0); i < f.Length; i++ {
		occupied[[2]int32{f.Body[i*2], f.Body[i*2+1]}] = true
	}

	snakeColor := colorSnake
	if f.AgentMode {
		snakeColor = colorAgentSnake
	}

	for y := 0; y < r.height; y++ {
		gy := int32(y) / f.CellSize
		for x := 0; x < r.width; x++ {
			gx := int32(x) / f.CellSize

			c := colorBackground
			if gx == f.AppleX && gy == f.AppleY {
				c = colorApple
			} else if occupied[[2]int32{gx, gy}] {
				c = snakeColor
			}
			r.pixels[y*r.width+x] = c
		}
	}
	return r.pixels
}

// Size returns the output dimensions in pixels.
func (r *Rasterizer) Size() (int, int) {
	return r.width, r.height
}
