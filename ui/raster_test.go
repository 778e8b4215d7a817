package ui

import (
	"testing"
)

func testFrame(agent bool) Frame {
	return Frame{
		Body:      []int32{2, 1, 1, 1, 0, 1}, // head (2,1), then (1,1), (0,1)
		Length:    3,
		AppleX:    5,
		AppleY:    0,
		GridW:     8,
		GridH:     6,
		CellSize:  10,
		AgentMode: agent,
	}
}

func TestRasterizeCellColors(t *testing.T) {
	r := NewRasterizer(80, 60)
	pixels := r.Rasterize(testFrame(false))

	if len(pixels) != 80*60 {
		t.Fatalf("pixel buffer size = %d, want %d", len(pixels), 80*60)
	}

	at := func(px, py int) [3]uint8 {
		c := pixels[py*80+px]
		return [3]uint8{c.R, c.G, c.B}
	}

	// Center of grid cell (5,0): apple.
	if got := at(55, 5); got != [3]uint8{colorApple.R, colorApple.G, colorApple.B} {
		t.Errorf("apple cell pixel = %v", got)
	}
	// Center of head cell (2,1): snake.
	if got := at(25, 15); got != [3]uint8{colorSnake.R, colorSnake.G, colorSnake.B} {
		t.Errorf("snake cell pixel = %v", got)
	}
	// An empty cell: background.
	if got := at(75, 55); got != [3]uint8{colorBackground.R, colorBackground.G, colorBackground.B} {
		t.Errorf("background pixel = %v", got)
	}
}

func TestRasterizeCellBoundaries(t *testing.T) {
	r := NewRasterizer(80, 60)
	pixels := r.Rasterize(testFrame(false))

	// Every pixel of the head cell (2,1) is snake colored, first and last
	// included.
	for py := 10; py < 20; py++ {
		for px := 20; px < 30; px++ {
			c := pixels[py*80+px]
			if c != colorSnake {
				t.Fatalf("pixel (%d,%d) = %v inside the head cell", px, py, c)
			}
		}
	}
	// The pixel one past the cell edge is background.
	if pixels[10*80+30] != colorBackground {
		t.Error("pixel just outside the head cell is not background")
	}
}

func TestRasterizeModeColor(t *testing.T) {
	r := NewRasterizer(80, 60)

	human := r.Rasterize(testFrame(false))[15*80+25]
	if human != colorSnake {
		t.Errorf("human-mode snake pixel = %v", human)
	}

	agent := r.Rasterize(testFrame(true))[15*80+25]
	if agent != colorAgentSnake {
		t.Errorf("agent-mode snake pixel = %v", agent)
	}
	if human == agent {
		t.Error("mode flag does not change the snake color")
	}
}

func TestRasterizeAppleWinsOverSnake(t *testing.T) {
	f := testFrame(false)
	f.AppleX, f.AppleY = 2, 1 // same cell as the head

	r := NewRasterizer(80, 60)
	if got := r.Rasterize(f)[15*80+25]; got != colorApple {
		t.Errorf("overlap pixel = %v, want apple color", got)
	}
}
