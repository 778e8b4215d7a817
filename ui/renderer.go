package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer owns the window-side texture the rasterized frame is blitted to,
// plus the text overlay. From the core's point of view Draw is a blocking
// call: the simulation does not proceed until the frame is on screen.
type Renderer struct {
	raster  *Rasterizer
	texture rl.Texture2D
}

// NewRenderer must be called after rl.InitWindow.
func NewRenderer(screenWidth, screenHeight int) *Renderer {
	img := rl.GenImageColor(screenWidth, screenHeight, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	return &Renderer{
		raster:  NewRasterizer(screenWidth, screenHeight),
		texture: texture,
	}
}

// Draw rasterizes the frame, uploads the pixel buffer and overlays the HUD.
func (r *Renderer) Draw(f Frame, score int, over bool) {
	pixels := r.raster.Rasterize(f)
	rl.UpdateTexture(r.texture, pixels)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTexture(r.texture, 0, 0, rl.White)

	mode := "human"
	if f.AgentMode {
		mode = "agent"
	}
	rl.DrawText(fmt.Sprintf("score %d  [%s]", score, mode), 10, 10, 20, rl.RayWhite)

	if over {
		w, h := r.raster.Size()
		text := "game over"
		width := rl.MeasureText(text, 30)
		rl.DrawText(text, (int32(w)-width)/2, int32(h)/2, 30, rl.Yellow)
	}
	rl.EndDrawing()
}

// Close releases the GPU texture.
func (r *Renderer) Close() {
	rl.UnloadTexture(r.texture)
}
