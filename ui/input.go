package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"torus-snake/game"
	"torus-snake/game/types"
)

// PollInput snapshots the keyboard once per frame. Direction keys are level
// sensitive like the original window polling; the mode toggle uses
// IsKeyPressed so it fires exactly once per press.
func PollInput() game.InputFrame {
	var in game.InputFrame

	if rl.IsKeyDown(rl.KeyEscape) || rl.IsKeyPressed(rl.KeyQ) {
		in.Quit = true
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		in.ToggleMode = true
	}

	switch {
	case rl.IsKeyDown(rl.KeyUp):
		in.Direction, in.HasDirection = types.Up, true
	case rl.IsKeyDown(rl.KeyDown):
		in.Direction, in.HasDirection = types.Down, true
	case rl.IsKeyDown(rl.KeyLeft):
		in.Direction, in.HasDirection = types.Left, true
	case rl.IsKeyDown(rl.KeyRight):
		in.Direction, in.HasDirection = types.Right, true
	}

	return in
}
