package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"torus-snake/ai"
	"torus-snake/game"
	"torus-snake/game/types"
	"torus-snake/ui"
)

func main() {
	speed := flag.Int("speed", 120, "Tick interval in milliseconds (lower = faster)")
	width := flag.Int("width", 800, "Screen width in pixels")
	height := flag.Int("height", 600, "Screen height in pixels")
	cell := flag.Int("cell", 20, "Cell size in pixels")
	agentMode := flag.Bool("agent", false, "Start under agent control")
	flag.Parse()

	grid := types.Grid{
		Width:  *width / *cell,
		Height: *height / *cell,
	}
	if grid.Width < 2 || grid.Height < 2 {
		log.Fatalf("screen %dx%d with cell size %d leaves no playable grid", *width, *height, *cell)
	}

	mode := game.ModeHuman
	if *agentMode {
		mode = game.ModeAgent
	}

	rl.InitWindow(int32(*width), int32(*height), "Torus Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer(*width, *height)
	defer renderer.Close()

	session := game.NewSession(grid, time.Duration(*speed)*time.Millisecond, mode)
	agent := ai.NewAgent()

	fmt.Println("torus snake - arrows to steer, tab to toggle agent mode, esc to quit")

	for !rl.WindowShouldClose() {
		in := ui.PollInput()
		if in.Quit {
			break
		}
		session.HandleInput(in)

		// One decision per frame; the tick gate below decides whether it
		// takes effect this frame.
		if session.Mode() == game.ModeAgent && !session.Over() {
			snake := session.Snake
			session.SetAgentDirection(agent.NextDirection(
				session.Grid, snake.Body(), snake.Heading(), session.Apple()))
		}

		session.Tick(time.Now())

		renderer.Draw(ui.Frame{
			Body:      session.Snake.Serialize(),
			Length:    int32(session.Snake.Len()),
			AppleX:    int32(session.Apple().X),
			AppleY:    int32(session.Apple().Y),
			GridW:     int32(grid.Width),
			GridH:     int32(grid.Height),
			CellSize:  int32(*cell),
			AgentMode: session.Mode() == game.ModeAgent,
		}, session.Score(), session.Over())
	}

	log.Println(session.Stats().Summary())
	fmt.Printf("final score: %d\n", session.Score())
}
