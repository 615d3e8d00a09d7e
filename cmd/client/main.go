package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/labstack/gommon/log"

	"airport-control/internal/config"
	"airport-control/internal/game/aircraft"
	"airport-control/internal/game/airspace"
	"airport-control/internal/game/command"
	"airport-control/internal/game/simulation"
	"airport-control/internal/game/view"
	"airport-control/internal/ui"
	"airport-control/pkg/types"
)

const (
	screenWidth  = 1024
	screenHeight = 768

	airportWidth  = 150.0
	airportHeight = 90.0
	stripHeight   = 16
)

type Game struct {
	width, height int
	camera        *view.Camera
	sim           *simulation.Simulation

	selectedAircraftID types.AircraftID
	commandInput       *ui.TextInput
	status             string
}

func NewGame(sim *simulation.Simulation, width, height int) *Game {
	game := &Game{
		sim:    sim,
		camera: view.NewCamera(),
		width:  width,
		height: height,
		status: "Type LAND <callsign> <airport>, TAKEOFF <callsign> <airport>, WX <airport> SUNNY|STORMY or SPAWN",
	}

	game.commandInput = ui.NewTextInput(10, height-48, width/2, 30, func(cmd string) {
		game.parseAndExecuteCommand(cmd)
	})

	return game
}

func (g *Game) Update() error {
	dt := 1.0 / g.sim.TickRate
	g.sim.Update(dt)

	g.handleInput()
	g.commandInput.Update()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	for _, id := range g.sim.Airspace.IDs() {
		g.drawAirport(screen, g.sim.Airspace.Airports[id])
	}
	g.drawAirborne(screen)
	g.drawRadio(screen)
	g.drawUI(screen)
	ebitenutil.DebugPrint(screen, "FPS: "+strconv.FormatFloat(ebiten.ActualFPS(), 'f', 2, 64))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()

		if g.commandInput.IsClicked(x, y) {
			g.commandInput.IsActive = true
			return
		}
		g.commandInput.IsActive = false
		g.selectAt(x, y)
	}

	if g.commandInput.IsActive {
		return
	}

	// Quick keys act on the selected aircraft and the airport under the cursor.
	if g.selectedAircraftID != "" {
		if inpututil.IsKeyJustPressed(ebiten.KeyL) {
			if ap := g.airportAt(ebiten.CursorPosition()); ap != nil {
				g.execute(command.Command{Kind: command.LAND, Aircraft: g.selectedAircraftID, Airport: ap.ID})
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyT) {
			if ac, ok := g.sim.Aircrafts[g.selectedAircraftID]; ok && ac.Location != nil {
				g.execute(command.Command{Kind: command.TAKE_OFF, Aircraft: ac.ID, Airport: ac.Location.ID})
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		if ap := g.airportAt(ebiten.CursorPosition()); ap != nil {
			next := airspace.STORMY
			if ap.IsStormy() {
				next = airspace.SUNNY
			}
			g.execute(command.Command{Kind: command.WEATHER, Airport: ap.ID, Weather: next})
		}
	}

	cursor := cursorVec()
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.camera.Zoom(cursor, wy)
	}

	// Right button drags the radar.
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.camera.Grab(cursor)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.camera.Drag(cursor)
	}
}

func cursorVec() types.Vec2 {
	x, y := ebiten.CursorPosition()
	return types.NewVec2(float64(x), float64(y))
}

// selectAt selects the aircraft whose strip is under the cursor. Strips are
// drawn inside airports for landed aircraft and in the left column otherwise.
func (g *Game) selectAt(x, y int) {
	g.selectedAircraftID = ""
	clicked := types.NewVec2(float64(x), float64(y))

	for i, ac := range g.sim.Airborne() {
		if types.NewVec2(10, float64(40+i*stripHeight)).Contains(clicked, 120, stripHeight) {
			g.selectedAircraftID = ac.ID
		}
	}
	for _, id := range g.sim.Airspace.IDs() {
		ap := g.sim.Airspace.Airports[id]
		for i, acID := range ap.Parked() {
			strip := g.camera.WorldToScreen(types.NewVec2(ap.Position.X+5, ap.Position.Y+float64(36+i*stripHeight)))
			if strip.Contains(clicked, airportWidth*g.camera.Scale, stripHeight) {
				g.selectedAircraftID = acID
			}
		}
	}
	if g.selectedAircraftID != "" {
		log.Printf("Selected aircraft: %s", g.selectedAircraftID)
	}
}

func (g *Game) airportAt(x, y int) *airspace.Airport {
	world := g.camera.ScreenToWorld(types.NewVec2(float64(x), float64(y)))
	for _, id := range g.sim.Airspace.IDs() {
		ap := g.sim.Airspace.Airports[id]
		if ap.Position.Contains(world, airportWidth, airportHeight) {
			return ap
		}
	}
	return nil
}

func (g *Game) drawAirport(screen *ebiten.Image, ap *airspace.Airport) {
	pos := g.camera.WorldToScreen(ap.Position)
	sx, sy := pos.X, pos.Y
	w, h := float32(airportWidth*g.camera.Scale), float32(airportHeight*g.camera.Scale)

	fill := color.RGBA{0, 60, 0, 255}
	if ap.IsStormy() {
		fill = color.RGBA{90, 20, 20, 255}
	}
	vector.DrawFilledRect(screen, float32(sx), float32(sy), w, h, fill, false)

	border := color.RGBA{0, 255, 255, 255}
	if ap.IsFull() {
		border = color.RGBA{255, 160, 0, 255}
	}
	vector.StrokeRect(screen, float32(sx), float32(sy), w, h, 1, border, false)

	header := fmt.Sprintf("%s %s\n%d/%d", ap.ID, ap.Weather, ap.Len(), ap.Capacity)
	ebitenutil.DebugPrintAt(screen, header, int(sx)+5, int(sy)+2)

	for i, acID := range ap.Parked() {
		label := string(acID)
		if acID == g.selectedAircraftID {
			label = "> " + label
		}
		ebitenutil.DebugPrintAt(screen, label, int(sx)+5, int(sy)+36+i*stripHeight)
	}
}

func (g *Game) drawAirborne(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "AIRBORNE", 10, 24)
	for i, ac := range g.sim.Airborne() {
		y := 40 + i*stripHeight
		if ac.ID == g.selectedAircraftID {
			vector.StrokeRect(screen, 8, float32(y), 124, stripHeight, 1, color.White, false)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %s", ac.ID, aircraft.StateStringMap[ac.State]), 12, y)
	}
}

func (g *Game) drawRadio(screen *ebiten.Image) {
	msgs := g.sim.LastMessages(8)
	x := g.width/2 + 20
	y := g.height - 20 - len(msgs)*stripHeight
	for i, msg := range msgs {
		line := fmt.Sprintf("%s: %s", msg.Callsign, msg.Message)
		if msg.IsUrgent {
			line = "! " + line
		}
		ebitenutil.DebugPrintAt(screen, line, x, y+i*stripHeight)
	}
}

func (g *Game) drawUI(screen *ebiten.Image) {
	g.commandInput.Draw(screen)

	selectedAcText := "Selected: None"
	if g.selectedAircraftID != "" {
		selectedAcText = "Selected: " + string(g.selectedAircraftID)
	}
	ebitenutil.DebugPrintAt(screen, selectedAcText, 10, g.height-68)
	ebitenutil.DebugPrintAt(screen, g.status, 10, g.height-16)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Landings: %d  Take-offs: %d  Refused: %d", g.sim.Landings, g.sim.TakeOffs, g.sim.Refusals),
		g.width-300, 4)
}

func (g *Game) parseAndExecuteCommand(line string) {
	cmd, err := command.Parse(line, g.selectedAircraftID)
	if err != nil {
		g.status = err.Error()
		log.Printf("%v", err)
		return
	}
	g.execute(cmd)
}

func (g *Game) execute(cmd command.Command) {
	err := command.Execute(g.sim, cmd)

	var opErr *aircraft.OpError
	switch {
	case err == nil:
		g.status = "OK: " + cmd.String()
	case errors.As(err, &opErr):
		g.status = fmt.Sprintf("%s: %v", opErr.Aircraft, opErr)
	default:
		g.status = err.Error()
	}
}

func main() {
	cfg, err := config.Load(os.Getenv("ATC_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}
	cfg.ApplyLogging()

	sim, err := simulation.NewFromConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := sim.SpawnAircraft(); err != nil {
		log.Warnf("spawn: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Airport Control")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(NewGame(sim, screenWidth, screenHeight)); err != nil {
		log.Fatal(err)
	}
}
