package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const maxHistory = 20

type TextInput struct {
	Text     string
	Prompt   string
	IsActive bool
	X, Y     int
	Width    int
	Height   int
	OnSubmit func(string)

	history []string
	cursor  int // index into history while browsing, len(history) when not
}

func NewTextInput(x, y, width, height int, onSubmit func(string)) *TextInput {
	return &TextInput{
		Prompt:   "> ",
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
		OnSubmit: onSubmit,
	}
}

func (ti *TextInput) Update() {
	if !ti.IsActive {
		return
	}

	ti.Text += string(ebiten.AppendInputChars(nil))

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(ti.Text) > 0 {
		ti.Text = ti.Text[:len(ti.Text)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ti.browse(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ti.browse(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ti.Text = ""
		ti.IsActive = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ti.Submit()
	}
}

// Submit hands the trimmed text to OnSubmit, records it and clears the input.
func (ti *TextInput) Submit() {
	text := strings.TrimSpace(ti.Text)
	if text != "" {
		if ti.OnSubmit != nil {
			ti.OnSubmit(text)
		}
		ti.history = append(ti.history, text)
		if len(ti.history) > maxHistory {
			ti.history = ti.history[len(ti.history)-maxHistory:]
		}
	}
	ti.cursor = len(ti.history)
	ti.Text = ""
	ti.IsActive = false
}

func (ti *TextInput) browse(step int) {
	if len(ti.history) == 0 {
		return
	}
	ti.cursor += step
	if ti.cursor < 0 {
		ti.cursor = 0
	}
	if ti.cursor >= len(ti.history) {
		ti.cursor = len(ti.history)
		ti.Text = ""
		return
	}
	ti.Text = ti.history[ti.cursor]
}

func (ti *TextInput) Draw(screen *ebiten.Image) {
	x, y, width, height := float32(ti.X), float32(ti.Y), float32(ti.Width), float32(ti.Height)

	bgColor := color.RGBA{50, 50, 50, 255}
	if ti.IsActive {
		bgColor = color.RGBA{80, 80, 80, 255}
	}
	vector.DrawFilledRect(screen, x, y, width, height, bgColor, false)
	vector.StrokeRect(screen, x, y, width, height, 1, color.White, false)

	displayTxt := ti.Prompt + ti.Text
	if ti.IsActive {
		displayTxt += "_"
	}
	ebitenutil.DebugPrintAt(screen, displayTxt, ti.X+5, ti.Y+(ti.Height-16)/2)
}

// IsClicked checks if the mouse click is within the text input bounds
func (ti *TextInput) IsClicked(mouseX, mouseY int) bool {
	return mouseX >= ti.X && mouseX <= ti.X+ti.Width &&
		mouseY >= ti.Y && mouseY <= ti.Y+ti.Height
}
