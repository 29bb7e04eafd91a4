package engine

import (
	"github.com/bloeys/glpractice/assert"
	"github.com/bloeys/glpractice/input"
	"github.com/bloeys/glpractice/timing"
	"github.com/bloeys/glpractice/ui/imguigl"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	isRunning = false
)

// Game is implemented by every program. Run calls Init once, then Update, Render
// and FrameEnd every frame, and DeInit after the loop ends.
type Game interface {
	Init()

	Update()
	Render()
	FrameEnd()

	DeInit()
}

// Run drives g until Quit is called. ui is optional: when set, an imgui frame is open during
// Update (so widgets can be built there) and it is drawn over the frame after Render.
func Run(g Game, w *Window, ui *imguigl.ImguiInfo) {

	assert.T(w.Rend != nil, "Window has no renderer")

	isRunning = true

	g.Init()

	// Simulate an initial resize so programs see the real drawable size
	w.handleWindowResize()

	for isRunning {

		if w.SDLWin.GetFlags()&sdl.WINDOW_MINIMIZED != 0 {
			w.handleInputs(ui)
			if input.IsQuitClicked() {
				Quit()
			}

			sdl.Delay(16)
			continue
		}

		timing.FrameStarted()
		w.handleInputs(ui)

		winWidth, winHeight := w.SDLWin.GetSize()
		if ui != nil {
			ui.FrameStart(float32(winWidth), float32(winHeight), timing.DT())
		}

		g.Update()

		gl.ClearColor(w.ClearColor[0], w.ClearColor[1], w.ClearColor[2], w.ClearColor[3])
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)

		g.Render()

		if ui != nil {
			fbWidth, fbHeight := w.Size()
			ui.Render(float32(winWidth), float32(winHeight), fbWidth, fbHeight)
		}

		w.Rend.FrameEnd()
		g.FrameEnd()

		w.SDLWin.GLSwap()

		timing.FrameEnded()
	}

	g.DeInit()
}

func Quit() {
	isRunning = false
}

// IsRunning is false once Quit is called
func IsRunning() bool {
	return isRunning
}
