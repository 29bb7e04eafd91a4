package engine

import (
	"fmt"
	"runtime"

	"github.com/bloeys/glpractice/assert"
	"github.com/bloeys/glpractice/config"
	"github.com/bloeys/glpractice/input"
	"github.com/bloeys/glpractice/logging"
	"github.com/bloeys/glpractice/renderer"
	"github.com/bloeys/glpractice/timing"
	"github.com/bloeys/glpractice/ui/imguigl"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	isInited = false
)

type WindowFlags uint32

const (
	WindowFlags_OPENGL        WindowFlags = sdl.WINDOW_OPENGL
	WindowFlags_RESIZABLE     WindowFlags = sdl.WINDOW_RESIZABLE
	WindowFlags_HIDDEN        WindowFlags = sdl.WINDOW_HIDDEN
	WindowFlags_ALLOW_HIGHDPI WindowFlags = sdl.WINDOW_ALLOW_HIGHDPI
)

type Window struct {
	SDLWin         *sdl.Window
	GlCtx          sdl.GLContext
	EventCallbacks []func(sdl.Event)
	// Rend has its per-frame state reset by Run after every frame
	Rend           renderer.Render

	// ClearColor (RGBA) is used to clear the default framebuffer at the start of every frame
	ClearColor [4]float32
}

// handleInputs polls all SDL events. When ui is not nil it gets every event too, and the input
// package doesn't see the mouse or keyboard while the ui wants them.
func (w *Window) handleInputs(ui *imguigl.ImguiInfo) {

	input.EventLoopStart()

	uiCaptureMouse, uiCaptureKeyboard := false, false
	if ui != nil {
		uiCaptureMouse, uiCaptureKeyboard = ui.WantCapture()
	}

	// Once the ui has the mouse/keyboard, release events stop reaching the input package,
	// so anything held would stay held (e.g. the camera keeps moving)
	if uiCaptureMouse {
		input.ClearMouseState()
	}

	if uiCaptureKeyboard {
		input.ClearKeyboardState()
	}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {

		//Fire callbacks
		for i := 0; i < len(w.EventCallbacks); i++ {
			w.EventCallbacks[i](event)
		}

		if ui != nil {
			ui.HandleEvent(event)
		}

		//Internal processing
		switch e := event.(type) {

		case *sdl.MouseWheelEvent:
			if !uiCaptureMouse {
				input.HandleMouseWheelEvent(e)
			}

		case *sdl.KeyboardEvent:
			if !uiCaptureKeyboard {
				input.HandleKeyboardEvent(e)
			}

		case *sdl.MouseButtonEvent:
			if !uiCaptureMouse {
				input.HandleMouseBtnEvent(e)
			}

		case *sdl.MouseMotionEvent:
			if !uiCaptureMouse {
				input.HandleMouseMotionEvent(e)
			}

		case *sdl.WindowEvent:

			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				w.handleWindowResize()
			case sdl.WINDOWEVENT_FOCUS_LOST:
				// Key up events are lost while unfocused, so held keys would stay held
				input.ClearState()
			}

		case *sdl.QuitEvent:
			input.HandleQuitEvent(e)
		}
	}

	if ui != nil {
		ui.UpdateMouse()
	}
}

func (w *Window) handleWindowResize() {

	fbWidth, fbHeight := w.SDLWin.GLGetDrawableSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	gl.Viewport(0, 0, fbWidth, fbHeight)
}

// Size returns the drawable size in pixels, which can differ from the window size on high DPI displays
func (w *Window) Size() (width, height int32) {
	return w.SDLWin.GLGetDrawableSize()
}

func (w *Window) Destroy() error {
	sdl.GLDeleteContext(w.GlCtx)
	return w.SDLWin.Destroy()
}

func Init() error {

	isInited = true

	runtime.LockOSThread()
	timing.Init()

	if err := initSDL(); err != nil {
		return fmt.Errorf("failed to init SDL: %w", err)
	}

	return nil
}

func initSDL() error {

	err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO)
	if err != nil {
		return err
	}

	sdl.ShowCursor(1)

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)

	sdl.GLSetAttribute(sdl.GL_RED_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_GREEN_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_BLUE_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)

	// Allows us to do MSAA
	sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
	sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, 4)

	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	return nil
}

func CreateOpenGLWindow(title string, x, y, width, height int32, flags WindowFlags, rend renderer.Render) (*Window, error) {
	return createWindow(title, x, y, width, height, WindowFlags_OPENGL|flags, rend)
}

func CreateOpenGLWindowCentered(title string, width, height int32, flags WindowFlags, rend renderer.Render) (*Window, error) {
	return createWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, WindowFlags_OPENGL|flags, rend)
}

func createWindow(title string, x, y, width, height int32, flags WindowFlags, rend renderer.Render) (*Window, error) {

	assert.T(isInited, "engine.Init() was not called!")

	sdlWin, err := sdl.CreateWindow(title, x, y, width, height, uint32(flags))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	win := &Window{
		SDLWin:         sdlWin,
		EventCallbacks: make([]func(sdl.Event), 0),
		Rend:           rend,
		ClearColor:     [4]float32{0, 0, 0, 1},
	}

	win.GlCtx, err = sdlWin.GLCreateContext()
	if err != nil {
		sdlWin.Destroy()
		return nil, fmt.Errorf("failed to create OpenGL context: %w", err)
	}

	err = initOpenGL()
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("failed to init OpenGL: %w", err)
	}

	logging.InfoLog.Printf("OpenGL version: %s; Renderer: %s\n", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	// Get rid of the white startup screen
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
	sdlWin.GLSwap()

	return win, nil
}

func initOpenGL() error {

	if err := gl.Init(); err != nil {
		return err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.ClearColor(0, 0, 0, 1)

	return nil
}

func SetVSync(enabled bool) {

	if enabled {
		sdl.GLSetSwapInterval(1)
	} else {
		sdl.GLSetSwapInterval(0)
	}
}

func SetMSAA(isEnabled bool) {

	if isEnabled {
		gl.Enable(gl.MULTISAMPLE)
	} else {
		gl.Disable(gl.MULTISAMPLE)
	}
}

func SetWireframe(isEnabled bool) {

	if isEnabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// SetCaptureMouse hides the cursor and reports only relative motion, which is what fly cameras need
func SetCaptureMouse(isEnabled bool) {
	sdl.SetRelativeMouseMode(isEnabled)
}

// CreateOpenGLWindowFromConfig creates a centered window and applies the vsync, msaa and clear color settings
func CreateOpenGLWindowFromConfig(cfg *config.Window, flags WindowFlags, rend renderer.Render) (*Window, error) {

	win, err := CreateOpenGLWindowCentered(cfg.Title, cfg.Width, cfg.Height, flags, rend)
	if err != nil {
		return nil, err
	}

	SetVSync(cfg.VSync)
	SetMSAA(cfg.MSAA)
	win.ClearColor = cfg.ClearColor

	return win, nil
}
