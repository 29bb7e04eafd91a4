// The input package keeps per-frame keyboard and mouse state built from SDL events.
//
// The engine calls EventLoopStart at the start of every frame and then feeds every polled
// event through the Handle* functions, so queries like KeyClicked only report
// what happened during the current frame, while KeyDown reports the held state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

type keyState struct {
	Key                 sdl.Keycode
	State               uint8
	IsPressedThisFrame  bool
	IsReleasedThisFrame bool
}

type mouseBtnState struct {
	Btn   uint8
	State uint8

	IsPressedThisFrame  bool
	IsReleasedThisFrame bool
	IsDoubleClicked     bool
}

type mouseMotionState struct {
	XDelta int32
	YDelta int32
	XPos   int32
	YPos   int32
}

type mouseWheelState struct {
	XDelta int32
	YDelta int32
}

var (
	mouseWheel  = mouseWheelState{}
	mouseMotion = mouseMotionState{}
	mouseBtnMap = make(map[uint8]mouseBtnState)
	keyMap      = make(map[sdl.Keycode]keyState)

	isQuitRequested bool
)

func EventLoopStart() {

	for k, v := range keyMap {
		v.IsPressedThisFrame = false
		v.IsReleasedThisFrame = false
		keyMap[k] = v
	}

	for k, v := range mouseBtnMap {
		v.IsPressedThisFrame = false
		v.IsReleasedThisFrame = false
		v.IsDoubleClicked = false
		mouseBtnMap[k] = v
	}

	mouseMotion.XDelta = 0
	mouseMotion.YDelta = 0

	mouseWheel.XDelta = 0
	mouseWheel.YDelta = 0

	isQuitRequested = false
}

// ClearState forgets all held keys and buttons, for example after the window loses focus
func ClearState() {
	ClearKeyboardState()
	ClearMouseState()
}

// ClearKeyboardState forgets held keys. Used when another consumer (e.g. a debug UI) takes
// the keyboard, because the release events will not arrive here.
func ClearKeyboardState() {
	clear(keyMap)
}

// ClearMouseState forgets held buttons and this frame's motion and wheel deltas.
// The last known mouse position is kept.
func ClearMouseState() {
	clear(mouseBtnMap)
	mouseMotion.XDelta = 0
	mouseMotion.YDelta = 0
	mouseWheel = mouseWheelState{}
}

func HandleQuitEvent(e *sdl.QuitEvent) {
	isQuitRequested = true
}

func IsQuitClicked() bool {
	return isQuitRequested
}

func HandleKeyboardEvent(e *sdl.KeyboardEvent) {

	ks, ok := keyMap[e.Keysym.Sym]
	if !ok {
		ks = keyState{Key: e.Keysym.Sym}
	}

	// Repeats keep the key held but are not new clicks
	ks.State = e.State
	if e.Repeat == 0 {
		ks.IsPressedThisFrame = ks.IsPressedThisFrame || e.State == sdl.PRESSED
		ks.IsReleasedThisFrame = ks.IsReleasedThisFrame || e.State == sdl.RELEASED
	}

	keyMap[ks.Key] = ks
}

func HandleMouseBtnEvent(e *sdl.MouseButtonEvent) {

	mb, ok := mouseBtnMap[e.Button]
	if !ok {
		mb = mouseBtnState{Btn: e.Button}
	}

	mb.State = e.State
	mb.IsDoubleClicked = mb.IsDoubleClicked || (e.Clicks == 2 && e.State == sdl.PRESSED)
	mb.IsPressedThisFrame = mb.IsPressedThisFrame || e.State == sdl.PRESSED
	mb.IsReleasedThisFrame = mb.IsReleasedThisFrame || e.State == sdl.RELEASED

	mouseBtnMap[e.Button] = mb
}

// HandleMouseMotionEvent sums relative motion, since SDL can send many motion events per frame
func HandleMouseMotionEvent(e *sdl.MouseMotionEvent) {

	mouseMotion.XPos = e.X
	mouseMotion.YPos = e.Y

	mouseMotion.XDelta += e.XRel
	mouseMotion.YDelta += e.YRel
}

func HandleMouseWheelEvent(e *sdl.MouseWheelEvent) {
	mouseWheel.XDelta += e.X
	mouseWheel.YDelta += e.Y
}

// GetMousePos returns the window coordinates of the mouse
func GetMousePos() (x, y int32) {
	return mouseMotion.XPos, mouseMotion.YPos
}

// GetMouseMotion returns how many pixels the mouse moved this frame.
// Like SDL, positive y is downwards.
func GetMouseMotion() (xDelta, yDelta int32) {
	return mouseMotion.XDelta, mouseMotion.YDelta
}

func GetMouseWheelMotion() (xDelta, yDelta int32) {
	return mouseWheel.XDelta, mouseWheel.YDelta
}

func KeyClicked(kc sdl.Keycode) bool {
	return keyMap[kc].IsPressedThisFrame
}

func KeyReleased(kc sdl.Keycode) bool {
	return keyMap[kc].IsReleasedThisFrame
}

func KeyDown(kc sdl.Keycode) bool {
	return keyMap[kc].State == sdl.PRESSED
}

// KeyUp is true for keys never pressed as well
func KeyUp(kc sdl.Keycode) bool {
	return !KeyDown(kc)
}

func MouseClicked(mb uint8) bool {
	return mouseBtnMap[mb].IsPressedThisFrame
}

func MouseDoubleClicked(mb uint8) bool {
	return mouseBtnMap[mb].IsDoubleClicked
}

func MouseReleased(mb uint8) bool {
	return mouseBtnMap[mb].IsReleasedThisFrame
}

func MouseDown(mb uint8) bool {
	return mouseBtnMap[mb].State == sdl.PRESSED
}

func MouseUp(mb uint8) bool {
	return !MouseDown(mb)
}
