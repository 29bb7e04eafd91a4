package imguigl

import (
	imgui "github.com/AllenDang/cimgui-go"
	"github.com/veandco/go-sdl2/sdl"
)

// Only keys used for navigating and editing widgets are mapped
var sdlScancodeToImGuiKey = map[sdl.Scancode]imgui.Key{
	sdl.SCANCODE_TAB:       imgui.KeyTab,
	sdl.SCANCODE_LEFT:      imgui.KeyLeftArrow,
	sdl.SCANCODE_RIGHT:     imgui.KeyRightArrow,
	sdl.SCANCODE_UP:        imgui.KeyUpArrow,
	sdl.SCANCODE_DOWN:      imgui.KeyDownArrow,
	sdl.SCANCODE_PAGEUP:    imgui.KeyPageUp,
	sdl.SCANCODE_PAGEDOWN:  imgui.KeyPageDown,
	sdl.SCANCODE_HOME:      imgui.KeyHome,
	sdl.SCANCODE_END:       imgui.KeyEnd,
	sdl.SCANCODE_INSERT:    imgui.KeyInsert,
	sdl.SCANCODE_DELETE:    imgui.KeyDelete,
	sdl.SCANCODE_BACKSPACE: imgui.KeyBackspace,
	sdl.SCANCODE_SPACE:     imgui.KeySpace,
	sdl.SCANCODE_RETURN:    imgui.KeyEnter,
	sdl.SCANCODE_KP_ENTER:  imgui.KeyKeypadEnter,
	sdl.SCANCODE_ESCAPE:    imgui.KeyEscape,
	sdl.SCANCODE_A:         imgui.KeyA,
	sdl.SCANCODE_C:         imgui.KeyC,
	sdl.SCANCODE_V:         imgui.KeyV,
	sdl.SCANCODE_X:         imgui.KeyX,
	sdl.SCANCODE_Y:         imgui.KeyY,
	sdl.SCANCODE_Z:         imgui.KeyZ,
}

// SdlScancodeToImGuiKey returns imgui.KeyNone for keys imgui doesn't need
func SdlScancodeToImGuiKey(scancode sdl.Scancode) imgui.Key {

	key, ok := sdlScancodeToImGuiKey[scancode]
	if !ok {
		return imgui.KeyNone
	}

	return key
}
