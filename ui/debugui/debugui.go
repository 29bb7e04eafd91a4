// Package debugui has imgui widgets that show and edit cameras and lights while a program runs.
// The widgets return true when the user changed a value, so callers know to re-upload uniforms.
package debugui

import (
	"fmt"

	imgui "github.com/AllenDang/cimgui-go"
	"github.com/bloeys/glpractice/camera"
	"github.com/bloeys/glpractice/lights"
	"github.com/bloeys/glpractice/timing"
)

const frameTimePlotMaxMs = 33

var frameTimesMs []float32

// FrameStats shows the average FPS and a plot of recent frame times
func FrameStats() {

	imgui.PushStyleColorVec4(imgui.ColText, imgui.NewColor(1, 1, 0, 1).Value)
	imgui.LabelText("FPS", fmt.Sprintf("%.1f", timing.GetAvgFPS()))
	imgui.PopStyleColor()

	frameTimesMs = timing.FrameTimesMs(frameTimesMs[:0])
	if len(frameTimesMs) == 0 {
		return
	}

	imgui.PlotLinesFloatPtrV("Frame Times", frameTimesMs, int32(len(frameTimesMs)), 0, "", 0, frameTimePlotMaxMs, imgui.Vec2{Y: 50}, 4)
}

func Camera(label string, cam *camera.Camera) bool {

	imgui.Text(label)

	changed := imgui.DragFloat3("Pos##"+label, &cam.Pos.Data)
	changed = imgui.DragFloatV("Zoom##"+label, &cam.Zoom, 0.1, 1, 45, "%.1f", imgui.SliderFlagsNone) || changed
	imgui.LabelText("Forward##"+label, fmt.Sprintf("%.2f, %.2f, %.2f", cam.Forward.X(), cam.Forward.Y(), cam.Forward.Z()))

	if changed {
		cam.Update()
	}

	return changed
}

func DirLight(label string, l *lights.DirLight) bool {

	imgui.Text(label)

	changed := imgui.DragFloat3("Direction##"+label, &l.Dir.Data)
	changed = imgui.ColorEdit3("Ambient##"+label, &l.Ambient.Data) || changed
	changed = imgui.ColorEdit3("Diffuse##"+label, &l.Diffuse.Data) || changed
	changed = imgui.ColorEdit3("Specular##"+label, &l.Specular.Data) || changed

	return changed
}

// SpotLight edits everything but the position and direction, which usually follow a camera
func SpotLight(label string, l *lights.SpotLight) bool {

	imgui.Text(label)

	changed := imgui.ColorEdit3("Ambient##"+label, &l.Ambient.Data)
	changed = imgui.ColorEdit3("Diffuse##"+label, &l.Diffuse.Data) || changed
	changed = imgui.ColorEdit3("Specular##"+label, &l.Specular.Data) || changed
	changed = attenuation(label, &l.Attenuation) || changed

	inner, outer := l.CutoffsDeg()
	if imgui.DragFloatRange2V("Cutoff Degrees##"+label, &inner, &outer, 0.1, 0, 89, "%.1f", "%.1f", imgui.SliderFlagsNone) {
		l.SetCutoffsDeg(inner, outer)
		changed = true
	}

	return changed
}

func attenuation(label string, a *lights.Attenuation) bool {
	changed := imgui.DragFloatV("Constant##"+label, &a.Constant, 0.01, 0, 10, "%.3f", imgui.SliderFlagsNone)
	changed = imgui.DragFloatV("Linear##"+label, &a.Linear, 0.001, 0, 1, "%.3f", imgui.SliderFlagsNone) || changed
	changed = imgui.DragFloatV("Quadratic##"+label, &a.Quadratic, 0.001, 0, 1, "%.3f", imgui.SliderFlagsNone) || changed
	return changed
}
