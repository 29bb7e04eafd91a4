// Command multilight draws ten textured cubes lit by a dim directional light, four point lights
// and a flashlight that follows the camera. Each point light is marked by a small cube.
package main

import (
	imgui "github.com/AllenDang/cimgui-go"
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpractice/assets"
	"github.com/bloeys/glpractice/buffers"
	"github.com/bloeys/glpractice/camera"
	"github.com/bloeys/glpractice/config"
	"github.com/bloeys/glpractice/controllers"
	"github.com/bloeys/glpractice/engine"
	"github.com/bloeys/glpractice/input"
	"github.com/bloeys/glpractice/lights"
	"github.com/bloeys/glpractice/logging"
	"github.com/bloeys/glpractice/materials"
	"github.com/bloeys/glpractice/primitives"
	"github.com/bloeys/glpractice/renderer/rend3dgl"
	"github.com/bloeys/glpractice/timing"
	"github.com/bloeys/glpractice/ui/debugui"
	"github.com/bloeys/glpractice/ui/imguigl"
	"github.com/veandco/go-sdl2/sdl"
)

const programName = "multilight"

var defaultConfig = config.Config{
	ResDir: "res",
	Window: config.Window{
		Title:      "Multiple Lights",
		Width:      1200,
		Height:     720,
		VSync:      true,
		MSAA:       true,
		ClearColor: [4]float32{0, 0, 0, 1},
	},
	Camera: config.Camera{
		Pos:              [3]float32{0, 0, 3},
		MoveSpeed:        camera.DefaultMoveSpeed,
		MouseSensitivity: camera.DefaultMouseSensitivity,
		Zoom:             camera.DefaultZoom,
	},
}

type Game struct {
	Win  *engine.Window
	Rend *rend3dgl.Rend3DGL
	Cfg  config.Config

	cam    camera.Camera
	flyCam controllers.FlyCam

	// cursorFree releases the mouse so the debug window can be used
	cursorFree bool
	flashlight lights.SpotLight

	cubeMat materials.Material
	lampMat materials.Material

	cubeVbo buffers.VertexBuffer
	cubeVao buffers.VertexArray
	lampVao buffers.VertexArray

	cubeModelMats [len(cubePositions)]gglm.TrMat
	lampModelMats [len(pointLights)]gglm.TrMat
}

func main() {

	cfg, err := config.Load(config.ProgramPath(programName), defaultConfig)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load config. Err:", err)
	}

	err = engine.Init()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}

	rend := rend3dgl.NewRend3DGL()
	window, err := engine.CreateOpenGLWindowFromConfig(&cfg.Window, engine.WindowFlags_RESIZABLE, rend)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err:", err)
	}
	defer window.Destroy()

	ui, err := imguigl.NewImGui(cfg.ResPath("shaders", "imgui.glsl"))
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init imgui. Err:", err)
	}
	defer ui.Delete()

	game := &Game{
		Win:  window,
		Rend: rend,
		Cfg:  cfg,
	}
	window.EventCallbacks = append(window.EventCallbacks, game.handleWindowEvents)

	engine.Run(game, window, &ui)
}

func (g *Game) handleWindowEvents(e sdl.Event) {

	switch e := e.(type) {
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			g.cam.SetViewportSize(g.Win.Size())
		}
	}
}

func (g *Game) Init() {

	var err error

	assets.InitDefaults()
	engine.SetCaptureMouse(true)

	g.cam = controllers.NewCameraFromConfig(&g.Cfg.Camera, 1)
	g.cam.SetViewportSize(g.Win.Size())
	g.flyCam = controllers.FlyCam{Cam: &g.cam, MaxMouseMove: 300}

	g.cubeMat, err = materials.NewMaterial("container", g.Cfg.ResPath("shaders", "multilight.glsl"))
	if err != nil {
		logging.ErrLog.Fatalln(err)
	}

	g.lampMat, err = materials.NewMaterial("lamp", g.Cfg.ResPath("shaders", "light_cube.glsl"))
	if err != nil {
		logging.ErrLog.Fatalln(err)
	}

	texOpts := assets.TextureLoadOptions{FlipV: true}
	g.cubeMat.DiffuseTex = assets.LoadTextureOrDefault(g.Cfg.ResPath("textures", "container2.png"), texOpts, assets.DefaultDiffuseTexId).TexID
	g.cubeMat.SpecularTex = assets.LoadTextureOrDefault(g.Cfg.ResPath("textures", "container2_specular.png"), texOpts, assets.DefaultSpecularTexId).TexID
	g.cubeMat.SetTextureSamplers("material.diffuse", "material.specular")
	g.cubeMat.SetUnifFloat32("material.shininess", shininess)

	// Static lights are only uploaded once
	dirLight.SetUniforms(&g.cubeMat, "dirLight")
	for i := 0; i < len(pointLights); i++ {
		pointLights[i].SetUniforms(&g.cubeMat, lights.ArrayElem("pointLights", i))
	}

	white := gglm.NewVec3(1, 1, 1)
	g.lampMat.SetUnifVec3("lightColor", &white)

	g.flashlight = lights.NewFlashlight(&g.cam.Pos, &g.cam.Forward)

	g.cubeVao, g.cubeVbo = primitives.NewCubeVao()
	g.lampVao = primitives.NewLampVao(g.cubeVbo)

	for i := 0; i < len(g.cubeModelMats); i++ {
		g.cubeModelMats[i] = cubeModelMat(i)
	}

	for i := 0; i < len(g.lampModelMats); i++ {
		g.lampModelMats[i] = lampModelMat(&pointLights[i])
	}
}

func (g *Game) Update() {

	if input.IsQuitClicked() || input.KeyClicked(sdl.K_ESCAPE) {
		engine.Quit()
	}

	if input.KeyClicked(sdl.K_F1) {
		g.cursorFree = !g.cursorFree
		engine.SetCaptureMouse(!g.cursorFree)
		g.flyCam.DisableMouseLook = g.cursorFree
	}

	g.flyCam.Update(timing.DT())
	g.showDebugWindow()
}

func (g *Game) showDebugWindow() {

	imgui.Begin("Debug controls")

	debugui.FrameStats()
	imgui.Text("F1: toggle cursor")
	imgui.Spacing()

	debugui.Camera("Camera", &g.cam)
	imgui.Spacing()

	if debugui.DirLight("Directional Light", &dirLight) {
		dirLight.SetUniforms(&g.cubeMat, "dirLight")
	}
	imgui.Spacing()

	debugui.SpotLight("Flashlight", &g.flashlight)

	imgui.End()
}

func (g *Game) Render() {

	for _, m := range []*materials.Material{&g.cubeMat, &g.lampMat} {
		m.SetUnifMat4("viewMat", &g.cam.ViewMat)
		m.SetUnifMat4("projMat", &g.cam.ProjMat)
	}

	g.flashlight.Pos = g.cam.Pos
	g.flashlight.Dir = g.cam.Forward
	g.flashlight.SetUniforms(&g.cubeMat, "spotLight")
	g.cubeMat.SetUnifVec3("viewPos", &g.cam.Pos)

	for i := 0; i < len(g.cubeModelMats); i++ {
		g.cubeMat.SetUnifMat4("modelMat", &g.cubeModelMats[i].Mat4)
		g.Rend.DrawVertexArray(&g.cubeMat, &g.cubeVao, 0, primitives.CubeVertexCount)
	}

	for i := 0; i < len(g.lampModelMats); i++ {
		g.lampMat.SetUnifMat4("modelMat", &g.lampModelMats[i].Mat4)
		g.Rend.DrawVertexArray(&g.lampMat, &g.lampVao, 0, primitives.CubeVertexCount)
	}
}

func (g *Game) FrameEnd() {
}

func (g *Game) DeInit() {
	g.cubeVbo.Delete()
	g.cubeVao.Delete()
	g.lampVao.Delete()
	g.cubeMat.Delete()
	g.lampMat.Delete()
}
