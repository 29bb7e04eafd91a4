// Command splitscreen renders a small scene of trees and chairs twice per frame, into two
// framebuffers, and shows them side by side. The left half follows the fly camera and the right
// half is a fixed camera looking at the scene from further back.
package main

import (
	imgui "github.com/AllenDang/cimgui-go"
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpractice/assert"
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
	"github.com/bloeys/glpractice/meshes"
	"github.com/bloeys/glpractice/primitives"
	"github.com/bloeys/glpractice/renderer/rend3dgl"
	"github.com/bloeys/glpractice/timing"
	"github.com/bloeys/glpractice/ui/debugui"
	"github.com/bloeys/glpractice/ui/imguigl"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

const programName = "splitscreen"

var defaultConfig = config.Config{
	ResDir: "res",
	Window: config.Window{
		Title:      "OpenGL Practice",
		Width:      1400,
		Height:     700,
		VSync:      true,
		MSAA:       true,
		ClearColor: [4]float32{1, 1, 1, 1},
	},
	Camera: config.Camera{
		Pos:              [3]float32{0, 1, 3},
		MoveSpeed:        camera.DefaultMoveSpeed,
		MouseSensitivity: camera.DefaultMouseSensitivity,
		Zoom:             camera.DefaultZoom,
	},
}

// loadedModel is a model ready to draw with the scene material
type loadedModel struct {
	Mesh        meshes.Mesh
	DiffuseTex  uint32
	SpecularTex uint32
}

// view is one half of the screen
type view struct {
	Cam  *camera.Camera
	Fbo  buffers.Framebuffer
	Quad buffers.VertexArray
	vbo  buffers.VertexBuffer
}

type Game struct {
	Win  *engine.Window
	Rend *rend3dgl.Rend3DGL
	Cfg  config.Config

	flyCamera camera.Camera
	sideCam   camera.Camera
	flyCam    controllers.FlyCam

	cursorFree bool
	flashlight lights.SpotLight

	sceneMat materials.Material
	quadMat  materials.Material

	tree   loadedModel
	ground loadedModel
	chair  loadedModel

	treeModelMats  [len(treePositions)]gglm.TrMat
	chairModelMats [len(chairPositions)]gglm.TrMat
	groundModelMat gglm.TrMat

	views [2]view
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
			g.resize()
		}
	}
}

func (g *Game) Init() {

	var err error

	assets.InitDefaults()
	engine.SetCaptureMouse(true)

	winWidth, winHeight := g.Win.Size()
	_, _, aspect := splitViewport(winWidth, winHeight)

	g.flyCamera = controllers.NewCameraFromConfig(&g.Cfg.Camera, aspect)
	g.flyCam = controllers.FlyCam{Cam: &g.flyCamera, MaxMouseMove: 300}

	sideCamCfg := g.Cfg.Camera
	sideCamCfg.Pos = sideCamPos
	g.sideCam = controllers.NewCameraFromConfig(&sideCamCfg, aspect)

	g.flashlight = lights.NewFlashlight(&g.flyCamera.Pos, &g.flyCamera.Forward)

	g.sceneMat, err = materials.NewMaterial("scene", g.Cfg.ResPath("shaders", "multilight_alpha.glsl"))
	if err != nil {
		logging.ErrLog.Fatalln(err)
	}
	g.sceneMat.Settings.Set(materials.MaterialSettings_HasModelMtx)
	g.sceneMat.SetTextureSamplers("material.diffuse", "material.specular")
	g.sceneMat.SetUnifFloat32("material.shininess", shininess)
	dirLight.SetUniforms(&g.sceneMat, "dirLight")

	g.quadMat, err = materials.NewMaterial("screen quad", g.Cfg.ResPath("shaders", "screen_quad.glsl"))
	if err != nil {
		logging.ErrLog.Fatalln(err)
	}
	g.quadMat.Settings.Set(materials.MaterialSettings_HasTextures)
	g.quadMat.SetUnifInt32("screenTex", int32(materials.TextureSlot_Diffuse))

	g.tree = g.loadModel(&treeModel)
	g.ground = g.loadModel(&groundModel)
	g.chair = g.loadModel(&chairModel)

	for i := 0; i < len(treePositions); i++ {
		g.treeModelMats[i] = propModelMat(&treePositions[i], i, 1)
	}

	for i := 0; i < len(chairPositions); i++ {
		g.chairModelMats[i] = propModelMat(&chairPositions[i], i, chairScale)
	}

	g.groundModelMat = gglm.NewTrMatId()

	g.views[0].Cam = &g.flyCamera
	g.views[0].Quad, g.views[0].vbo = primitives.NewQuadVao(primitives.LeftHalfQuad)

	g.views[1].Cam = &g.sideCam
	g.views[1].Quad, g.views[1].vbo = primitives.NewQuadVao(primitives.RightHalfQuad)

	g.createFbos(winWidth, winHeight)
}

func (g *Game) loadModel(m *model) loadedModel {

	mesh, err := meshes.NewMesh(m.Name, g.Cfg.ResPath(m.Dir, m.File), 0)
	if err != nil {
		logging.ErrLog.Fatalf("Failed to load model '%s'. Err: %v\n", m.Name, err)
	}

	texOpts := assets.TextureLoadOptions{FlipV: true}
	return loadedModel{
		Mesh:        mesh,
		DiffuseTex:  assets.LoadTextureOrDefault(g.Cfg.ResPath(m.Dir, m.DiffuseTex), texOpts, assets.DefaultDiffuseTexId).TexID,
		SpecularTex: assets.LoadTextureOrDefault(g.Cfg.ResPath(m.Dir, m.SpecularTex), texOpts, assets.DefaultSpecularTexId).TexID,
	}
}

func (g *Game) createFbos(winWidth, winHeight int32) {

	fboWidth, fboHeight, _ := splitViewport(winWidth, winHeight)

	for i := 0; i < len(g.views); i++ {

		g.views[i].Fbo.Delete()

		var isComplete bool
		g.views[i].Fbo, isComplete = buffers.NewColorDepthFramebuffer(fboWidth, fboHeight)
		assert.T(isComplete, "Framebuffer of view %d is not complete", i)
	}
}

func (g *Game) resize() {

	winWidth, winHeight := g.Win.Size()
	if winWidth <= 0 || winHeight <= 0 {
		return
	}

	_, _, aspect := splitViewport(winWidth, winHeight)
	for i := 0; i < len(g.views); i++ {
		g.views[i].Cam.AspectRatio = aspect
		g.views[i].Cam.Update()
	}

	g.createFbos(winWidth, winHeight)
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

	debugui.Camera("Fly Camera", &g.flyCamera)
	imgui.Spacing()
	debugui.Camera("Side Camera", &g.sideCam)
	imgui.Spacing()

	if debugui.DirLight("Directional Light", &dirLight) {
		dirLight.SetUniforms(&g.sceneMat, "dirLight")
	}
	imgui.Spacing()

	debugui.SpotLight("Flashlight", &g.flashlight)

	imgui.End()
}

func (g *Game) Render() {

	// Both views are lit by the flashlight of the fly camera
	g.flashlight.Pos = g.flyCamera.Pos
	g.flashlight.Dir = g.flyCamera.Forward
	g.flashlight.SetUniforms(&g.sceneMat, "spotLight")

	for i := 0; i < len(g.views); i++ {

		v := &g.views[i]
		v.Fbo.BindWithViewport()

		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		gl.Enable(gl.DEPTH_TEST)

		g.sceneMat.SetUnifMat4("viewMat", &v.Cam.ViewMat)
		g.sceneMat.SetUnifMat4("projMat", &v.Cam.ProjMat)
		g.sceneMat.SetUnifVec3("viewPos", &v.Cam.Pos)

		g.drawScene()
	}

	// The default framebuffer was already cleared to the window clear color
	winWidth, winHeight := g.Win.Size()
	g.views[0].Fbo.UnBindWithViewport(uint32(winWidth), uint32(winHeight))

	gl.Disable(gl.DEPTH_TEST)
	for i := 0; i < len(g.views); i++ {
		g.quadMat.DiffuseTex = g.views[i].Fbo.ColorTexId()
		g.Rend.DrawVertexArray(&g.quadMat, &g.views[i].Quad, 0, primitives.QuadVertexCount)
	}
	gl.Enable(gl.DEPTH_TEST)
}

func (g *Game) drawModel(m *loadedModel, modelMat *gglm.TrMat) {
	g.sceneMat.DiffuseTex = m.DiffuseTex
	g.sceneMat.SpecularTex = m.SpecularTex
	g.Rend.DrawMesh(&m.Mesh, modelMat, &g.sceneMat)
}

func (g *Game) drawScene() {

	g.drawModel(&g.ground, &g.groundModelMat)

	for i := 0; i < len(g.treeModelMats); i++ {
		g.drawModel(&g.tree, &g.treeModelMats[i])
	}

	for i := 0; i < len(g.chairModelMats); i++ {
		g.drawModel(&g.chair, &g.chairModelMats[i])
	}
}

func (g *Game) FrameEnd() {
}

func (g *Game) DeInit() {

	for i := 0; i < len(g.views); i++ {
		g.views[i].Fbo.Delete()
		g.views[i].vbo.Delete()
		g.views[i].Quad.Delete()
	}

	g.tree.Mesh.Delete()
	g.ground.Mesh.Delete()
	g.chair.Mesh.Delete()

	g.sceneMat.Delete()
	g.quadMat.Delete()
}
