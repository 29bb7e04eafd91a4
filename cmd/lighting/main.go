// Command lighting draws a coral cube lit by a single white point light using the Phong model,
// with a small white cube marking the light. WASD, Space, X and the mouse move the camera.
package main

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpractice/assets"
	"github.com/bloeys/glpractice/buffers"
	"github.com/bloeys/glpractice/camera"
	"github.com/bloeys/glpractice/config"
	"github.com/bloeys/glpractice/controllers"
	"github.com/bloeys/glpractice/engine"
	"github.com/bloeys/glpractice/input"
	"github.com/bloeys/glpractice/logging"
	"github.com/bloeys/glpractice/materials"
	"github.com/bloeys/glpractice/primitives"
	"github.com/bloeys/glpractice/renderer/rend3dgl"
	"github.com/bloeys/glpractice/timing"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	programName = "lighting"

	ambientStrength  float32 = 0.1
	specularStrength float32 = 0.5
	shininess        float32 = 32
	lampScale        float32 = 0.2
)

var (
	defaultConfig = config.Config{
		ResDir: "res",
		Window: config.Window{
			Title:      "Lighting",
			Width:      1200,
			Height:     720,
			VSync:      true,
			MSAA:       true,
			ClearColor: [4]float32{0.2, 0.3, 0.3, 1},
		},
		Camera: config.Camera{
			Pos:              [3]float32{0, 0, 3},
			MoveSpeed:        camera.DefaultMoveSpeed,
			MouseSensitivity: camera.DefaultMouseSensitivity,
			Zoom:             camera.DefaultZoom,
		},
	}

	objectColor = gglm.NewVec3(1, 0.5, 0.31)
	lightColor  = gglm.NewVec3(1, 1, 1)
	lightPos    = gglm.NewVec3(1.2, 1, 2)
)

type Game struct {
	Win  *engine.Window
	Rend *rend3dgl.Rend3DGL
	Cfg  config.Config

	cam    camera.Camera
	flyCam controllers.FlyCam

	cubeMat materials.Material
	lampMat materials.Material

	cubeVao buffers.VertexArray
	lampVao buffers.VertexArray
	cubeVbo buffers.VertexBuffer

	cubeModelMat gglm.TrMat
	lampModelMat gglm.TrMat
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

	game := &Game{
		Win:  window,
		Rend: rend,
		Cfg:  cfg,
	}
	window.EventCallbacks = append(window.EventCallbacks, game.handleWindowEvents)

	engine.Run(game, window, nil)
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

	g.cubeMat, err = materials.NewMaterial("lit cube", g.Cfg.ResPath("shaders", "lighting.glsl"))
	if err != nil {
		logging.ErrLog.Fatalln(err)
	}

	g.lampMat, err = materials.NewMaterial("lamp", g.Cfg.ResPath("shaders", "light_cube.glsl"))
	if err != nil {
		logging.ErrLog.Fatalln(err)
	}

	g.cubeMat.SetUnifVec3("objectColor", &objectColor)
	g.cubeMat.SetUnifVec3("lightColor", &lightColor)
	g.cubeMat.SetUnifVec3("lightPos", &lightPos)
	g.cubeMat.SetUnifFloat32("ambientStrength", ambientStrength)
	g.cubeMat.SetUnifFloat32("specularStrength", specularStrength)
	g.cubeMat.SetUnifFloat32("shininess", shininess)
	g.lampMat.SetUnifVec3("lightColor", &lightColor)

	g.cubeVao, g.cubeVbo = primitives.NewCubeVao()
	g.lampVao = primitives.NewLampVao(g.cubeVbo)

	g.cubeModelMat = gglm.NewTrMatId()
	g.lampModelMat = gglm.NewTrMatId()
	g.lampModelMat.TranslateVec(&lightPos).Scale(lampScale, lampScale, lampScale)

	g.cubeMat.SetUnifMat4("modelMat", &g.cubeModelMat.Mat4)
	g.lampMat.SetUnifMat4("modelMat", &g.lampModelMat.Mat4)
}

func (g *Game) Update() {

	if input.IsQuitClicked() || input.KeyClicked(sdl.K_ESCAPE) {
		engine.Quit()
	}

	g.flyCam.Update(timing.DT())
}

func (g *Game) Render() {

	for _, m := range []*materials.Material{&g.cubeMat, &g.lampMat} {
		m.SetUnifMat4("viewMat", &g.cam.ViewMat)
		m.SetUnifMat4("projMat", &g.cam.ProjMat)
	}
	g.cubeMat.SetUnifVec3("viewPos", &g.cam.Pos)

	g.Rend.DrawVertexArray(&g.cubeMat, &g.cubeVao, 0, primitives.CubeVertexCount)
	g.Rend.DrawVertexArray(&g.lampMat, &g.lampVao, 0, primitives.CubeVertexCount)
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
