// Command colorcycle draws a triangle whose vertex colors cycle over time.
// The colors are recomputed on the CPU every frame and uploaded into a dynamic vertex buffer.
package main

import (
	"github.com/bloeys/glpractice/assets"
	"github.com/bloeys/glpractice/buffers"
	"github.com/bloeys/glpractice/config"
	"github.com/bloeys/glpractice/engine"
	"github.com/bloeys/glpractice/input"
	"github.com/bloeys/glpractice/logging"
	"github.com/bloeys/glpractice/materials"
	"github.com/bloeys/glpractice/renderer/rend3dgl"
	"github.com/bloeys/glpractice/timing"
	"github.com/veandco/go-sdl2/sdl"
)

const programName = "colorcycle"

var defaultConfig = config.Config{
	ResDir: "res",
	Window: config.Window{
		Title:      "Color Cycle",
		Width:      800,
		Height:     600,
		VSync:      true,
		MSAA:       true,
		ClearColor: [4]float32{0.2, 0.3, 0.3, 1},
	},
	Camera: config.Camera{Zoom: 45},
}

type Game struct {
	Win  *engine.Window
	Rend *rend3dgl.Rend3DGL
	Cfg  config.Config

	mat   materials.Material
	vao   buffers.VertexArray
	vbo   buffers.VertexBuffer
	verts []float32
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

	engine.Run(game, window, nil)
}

func (g *Game) Init() {

	var err error

	assets.InitDefaults()

	g.mat, err = materials.NewMaterial("vertex color", g.Cfg.ResPath("shaders", "vertex_color.glsl"))
	if err != nil {
		logging.ErrLog.Fatalln(err)
	}

	g.verts = make([]float32, len(vertices))
	copy(g.verts, vertices)

	g.vbo = buffers.NewVertexBuffer(
		buffers.Element{ElementType: buffers.DataTypeVec3},
		buffers.Element{ElementType: buffers.DataTypeVec3},
	)
	g.vbo.SetData(g.verts, buffers.BufUsage_Dynamic_Draw)

	g.vao = buffers.NewVertexArray()
	g.vao.AddVertexBuffer(g.vbo)
	g.vao.UnBind()
}

func (g *Game) Update() {

	if input.IsQuitClicked() || input.KeyClicked(sdl.K_ESCAPE) {
		engine.Quit()
	}

	writeVertexColors(g.verts, float64(timing.ElapsedTime()))
	g.vbo.SetSubData(0, g.verts)
}

func (g *Game) Render() {
	g.Rend.DrawVertexArray(&g.mat, &g.vao, 0, g.vbo.VertexCount)
}

func (g *Game) FrameEnd() {
}

func (g *Game) DeInit() {
	g.vbo.Delete()
	g.vao.Delete()
	g.mat.Delete()
}
