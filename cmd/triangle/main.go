// Command triangle draws two orange triangles meeting at the center, using an index buffer.
//
// ESC quits, F toggles wireframe and every key press is logged.
package main

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpractice/assets"
	"github.com/bloeys/glpractice/buffers"
	"github.com/bloeys/glpractice/config"
	"github.com/bloeys/glpractice/engine"
	"github.com/bloeys/glpractice/input"
	"github.com/bloeys/glpractice/logging"
	"github.com/bloeys/glpractice/materials"
	"github.com/bloeys/glpractice/renderer/rend3dgl"
	"github.com/veandco/go-sdl2/sdl"
)

const programName = "triangle"

var (
	defaultConfig = config.Config{
		ResDir: "res",
		Window: config.Window{
			Title:      "Tutorial 01",
			Width:      800,
			Height:     600,
			VSync:      true,
			MSAA:       true,
			ClearColor: [4]float32{0.2, 0.3, 0.3, 1},
		},
		Camera: config.Camera{Zoom: 45},
	}

	triangleColor = gglm.NewVec3(1, 0.5, 0.2)

	// Two triangles sharing the center-bottom vertex
	vertices = []float32{
		0.9, 0.9, 0,   // top right
		0.9, -0.9, 0,  // bottom right
		0, -0.9, 0,    // center
		-0.9, 0.9, 0,  // top left
		-0.9, -0.9, 0, // bottom left
	}

	indices = []uint32{
		0, 1, 2,
		2, 3, 4,
	}
)

type Game struct {
	Win  *engine.Window
	Rend *rend3dgl.Rend3DGL
	Cfg  config.Config

	mat       materials.Material
	vao       buffers.VertexArray
	wireframe bool
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

	if ke, ok := e.(*sdl.KeyboardEvent); ok && ke.Type == sdl.KEYDOWN && ke.Repeat == 0 {
		logging.InfoLog.Printf("Key pressed: keycode=%d (%s)\n", ke.Keysym.Sym, sdl.GetKeyName(ke.Keysym.Sym))
	}
}

func (g *Game) Init() {

	var err error

	assets.InitDefaults()

	g.mat, err = materials.NewMaterial("triangle", g.Cfg.ResPath("shaders", "triangle.glsl"))
	if err != nil {
		logging.ErrLog.Fatalln(err)
	}
	g.mat.SetUnifVec3("color", &triangleColor)

	vbo := buffers.NewVertexBuffer(buffers.Element{ElementType: buffers.DataTypeVec3})
	vbo.SetData(vertices, buffers.BufUsage_Static_Draw)

	ibo := buffers.NewIndexBuffer()
	ibo.SetData(indices)

	g.vao = buffers.NewVertexArray()
	g.vao.AddVertexBuffer(vbo)
	g.vao.SetIndexBuffer(ibo)
	g.vao.UnBind()
}

func (g *Game) Update() {

	if input.IsQuitClicked() || input.KeyClicked(sdl.K_ESCAPE) {
		engine.Quit()
	}

	if input.KeyClicked(sdl.K_f) {
		g.wireframe = !g.wireframe
		engine.SetWireframe(g.wireframe)
	}
}

func (g *Game) Render() {
	g.Rend.DrawVertexArrayIndexed(&g.mat, &g.vao, g.vao.IndexBuffer.IndexBufCount)
}

func (g *Game) FrameEnd() {
}

func (g *Game) DeInit() {

	for i := 0; i < len(g.vao.Vbos); i++ {
		g.vao.Vbos[i].Delete()
	}
	g.vao.IndexBuffer.Delete()
	g.vao.Delete()

	g.mat.Delete()
}
