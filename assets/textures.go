package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"

	"github.com/bloeys/glpractice/logging"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/mandykoh/prism"
)

type TextureLoadOptions struct {
	// FlipV flips the image vertically so the first row is the bottom, matching OpenGL uv space
	FlipV bool
	// NoMipmaps uploads only level 0 and uses linear filtering
	NoMipmaps bool
	// ClampToEdge is used instead of REPEAT wrapping, mostly for textures with alpha cut-outs
	ClampToEdge bool
}

type Texture struct {
	// Path only exists for textures loaded from disk
	Path     string
	LoadOpts TextureLoadOptions
	TexID    uint32
	Width    int32
	Height   int32
}

// TextureKey identifies a texture loaded from disk. The same file loaded with different
// options is a different texture.
type TextureKey struct {
	Path string
	Opts TextureLoadOptions
}

var (
	DefaultDiffuseTexId  Texture
	DefaultSpecularTexId Texture

	// Textures caches every texture loaded from disk
	Textures = map[TextureKey]Texture{}
)

// InitDefaults creates the 1x1 textures that materials use when no texture is assigned.
// Requires a current GL context.
func InitDefaults() {
	DefaultDiffuseTexId = LoadTextureInMemNRGBA(solidNRGBA(color.NRGBA{R: 255, G: 255, B: 255, A: 255}), TextureLoadOptions{NoMipmaps: true})
	DefaultSpecularTexId = LoadTextureInMemNRGBA(solidNRGBA(color.NRGBA{A: 255}), TextureLoadOptions{NoMipmaps: true})
}

// LoadTexture decodes a png or jpeg file and uploads it as an RGBA texture.
// Loading the same path with the same options again returns the cached texture.
func LoadTexture(path string, opts TextureLoadOptions) (Texture, error) {

	key := TextureKey{Path: path, Opts: opts}
	if tex, ok := Textures[key]; ok {
		return tex, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Texture{}, fmt.Errorf("failed to open texture '%s': %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return Texture{}, fmt.Errorf("failed to decode texture '%s': %w", path, err)
	}

	nrgba := prism.ConvertImageToNRGBA(img, runtime.NumCPU())

	tex := LoadTextureInMemNRGBA(nrgba, opts)
	tex.Path = path
	tex.LoadOpts = opts
	Textures[key] = tex

	logging.InfoLog.Printf("Loaded %s texture '%s' (%dx%d)\n", format, path, tex.Width, tex.Height)
	return tex, nil
}

// LoadTextureOrDefault returns def and logs a warning if the texture can't be loaded
func LoadTextureOrDefault(path string, opts TextureLoadOptions, def Texture) Texture {

	tex, err := LoadTexture(path, opts)
	if err != nil {
		logging.WarnLog.Printf("Using default texture. Err: %v\n", err)
		return def
	}

	return tex
}

func LoadTextureInMemNRGBA(nrgba *image.NRGBA, opts TextureLoadOptions) Texture {

	if opts.FlipV {
		FlipVertically(nrgba)
	}

	size := nrgba.Bounds().Size()
	tex := Texture{
		Width:  int32(size.X),
		Height: int32(size.Y),
	}

	gl.GenTextures(1, &tex.TexID)
	if tex.TexID == 0 {
		logging.ErrLog.Fatalf("failed to generate texture. GlError=%d\n", gl.GetError())
	}

	gl.BindTexture(gl.TEXTURE_2D, tex.TexID)

	wrap := int32(gl.REPEAT)
	if opts.ClampToEdge {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)

	if opts.NoMipmaps {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// NRGBA rows are tightly packed only when the stride equals width*4
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(nrgba.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, tex.Width, tex.Height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&nrgba.Pix[0]))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	if !opts.NoMipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

func DeleteTexture(tex *Texture) {

	if tex.TexID == 0 {
		return
	}

	if tex.Path != "" {
		delete(Textures, TextureKey{Path: tex.Path, Opts: tex.LoadOpts})
	}

	gl.DeleteTextures(1, &tex.TexID)
	tex.TexID = 0
}

// FlipVertically swaps rows in place so the bottom row becomes the first
func FlipVertically(img *image.NRGBA) {

	b := img.Bounds()
	rowLen := b.Dx() * 4
	tmp := make([]byte, rowLen)

	for top, bottom := 0, b.Dy()-1; top < bottom; top, bottom = top+1, bottom-1 {

		topRow := img.Pix[top*img.Stride : top*img.Stride+rowLen]
		bottomRow := img.Pix[bottom*img.Stride : bottom*img.Stride+rowLen]

		copy(tmp, topRow)
		copy(topRow, bottomRow)
		copy(bottomRow, tmp)
	}
}

func solidNRGBA(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, c)
	return img
}
