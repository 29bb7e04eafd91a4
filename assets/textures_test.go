package assets

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipVertically(t *testing.T) {

	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(y), G: uint8(x), A: 255})
		}
	}

	FlipVertically(img)

	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, color.NRGBA{R: uint8(2 - y), G: uint8(x), A: 255}, img.NRGBAAt(x, y))
		}
	}
}

func TestFlipVerticallySubImage(t *testing.T) {

	// Sub images share the parent's stride, so rows are not contiguous
	parent := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	parent.SetNRGBA(0, 0, color.NRGBA{R: 1, A: 255})
	parent.SetNRGBA(0, 1, color.NRGBA{R: 2, A: 255})
	parent.SetNRGBA(3, 0, color.NRGBA{R: 9, A: 255})

	sub := parent.SubImage(image.Rect(0, 0, 2, 2)).(*image.NRGBA)
	FlipVertically(sub)

	assert.Equal(t, uint8(2), parent.NRGBAAt(0, 0).R)
	assert.Equal(t, uint8(1), parent.NRGBAAt(0, 1).R)
	assert.Equal(t, uint8(9), parent.NRGBAAt(3, 0).R, "pixels outside the sub image must not move")
}

func TestSolidNRGBA(t *testing.T) {
	img := solidNRGBA(color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	assert.Equal(t, image.Rect(0, 0, 1, 1), img.Bounds())
	assert.Equal(t, []uint8{10, 20, 30, 40}, img.Pix)
}

func TestLoadTextureCacheIsPerOptions(t *testing.T) {

	path := filepath.Join(t.TempDir(), "missing.png")
	flipped := TextureLoadOptions{FlipV: true}

	key := TextureKey{Path: path, Opts: flipped}
	Textures[key] = Texture{Path: path, LoadOpts: flipped, TexID: 7}
	t.Cleanup(func() { delete(Textures, key) })

	tex, err := LoadTexture(path, flipped)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), tex.TexID)

	// Different options miss the cache and go to disk, where the file doesn't exist
	_, err = LoadTexture(path, TextureLoadOptions{FlipV: true, ClampToEdge: true})
	assert.Error(t, err)

	_, err = LoadTexture(path, TextureLoadOptions{})
	assert.Error(t, err)
}
