package glutil

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type Texture struct {
	ID     uint32
	Width  int32
	Height int32
}

// LoadTexture decodes an image file and uploads it as an RGBA8 texture.
func LoadTexture(path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture %q not found on disk: %w", path, err)
	}
	defer file.Close()

	m, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("unable to decode texture %q: %w", path, err)
	}

	rgba := image.NewRGBA(m.Bounds())
	if rgba.Stride != rgba.Rect.Size().X*4 {
		return nil, fmt.Errorf("unsupported stride")
	}
	draw.Draw(rgba, rgba.Bounds(), m, m.Bounds().Min, draw.Src)

	return NewTexture(rgba), nil
}

// NewTexture uploads rgba with linear filtering and clamp to edge wrapping.
func NewTexture(rgba *image.RGBA) *Texture {
	texture := &Texture{
		Width:  int32(rgba.Rect.Dx()),
		Height: int32(rgba.Rect.Dy()),
	}

	texture.create()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		texture.Width, texture.Height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))

	return texture
}

// NewFloatTexture uploads float data with the given internal format,
// for example RGB32F with format RGB. data may be nil.
func NewFloatTexture(width, height int, internalFormat int32, format uint32, data []float32) *Texture {
	texture := &Texture{
		Width:  int32(width),
		Height: int32(height),
	}

	texture.create()
	var pixels unsafe.Pointer
	if len(data) > 0 {
		pixels = gl.Ptr(data)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat,
		texture.Width, texture.Height, 0,
		format, gl.FLOAT, pixels)

	return texture
}

func (texture *Texture) create() {
	gl.GenTextures(1, &texture.ID)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture.ID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

// Bind binds the texture to the given texture unit.
func (texture *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture.ID)
}

func (texture *Texture) Delete() {
	gl.DeleteTextures(1, &texture.ID)
	texture.ID = 0
}

// Checkers generates overlapping checker patterns of period 10, 13 and 17
// in the red, green and blue channels.
func Checkers(width, height int) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			p := rgba.PixOffset(i, j)
			rgba.Pix[p+0] = uint8(0xFF * ((j / 10) % 2) * ((i / 10) % 2))
			rgba.Pix[p+1] = uint8(0xFF * ((j / 13) % 2) * ((i / 13) % 2))
			rgba.Pix[p+2] = uint8(0xFF * ((j / 17) % 2) * ((i / 17) % 2))
			rgba.Pix[p+3] = 0xFF
		}
	}
	return rgba
}
