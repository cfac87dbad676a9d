package graphics

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// UploadAlphaTexture uploads a single channel image as a GL_RED texture with linear filtering.
func UploadAlphaTexture(img *image.Alpha) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	// rows are tightly packed bytes
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	size := img.Rect.Size()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(size.X), int32(size.Y), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}
