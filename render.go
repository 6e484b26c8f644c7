package xwfill

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	cellSize   = 32
	cellBorder = 2
)

// RenderPNG writes a raster rendering of a filled grid: black canvas,
// white fillable cells, uppercase letters.
func RenderPNG(w io.Writer, g Grid) error {
	img := image.NewRGBA(image.Rect(0, 0, g.Width()*cellSize, g.Height()*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}

	for y := range g.Height() {
		for x := range g.Width() {
			r := g.Get(x, y)
			if r == Blocked {
				continue
			}

			cell := image.Rect(
				x*cellSize+cellBorder,
				y*cellSize+cellBorder,
				(x+1)*cellSize-cellBorder,
				(y+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.NewUniform(color.White), image.Point{}, draw.Src)

			if r == ' ' {
				continue
			}

			letter := string(unicode.ToUpper(r))
			width := drawer.MeasureString(letter)
			drawer.Dot = fixed.Point26_6{
				X: fixed.I(x*cellSize+cellSize/2) - width/2,
				Y: fixed.I(y*cellSize + (cellSize+face.Ascent)/2),
			}
			drawer.DrawString(letter)
		}
	}

	return png.Encode(w, img)
}
