package xwfill

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/matryer/is"

	"crosswarped.com/xwfill/pkg/primitives"
)

func TestRenderPNG(t *testing.T) {
	is := is.New(t)
	cw := NewCrossword(cellsFrom([]string{
		"___",
		"_##",
		"_##",
	}))
	g := cw.LetterGrid(map[primitives.Slot]string{
		{Row: 0, Col: 0, Length: 3, Direction: primitives.Across}: "cat",
		{Row: 0, Col: 0, Length: 3, Direction: primitives.Down}:   "car",
	})

	var buf bytes.Buffer
	is.NoErr(RenderPNG(&buf, g))

	img, err := png.Decode(&buf)
	is.NoErr(err)
	is.Equal(img.Bounds().Dx(), 3*cellSize)
	is.Equal(img.Bounds().Dy(), 3*cellSize)
}
