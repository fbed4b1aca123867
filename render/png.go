package render

import (
	"image"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/bendobbins/crossgen/board"
	"github.com/bendobbins/crossgen/solver"
)

const (
	cellSize   = 100
	cellBorder = 2
)

// SavePNG writes the grid as an image: white cells on a black canvas, with
// each assigned letter drawn in the middle of its cell.
func SavePNG(m *board.Model, a solver.Assignment, filename string) error {
	img := image.NewRGBA(image.Rect(0, 0, m.Width()*cellSize, m.Height()*cellSize))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	letters := LetterGrid(m, a)
	for r := 0; r < m.Height(); r++ {
		for c := 0; c < m.Width(); c++ {
			if !m.Open(r, c) {
				continue
			}
			cell := image.Rect(
				c*cellSize+cellBorder, r*cellSize+cellBorder,
				(c+1)*cellSize-cellBorder, (r+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.White, image.Point{}, draw.Src)
			if letters[r][c] != 0 {
				drawLetter(img, cell, letters[r][c])
			}
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func drawLetter(img draw.Image, cell image.Rectangle, ch rune) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
	}
	text := string(ch)
	width := d.MeasureString(text)
	metrics := face.Metrics()
	d.Dot = fixed.Point26_6{
		X: fixed.I(cell.Min.X+cell.Dx()/2) - width/2,
		Y: fixed.I(cell.Min.Y+cell.Dy()/2) + (metrics.Ascent-metrics.Descent)/2,
	}
	d.DrawString(text)
}
