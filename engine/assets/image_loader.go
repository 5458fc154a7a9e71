package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// IconSizes are the square sizes LoadIcon produces. The windowing system
// picks the closest one for each place it shows the icon.
var IconSizes = []int{16, 32, 48}

// LoadIcon decodes a PNG and returns it resampled to every IconSizes entry,
// followed by the source itself when it is larger than all of them.
func LoadIcon(path string) ([]image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode png %q: %w", path, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("icon %q: empty image", path)
	}

	out := make([]image.Image, 0, len(IconSizes)+1)
	largest := 0
	for _, s := range IconSizes {
		dst := image.NewRGBA(image.Rect(0, 0, s, s))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		out = append(out, dst)
		largest = max(largest, s)
	}
	if b.Dx() > largest || b.Dy() > largest {
		out = append(out, imageToRGBA(img))
	}
	return out, nil
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Stride == m.Rect.Dx()*4 && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
