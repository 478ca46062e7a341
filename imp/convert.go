package imp

import (
	"image"
	"image/color"
)

// ToGray converts any image in a grayscale picture of the same size. Each
// pixel becomes the truncated mean of its red, green and blue channels.
func ToGray(src image.Image) *image.Gray {
	if dst, ok := src.(*image.Gray); ok {
		return dst
	}

	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetGray(x, y, mean(src.At(x, y)))
		}
	}
	return dst
}

func mean(c color.Color) color.Gray {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.Gray{uint8((int(n.R) + int(n.G) + int(n.B)) / 3)}
}
