package loaders

import (
	"bufio"
	"image"
	"io"
	"strconv"
)

// maxPPMLine is the longest line a plain PPM file may contain
const maxPPMLine = 70

// EncodePPM writes img as a plain (P3) PPM with a maximum value of 255. Each
// image row starts on a new line and no line exceeds 70 characters. The
// output ends with a newline.
func EncodePPM(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	bw.WriteString("P3\n")
	bw.WriteString(strconv.Itoa(bounds.Dx()) + " " + strconv.Itoa(bounds.Dy()) + "\n")
	bw.WriteString("255\n")

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		lineLen := 0
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			for _, c := range [3]uint32{r, g, b} {
				value := strconv.Itoa(int(c >> 8))
				switch {
				case lineLen == 0:
				case lineLen+1+len(value) > maxPPMLine:
					bw.WriteByte('\n')
					lineLen = 0
				default:
					bw.WriteByte(' ')
					lineLen++
				}
				bw.WriteString(value)
				lineLen += len(value)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
