// Package ppm writes canvases in the plain text PPM (P3) format.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// MaxLineLength is the longest line the encoder writes
const MaxLineLength = 70

// Encode writes c to w as a P3 image with a maximum channel value of 255.
// Every image row starts on a new line and the output ends with a newline.
func Encode(w io.Writer, c *renderer.Canvas) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width(), c.Height()); err != nil {
		return fmt.Errorf("failed to write ppm header: %w", err)
	}

	line := make([]byte, 0, MaxLineLength+1)
	for y := 0; y < c.Height(); y++ {
		line = line[:0]
		for x := 0; x < c.Width(); x++ {
			r, g, b, _ := c.PixelAt(x, y).RGBA8()
			for _, channel := range [3]uint8{r, g, b} {
				token := strconv.AppendUint(nil, uint64(channel), 10)
				if len(line) > 0 && len(line)+1+len(token) > MaxLineLength {
					if err := writeLine(bw, line); err != nil {
						return err
					}
					line = line[:0]
				}
				if len(line) > 0 {
					line = append(line, ' ')
				}
				line = append(line, token...)
			}
		}
		if err := writeLine(bw, line); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush ppm data: %w", err)
	}
	return nil
}

func writeLine(w *bufio.Writer, line []byte) error {
	if _, err := w.Write(line); err != nil {
		return fmt.Errorf("failed to write ppm data: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write ppm data: %w", err)
	}
	return nil
}
