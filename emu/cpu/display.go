package cpu

import "strings"

const (
	// Width of the display in pixels.
	Width = 64
	// Height of the display in pixels.
	Height = 32
)

// Display is the 64x32 monochrome framebuffer, stored row-major with one
// byte per pixel holding 0 or 1. Only the clear and draw instructions mutate
// it; everybody else reads.
type Display struct {
	pixels     [Width * Height]uint8
	generation uint64
}

// Pixel reports whether the pixel at (x, y) is set. Out of range coordinates
// are reported as unset.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return d.pixels[y*Width+x] == 1
}

// Frame returns a copy of the buffer as a grid indexed [y][x].
func (d *Display) Frame() (f [Height][Width]bool) {
	for y := 0; y < Height; y++ {
		row := d.pixels[y*Width : (y+1)*Width]
		for x, p := range row {
			f[y][x] = p == 1
		}
	}
	return f
}

// Generation counts mutations. Frontends compare it between frames to skip
// redrawing an unchanged buffer.
func (d *Display) Generation() uint64 {
	return d.generation
}

// Lit returns the number of set pixels.
func (d *Display) Lit() int {
	n := 0
	for _, p := range d.pixels {
		n += int(p)
	}
	return n
}

// String renders the buffer as rows of '#' and '.'.
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if d.pixels[y*Width+x] == 1 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (d *Display) clear() {
	d.pixels = [Width * Height]uint8{}
	d.generation++
}

// drawSprite XORs rows onto the buffer with its top-left corner at (x, y)
// and reports whether any set pixel was turned off. The start coordinate
// always wraps; with clip set, pixels past the right or bottom edge are
// dropped instead of wrapping around.
func (d *Display) drawSprite(x, y uint8, rows []uint8, clip bool) (collision bool) {
	x0 := int(x) % Width
	y0 := int(y) % Height
	for row, bits := range rows {
		py := y0 + row
		if py >= Height {
			if clip {
				break
			}
			py %= Height
		}
		for bit := 0; bit < 8; bit++ {
			if bits&(0x80>>uint(bit)) == 0 {
				continue
			}
			px := x0 + bit
			if px >= Width {
				if clip {
					break
				}
				px %= Width
			}
			idx := py*Width + px
			if d.pixels[idx] == 1 {
				collision = true
			}
			d.pixels[idx] ^= 1
		}
	}
	d.generation++
	return collision
}
