package bmpx

import (
	"fmt"
	"sync"
)

// pixelCodec converts between the BMP row layout and packed RGBA.
type pixelCodec struct {
	bytesPerPixel int
	decode        func(input []byte, pixels []uint8)
	encode        func(pixels []uint8, output []byte)
}

func newPixelCodec(bitsPerPixel int) (pixelCodec, error) {
	switch bitsPerPixel {
	case 24:
		return pixelCodec{bytesPerPixel: 3, decode: decodeBGR, encode: encodeBGR}, nil
	case 32:
		return pixelCodec{bytesPerPixel: 4, decode: decodeBGRX, encode: swapRB}, nil
	case 8:
		// TODO: paletted input needs a 24-bit output header (no palette,
		// new offset and bpp) before it can be resized.
		return pixelCodec{}, fmt.Errorf("%w: 8-bit pixels", ErrUnsupported)
	}
	return pixelCodec{}, fmt.Errorf("%w: %d bits per pixel", ErrUnsupported, bitsPerPixel)
}

func decodeBGR(input []byte, pixels []uint8) {
	n := len(input) / 3
	for i := 0; i < n; i++ {
		in, out := i*3, i*4
		pixels[out+0] = input[in+2]
		pixels[out+1] = input[in+1]
		pixels[out+2] = input[in+0]
		pixels[out+3] = 0xFF
	}
}

func encodeBGR(pixels []uint8, output []byte) {
	n := len(pixels) / 4
	for i := 0; i < n; i++ {
		in, out := i*4, i*3
		output[out+0] = pixels[in+2]
		output[out+1] = pixels[in+1]
		output[out+2] = pixels[in+0]
	}
}

// decodeBGRX treats the fourth byte as padding, the alpha of 32-bit images
// with a BITMAPINFOHEADER is ignored.
func decodeBGRX(input []byte, pixels []uint8) {
	swapRB(input, pixels)
	for i := 3; i < len(pixels); i += 4 {
		pixels[i] = 0xFF
	}
}

// swapRB copies BGRA to RGBA and back.
func swapRB(src []uint8, dst []uint8) {
	copy(dst, src)
	n := len(src) / 4
	for i := 0; i < n; i++ {
		loc := i * 4
		dst[loc+0], dst[loc+2] = dst[loc+2], dst[loc+0]
	}
}

type chunk struct {
	start int
	stop  int
}

// parallelizer splits index ranges into chunks and hands them to at most
// limit goroutines.
type parallelizer struct {
	chunk int
	limit int
}

func (p parallelizer) run(start, stop int, fn func(<-chan chunk)) {
	if stop <= start {
		return
	}
	count := (stop-start-1)/p.chunk + 1
	workers := p.limit
	if workers > count {
		workers = count
	}
	c := make(chan chunk, count)
	for i := start; i < stop; i += p.chunk {
		c <- chunk{start: i, stop: min(i+p.chunk, stop)}
	}
	close(c)

	if workers <= 1 {
		fn(c)
		return
	}
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(c)
		}()
	}
	wg.Wait()
}
