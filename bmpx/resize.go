package bmpx

import (
	"errors"
	"fmt"
	"io"

	"github.com/adriansahlman/resample/filter"
)

// Resize a BMP image as a stream. Holds the smallest amount of pixels
// possible in memory: the width of the image multiplied by the number of
// rows the vertical kernel spans. Each pixel takes up 4 bytes.
//
// The output matches imaging.Resize with the kernel's ResampleFilter.
// A point kernel (filter.Nearest) picks the nearest source pixel instead
// of blending.
//
// Parts of this code are taken from or inspired by
// https://github.com/disintegration/imaging/blob/24d954dc01266ac1e8ba74cbe5e632c87fb0b38a/resize.go
func Resize(
	src io.Reader,
	dst io.Writer,
	width, height int,
	opts ...ResizeOption,
) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("resized size must be positive, got %dx%d", width, height)
	}
	o := resizeOptions{
		kernel: filter.Resolve(filter.Lanczos3),
		pChunk: 64,
		pLimit: 4,
	}
	for i := range opts {
		opts[i].apply(&o)
	}
	if err := o.validate(); err != nil {
		return err
	}

	hdr, err := DecodeHeader(src)
	if err != nil {
		return err
	}
	if hdr.AllowAlpha {
		return fmt.Errorf("%w: alpha channel", ErrUnsupported)
	}
	codec, err := newPixelCodec(hdr.BitsPerPixel)
	if err != nil {
		return err
	}

	hdr.setSize(width, height, codec.bytesPerPixel)
	if _, err = dst.Write(hdr.HeaderBytes); err != nil {
		return err
	}
	widthIn, heightIn := hdr.Config.Width, hdr.Config.Height
	if width == widthIn && height == heightIn {
		_, err = io.Copy(dst, src)
		return err
	}

	par := parallelizer{chunk: o.pChunk, limit: o.pLimit}
	bpp := codec.bytesPerPixel

	var weightsX, weightsY [][]indexWeight
	if width != widthIn {
		weightsX, _ = computeWeights(width, widthIn, o.kernel)
	}
	kernelSizeY := 1
	if height != heightIn {
		weightsY, kernelSizeY = computeWeights(height, heightIn, o.kernel)
	}

	// Decoded pixels of the current input row
	inputPixelBuf := make([]uint8, widthIn*4)
	// Ring of horizontally resized rows, indexed by input row
	intermPixelBuf := make([]uint8, kernelSizeY*width*4)
	rowBytesBufIn := make([]byte, bpp*widthIn+paddingBytes(widthIn, bpp))
	rowBytesBufOut := make([]byte, bpp*width+paddingBytes(width, bpp))
	ringRow := func(y int) []uint8 {
		loc := y % kernelSizeY * width * 4
		return intermPixelBuf[loc : loc+width*4]
	}

	y0In, y1In := heightIn-1, -1
	y0Out, y1Out := height-1, -1
	yDelta := -1
	if hdr.TopDown {
		y0In, y1In = 0, heightIn
		y0Out, y1Out = 0, height
		yDelta = 1
	}
	yIn, yOut := y0In, y0Out

	// An output row can be written once every input row it draws from has
	// been read.
	canWriteCurrentOutputRow := func() bool {
		ws := weightsY[yOut]
		if len(ws) == 0 {
			return true
		}
		if hdr.TopDown {
			return ws[len(ws)-1].index <= yIn
		}
		return ws[0].index >= yIn
	}

	for ; yIn != y1In; yIn += yDelta {
		if _, err = io.ReadFull(src, rowBytesBufIn); err != nil {
			return fmt.Errorf("failed to read %d row bytes for y=%d: %w", len(rowBytesBufIn), yIn, err)
		}
		par.run(0, widthIn, func(chunks <-chan chunk) {
			for c := range chunks {
				codec.decode(
					rowBytesBufIn[c.start*bpp:c.stop*bpp],
					inputPixelBuf[c.start*4:c.stop*4],
				)
			}
		})

		interm := ringRow(yIn)
		if weightsX == nil {
			copy(interm, inputPixelBuf)
		} else {
			par.run(0, width, func(chunks <-chan chunk) {
				for c := range chunks {
					for x := c.start; x < c.stop; x++ {
						convolve(weightsX[x], interm[x*4:x*4+4], func(index int) []uint8 {
							return inputPixelBuf[index*4 : index*4+4]
						})
					}
				}
			})
		}

		if weightsY == nil {
			par.run(0, width, func(chunks <-chan chunk) {
				for c := range chunks {
					codec.encode(
						interm[c.start*4:c.stop*4],
						rowBytesBufOut[c.start*bpp:c.stop*bpp],
					)
				}
			})
			if _, err = dst.Write(rowBytesBufOut); err != nil {
				return fmt.Errorf("failed to write %d row bytes for y=%d: %w", len(rowBytesBufOut), yIn, err)
			}
			continue
		}

		for ; yOut != y1Out && canWriteCurrentOutputRow(); yOut += yDelta {
			ws := weightsY[yOut]
			par.run(0, width, func(chunks <-chan chunk) {
				var rgba [4]uint8
				for c := range chunks {
					for x := c.start; x < c.stop; x++ {
						convolve(ws, rgba[:], func(index int) []uint8 {
							return ringRow(index)[x*4 : x*4+4]
						})
						codec.encode(rgba[:], rowBytesBufOut[x*bpp:(x+1)*bpp])
					}
				}
			})
			if _, err = dst.Write(rowBytesBufOut); err != nil {
				return fmt.Errorf("failed to write %d row bytes for y=%d: %w", len(rowBytesBufOut), yOut, err)
			}
		}
	}
	return nil
}

// convolve blends the RGBA pixels returned by at into out, weighting by
// alpha the same way imaging does.
func convolve(ws []indexWeight, out []uint8, at func(index int) []uint8) {
	var r, g, b, a float64
	for _, w := range ws {
		p := at(w.index)
		aw := float64(p[3]) * w.weight
		r += float64(p[0]) * aw
		g += float64(p[1]) * aw
		b += float64(p[2]) * aw
		a += aw
	}
	out[0], out[1], out[2], out[3] = 0, 0, 0, 0
	if a != 0 {
		aInv := 1 / a
		out[0] = floatToByte(r * aInv)
		out[1] = floatToByte(g * aInv)
		out[2] = floatToByte(b * aInv)
		out[3] = floatToByte(a)
	}
}

func floatToByte(x float64) uint8 {
	v := int64(x + 0.5)
	if v > 255 {
		return 255
	}
	if v > 0 {
		return uint8(v)
	}
	return 0
}

// paddingBytes is the number of bytes needed to align a row to 4 bytes.
func paddingBytes(width, bytesPerPixel int) int {
	if n := 4 + -bytesPerPixel*width%4; n != 4 {
		return n
	}
	return 0
}

type resizeOptions struct {
	kernel filter.Kernel
	// size of work batches processed
	// by workers (go routines)
	pChunk int
	// parallel limit
	pLimit int
	err    error
}

func (o *resizeOptions) validate() error {
	if o.err != nil {
		return o.err
	}
	if !o.kernel.IsPoint() && o.kernel.Support <= 0 {
		return errors.New("unsupported filter, filter.Support must be larger than 0")
	}
	if o.pChunk <= 0 {
		return errors.New("invalid value for parallel batch size, must be greater than 0")
	}
	if o.pLimit < 0 {
		return errors.New("invalid value for parallel limit, must be greater or equal to 0")
	}
	return nil
}

type ResizeOption interface {
	apply(*resizeOptions)
}

type resizeOptionFunc func(*resizeOptions)

func (f resizeOptionFunc) apply(opts *resizeOptions) {
	f(opts)
}

// Resampling kernel used for resizing.
func WithResizeFilter(k filter.Kernel) ResizeOption {
	return resizeOptionFunc(func(opts *resizeOptions) {
		opts.kernel = k
	})
}

// Resampling kernel used for resizing, by name.
func WithResizeKind(kind filter.Kind) ResizeOption {
	return resizeOptionFunc(func(opts *resizeOptions) {
		if !kind.Valid() {
			opts.err = fmt.Errorf("%w: %v", filter.ErrUnknownKind, kind)
			return
		}
		opts.kernel = filter.Resolve(kind)
	})
}

// Maximum number of parallel workers (go routines).
func WithResizeParallelLimit(limit int) ResizeOption {
	return resizeOptionFunc(func(opts *resizeOptions) {
		opts.pLimit = limit
	})
}

// Number of pixels in each job that the workers
// (go routines) take on.
func WithResizeParallelBatchSize(chunk int) ResizeOption {
	return resizeOptionFunc(func(opts *resizeOptions) {
		opts.pChunk = chunk
	})
}
