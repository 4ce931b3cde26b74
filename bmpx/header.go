// Package bmpx resizes uncompressed BMP images as a stream, holding only the
// rows the vertical resampling kernel spans in memory.
package bmpx

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io"
)

var (
	ErrInvalidFormat = errors.New("bmp: invalid format")
	ErrUnsupported   = errors.New("bmp: unsupported")
)

// We only support those BMP images with one of the following DIB headers:
// - BITMAPINFOHEADER (40 bytes)
// - BITMAPV4HEADER (108 bytes)
// - BITMAPV5HEADER (124 bytes)
const (
	fileHeaderLen   = 14
	infoHeaderLen   = 40
	v4InfoHeaderLen = 108
	v5InfoHeaderLen = 124
)

type Header struct {
	Config       image.Config
	BitsPerPixel int
	TopDown      bool
	AllowAlpha   bool
	// HeaderBytes holds everything before the pixel array, palette
	// included, so it can be rewritten for the output image.
	HeaderBytes []byte
	ImageOffset uint32
}

// setSize rewrites the file size, image size and dimensions in the raw
// header for an image of the given size stored at bytesPerPixel.
func (h *Header) setSize(width, height, bytesPerPixel int) {
	le := binary.LittleEndian
	imageSize := (bytesPerPixel*width + paddingBytes(width, bytesPerPixel)) * height
	le.PutUint32(h.HeaderBytes[2:6], uint32(imageSize+len(h.HeaderBytes)))
	le.PutUint32(h.HeaderBytes[18:22], uint32(width))
	height32 := int32(height)
	if h.TopDown {
		height32 = -height32
	}
	le.PutUint32(h.HeaderBytes[22:26], uint32(height32))
	le.PutUint32(h.HeaderBytes[34:38], uint32(imageSize))
}

// DecodeHeader reads the BMP file and info headers, and the palette for
// 8-bit images, leaving r positioned at the first pixel row.
//
// Adapted from golang.org/x/image/bmp. Unlike that implementation the raw
// header bytes are retained so they can be re-written for the output image.
func DecodeHeader(r io.Reader) (Header, error) {
	var (
		res Header
		b   [2048]byte
		le  = binary.LittleEndian
	)
	if _, err := io.ReadFull(r, b[:fileHeaderLen+4]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return Header{}, err
	}
	if string(b[:2]) != "BM" {
		return Header{}, ErrInvalidFormat
	}
	offset := le.Uint32(b[10:14])
	infoLen := le.Uint32(b[14:18])
	if infoLen != infoHeaderLen && infoLen != v4InfoHeaderLen && infoLen != v5InfoHeaderLen {
		return Header{}, ErrUnsupported
	}
	if offset < fileHeaderLen+infoLen || int(offset) > len(b) {
		return Header{}, ErrUnsupported
	}
	res.ImageOffset = offset
	res.HeaderBytes = b[:offset]
	if _, err := io.ReadFull(r, b[fileHeaderLen+4:fileHeaderLen+infoLen]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return Header{}, err
	}
	width := int(int32(le.Uint32(b[18:22])))
	height := int(int32(le.Uint32(b[22:26])))
	if height < 0 {
		height, res.TopDown = -height, true
	}
	if width < 0 || height < 0 {
		return Header{}, ErrUnsupported
	}
	// We only support 1 plane and 8, 24 or 32 bits per pixel and no
	// compression.
	planes := le.Uint16(b[26:28])
	bpp := le.Uint16(b[28:30])
	compression := le.Uint32(b[30:34])
	// BI_BITFIELDS with the default masks is the same as BI_RGB.
	if compression == 3 && infoLen > infoHeaderLen &&
		le.Uint32(b[54:58]) == 0xff0000 && le.Uint32(b[58:62]) == 0xff00 &&
		le.Uint32(b[62:66]) == 0xff && le.Uint32(b[66:70]) == 0xff000000 {
		compression = 0
	}
	if planes != 1 || compression != 0 {
		return Header{}, ErrUnsupported
	}
	switch bpp {
	case 8:
		if offset != fileHeaderLen+infoLen+256*4 {
			return Header{}, ErrUnsupported
		}
		pre := fileHeaderLen + int(infoLen)
		if _, err := io.ReadFull(r, b[pre:pre+256*4]); err != nil {
			return Header{}, err
		}
		pcm := make(color.Palette, 256)
		for i := range pcm {
			// BMP images are stored in BGR order rather than RGB order.
			// Every 4th byte is padding.
			pcm[i] = color.RGBA{b[pre+4*i+2], b[pre+4*i+1], b[pre+4*i+0], 0xFF}
		}
		res.Config = image.Config{ColorModel: pcm, Width: width, Height: height}
		res.BitsPerPixel = 8
		return res, nil
	case 24:
		if offset != fileHeaderLen+infoLen {
			return Header{}, ErrUnsupported
		}
		res.Config = image.Config{ColorModel: color.RGBAModel, Width: width, Height: height}
		res.BitsPerPixel = 24
		return res, nil
	case 32:
		if offset != fileHeaderLen+infoLen {
			return Header{}, ErrUnsupported
		}
		// 32 bits per pixel is RGBX or RGBA. Alpha is only honored for the
		// V4 and V5 headers, which carry an alpha mask; Windows V3
		// (BITMAPINFOHEADER) images are treated as opaque.
		res.AllowAlpha = infoLen > infoHeaderLen
		res.Config = image.Config{ColorModel: color.RGBAModel, Width: width, Height: height}
		res.BitsPerPixel = 32
		return res, nil
	}
	return Header{}, ErrUnsupported
}
