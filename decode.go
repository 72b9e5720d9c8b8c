package bntx

import (
	"image"
	"image/color"
	"io"

	"github.com/woozymasta/bcn"

	"github.com/switchtex/bntx/swizzle"
)

// Decode reads a BNTX stream and returns its first mip level (layer 0) as
// an image.Image. It implements the signature required by
// image.RegisterFormat, matching the img subpackage's registration.
func Decode(r io.Reader) (image.Image, error) {
	seeker, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return decodeBuffered(data)
	}

	f, err := Read(seeker)
	if err != nil {
		return nil, err
	}
	return decodeFirstMip(f)
}

func decodeBuffered(data []byte) (image.Image, error) {
	f, err := ReadBytes(data)
	if err != nil {
		return nil, err
	}
	return decodeFirstMip(f)
}

// DecodeConfig reads only the dimensions and color model of a BNTX stream's
// first mip level. It implements the signature required by
// image.RegisterFormat.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var f *BntxFile
	var err error

	if seeker, ok := r.(io.ReadSeeker); ok {
		f, err = Read(seeker)
	} else {
		var data []byte
		data, err = io.ReadAll(r)
		if err == nil {
			f, err = ReadBytes(data)
		}
	}
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(f.Width()),
		Height:     int(f.Height()),
	}, nil
}

// decodeFirstMip deswizzles the whole surface and returns mip 0, layer 0 as
// an image.Image: BC1, BC2 and BC3 decode through github.com/woozymasta/bcn,
// uncompressed formats unpack channel-by-channel, and the other BCn formats
// (BC4 to BC7) fail with ErrUnsupportedFormat.
func decodeFirstMip(f *BntxFile) (image.Image, error) {
	brti := &f.NxHeader.Info

	blockDim := brti.Format.BlockDim()
	bpp := brti.Format.BytesPerPixel()
	blockHeight, err := brti.BlockHeight()
	if err != nil {
		return nil, err
	}

	linear, err := swizzle.Deswizzle(
		int(brti.Width), int(brti.Height), int(brti.Depth),
		brti.Texture.ImageData, blockDim, blockHeight, bpp,
		int(brti.MipCount), int(brti.LayerCount),
	)
	if err != nil {
		return nil, err
	}

	width, height := int(brti.Width), int(brti.Height)

	if bf, ok := bcnFormat(brti.Format); ok {
		mipSize := ((width + 3) / 4) * ((height + 3) / 4) * bpp
		return bcn.DecodeImage(linear[:mipSize], width, height, bf)
	}
	return decodeUncompressedImage(linear, width, height, brti.Format)
}

func decodeUncompressedImage(linear []byte, width, height int, format SurfaceFormat) (image.Image, error) {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	bpp := format.BytesPerPixel()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			off := (y*width + x) * bpp
			if off+bpp > len(linear) {
				return nil, ErrSizeMismatch
			}
			px := linear[off : off+bpp]

			var c color.NRGBA
			switch format {
			case FormatR8Unorm:
				c = color.NRGBA{R: px[0], G: px[0], B: px[0], A: 255}
			case FormatR8G8B8A8Unorm, FormatR8G8B8A8Srgb:
				c = color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
			case FormatB8G8R8A8Unorm, FormatB8G8R8A8Srgb:
				c = color.NRGBA{R: px[2], G: px[1], B: px[0], A: px[3]}
			default:
				return nil, ErrUnsupportedFormat
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img, nil
}
