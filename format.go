package bntx

import (
	"fmt"

	"github.com/switchtex/bntx/ddsfmt"
	"github.com/switchtex/bntx/swizzle"
)

// SurfaceFormat is a BNTX texture pixel format code. Wire-stable u32 values
// match the BRTI `format` field on disk.
type SurfaceFormat uint32

// Surface formats supported by this package (spec §6.1).
const (
	FormatR8Unorm       SurfaceFormat = 0x0201
	FormatR8G8B8A8Unorm SurfaceFormat = 0x0B01
	FormatR8G8B8A8Srgb  SurfaceFormat = 0x0B06
	FormatB8G8R8A8Unorm SurfaceFormat = 0x0C01
	FormatB8G8R8A8Srgb  SurfaceFormat = 0x0C06
	FormatBC1Unorm      SurfaceFormat = 0x1A01
	FormatBC1Srgb       SurfaceFormat = 0x1A06
	FormatBC2Unorm      SurfaceFormat = 0x1B01
	FormatBC2Srgb       SurfaceFormat = 0x1B06
	FormatBC3Unorm      SurfaceFormat = 0x1C01
	FormatBC3Srgb       SurfaceFormat = 0x1C06
	FormatBC4Unorm      SurfaceFormat = 0x1D01
	FormatBC4Snorm      SurfaceFormat = 0x1D02
	FormatBC5Unorm      SurfaceFormat = 0x1E01
	FormatBC5Snorm      SurfaceFormat = 0x1E02
	FormatBC6Sfloat     SurfaceFormat = 0x1F05
	FormatBC6Ufloat     SurfaceFormat = 0x1F0A
	FormatBC7Unorm      SurfaceFormat = 0x2001
	FormatBC7Srgb       SurfaceFormat = 0x2006
)

// DXGI_FORMAT numeric codes for the formats above.
const (
	dxgiR8Unorm       = 61
	dxgiR8G8B8A8Unorm = 28
	dxgiR8G8B8A8Srgb  = 29
	dxgiB8G8R8A8Unorm = 87
	dxgiB8G8R8A8Srgb  = 91
	dxgiBC1Unorm      = 71
	dxgiBC1Srgb       = 72
	dxgiBC2Unorm      = 74
	dxgiBC2Srgb       = 75
	dxgiBC3Unorm      = 77
	dxgiBC3Srgb       = 78
	dxgiBC4Unorm      = 80
	dxgiBC4Snorm      = 81
	dxgiBC5Unorm      = 83
	dxgiBC5Snorm      = 84
	dxgiBC6Ufloat     = 95
	dxgiBC6Sfloat     = 96
	dxgiBC7Unorm      = 98
	dxgiBC7Srgb       = 99
)

// BytesPerPixel returns the size, in bytes, of one pixel (uncompressed
// formats) or one compressed block (BCn formats).
func (f SurfaceFormat) BytesPerPixel() int {
	switch f {
	case FormatR8Unorm:
		return 1
	case FormatR8G8B8A8Unorm, FormatR8G8B8A8Srgb, FormatB8G8R8A8Unorm, FormatB8G8R8A8Srgb:
		return 4
	case FormatBC1Unorm, FormatBC1Srgb, FormatBC4Unorm, FormatBC4Snorm:
		return 8
	case FormatBC2Unorm, FormatBC2Srgb, FormatBC3Unorm, FormatBC3Srgb,
		FormatBC5Unorm, FormatBC5Snorm, FormatBC6Sfloat, FormatBC6Ufloat,
		FormatBC7Unorm, FormatBC7Srgb:
		return 16
	default:
		return 0
	}
}

// BlockDim returns the compressed-block footprint of this format: (1,1,1)
// for uncompressed formats, (4,4,1) for BCn formats.
func (f SurfaceFormat) BlockDim() swizzle.BlockDim {
	if f.isBCn() {
		return swizzle.Block4x4()
	}
	return swizzle.Uncompressed()
}

func (f SurfaceFormat) isBCn() bool {
	switch f {
	case FormatBC1Unorm, FormatBC1Srgb, FormatBC2Unorm, FormatBC2Srgb,
		FormatBC3Unorm, FormatBC3Srgb, FormatBC4Unorm, FormatBC4Snorm,
		FormatBC5Unorm, FormatBC5Snorm, FormatBC6Sfloat, FormatBC6Ufloat,
		FormatBC7Unorm, FormatBC7Srgb:
		return true
	default:
		return false
	}
}

// Valid reports whether f is one of the enumerated SurfaceFormat values.
func (f SurfaceFormat) Valid() bool {
	return f.BytesPerPixel() != 0
}

// String returns the format's symbolic name, e.g. "BC7Unorm".
func (f SurfaceFormat) String() string {
	switch f {
	case FormatR8Unorm:
		return "R8Unorm"
	case FormatR8G8B8A8Unorm:
		return "R8G8B8A8Unorm"
	case FormatR8G8B8A8Srgb:
		return "R8G8B8A8Srgb"
	case FormatB8G8R8A8Unorm:
		return "B8G8R8A8Unorm"
	case FormatB8G8R8A8Srgb:
		return "B8G8R8A8Srgb"
	case FormatBC1Unorm:
		return "BC1Unorm"
	case FormatBC1Srgb:
		return "BC1Srgb"
	case FormatBC2Unorm:
		return "BC2Unorm"
	case FormatBC2Srgb:
		return "BC2Srgb"
	case FormatBC3Unorm:
		return "BC3Unorm"
	case FormatBC3Srgb:
		return "BC3Srgb"
	case FormatBC4Unorm:
		return "BC4Unorm"
	case FormatBC4Snorm:
		return "BC4Snorm"
	case FormatBC5Unorm:
		return "BC5Unorm"
	case FormatBC5Snorm:
		return "BC5Snorm"
	case FormatBC6Sfloat:
		return "BC6Sfloat"
	case FormatBC6Ufloat:
		return "BC6Ufloat"
	case FormatBC7Unorm:
		return "BC7Unorm"
	case FormatBC7Srgb:
		return "BC7Srgb"
	default:
		return fmt.Sprintf("SurfaceFormat(0x%04X)", uint32(f))
	}
}

// ParseSurfaceFormat converts a symbolic name back into a SurfaceFormat.
func ParseSurfaceFormat(s string) (SurfaceFormat, bool) {
	for _, f := range allSurfaceFormats {
		if f.String() == s {
			return f, true
		}
	}
	return 0, false
}

var allSurfaceFormats = []SurfaceFormat{
	FormatR8Unorm, FormatR8G8B8A8Unorm, FormatR8G8B8A8Srgb,
	FormatB8G8R8A8Unorm, FormatB8G8R8A8Srgb,
	FormatBC1Unorm, FormatBC1Srgb, FormatBC2Unorm, FormatBC2Srgb,
	FormatBC3Unorm, FormatBC3Srgb, FormatBC4Unorm, FormatBC4Snorm,
	FormatBC5Unorm, FormatBC5Snorm, FormatBC6Sfloat, FormatBC6Ufloat,
	FormatBC7Unorm, FormatBC7Srgb,
}

// DXGIFormat returns the DXGI_FORMAT code for f. The mapping is total:
// every enumerated SurfaceFormat has a DXGI equivalent.
func (f SurfaceFormat) DXGIFormat() uint32 {
	switch f {
	case FormatR8Unorm:
		return dxgiR8Unorm
	case FormatR8G8B8A8Unorm:
		return dxgiR8G8B8A8Unorm
	case FormatR8G8B8A8Srgb:
		return dxgiR8G8B8A8Srgb
	case FormatB8G8R8A8Unorm:
		return dxgiB8G8R8A8Unorm
	case FormatB8G8R8A8Srgb:
		return dxgiB8G8R8A8Srgb
	case FormatBC1Unorm:
		return dxgiBC1Unorm
	case FormatBC1Srgb:
		return dxgiBC1Srgb
	case FormatBC2Unorm:
		return dxgiBC2Unorm
	case FormatBC2Srgb:
		return dxgiBC2Srgb
	case FormatBC3Unorm:
		return dxgiBC3Unorm
	case FormatBC3Srgb:
		return dxgiBC3Srgb
	case FormatBC4Unorm:
		return dxgiBC4Unorm
	case FormatBC4Snorm:
		return dxgiBC4Snorm
	case FormatBC5Unorm:
		return dxgiBC5Unorm
	case FormatBC5Snorm:
		return dxgiBC5Snorm
	case FormatBC6Ufloat:
		return dxgiBC6Ufloat
	case FormatBC6Sfloat:
		return dxgiBC6Sfloat
	case FormatBC7Unorm:
		return dxgiBC7Unorm
	case FormatBC7Srgb:
		return dxgiBC7Srgb
	default:
		return 0
	}
}

// FromDXGIFormat resolves a DXGI_FORMAT code to a SurfaceFormat.
func FromDXGIFormat(code uint32) (SurfaceFormat, error) {
	switch code {
	case dxgiR8Unorm:
		return FormatR8Unorm, nil
	case dxgiR8G8B8A8Unorm:
		return FormatR8G8B8A8Unorm, nil
	case dxgiR8G8B8A8Srgb:
		return FormatR8G8B8A8Srgb, nil
	case dxgiB8G8R8A8Unorm:
		return FormatB8G8R8A8Unorm, nil
	case dxgiB8G8R8A8Srgb:
		return FormatB8G8R8A8Srgb, nil
	case dxgiBC1Unorm:
		return FormatBC1Unorm, nil
	case dxgiBC1Srgb:
		return FormatBC1Srgb, nil
	case dxgiBC2Unorm:
		return FormatBC2Unorm, nil
	case dxgiBC2Srgb:
		return FormatBC2Srgb, nil
	case dxgiBC3Unorm:
		return FormatBC3Unorm, nil
	case dxgiBC3Srgb:
		return FormatBC3Srgb, nil
	case dxgiBC4Unorm:
		return FormatBC4Unorm, nil
	case dxgiBC4Snorm:
		return FormatBC4Snorm, nil
	case dxgiBC5Unorm:
		return FormatBC5Unorm, nil
	case dxgiBC5Snorm:
		return FormatBC5Snorm, nil
	case dxgiBC6Ufloat:
		return FormatBC6Ufloat, nil
	case dxgiBC6Sfloat:
		return FormatBC6Sfloat, nil
	case dxgiBC7Unorm:
		return FormatBC7Unorm, nil
	case dxgiBC7Srgb:
		return FormatBC7Srgb, nil
	default:
		return 0, fmt.Errorf("%w: DXGI format %d", ErrUnsupportedDDSFormat, code)
	}
}

// Legacy D3DFORMAT values for the BC1-5 family: for these formats the
// non-extended D3DFORMAT enum shares its numeric value with the FourCC code.
var (
	d3dDXT1 = ddsfmt.MakeFourCC('D', 'X', 'T', '1')
	d3dDXT2 = ddsfmt.MakeFourCC('D', 'X', 'T', '2')
	d3dDXT3 = ddsfmt.MakeFourCC('D', 'X', 'T', '3')
	d3dDXT4 = ddsfmt.MakeFourCC('D', 'X', 'T', '4')
	d3dDXT5 = ddsfmt.MakeFourCC('D', 'X', 'T', '5')
)

// FromD3DFormat resolves a legacy D3DFORMAT code to a SurfaceFormat,
// following the legacy DXTn -> BCn mapping (spec §4.2): DXT1 -> BC1Unorm;
// DXT2, DXT3 -> BC2Unorm; DXT4, DXT5 -> BC3Unorm. This loses the
// "pre-multiplied alpha" distinction DXT2/DXT4 encode relative to DXT3/DXT5
// (see DESIGN.md).
func FromD3DFormat(code uint32) (SurfaceFormat, error) {
	switch code {
	case d3dDXT1:
		return FormatBC1Unorm, nil
	case d3dDXT2, d3dDXT3:
		return FormatBC2Unorm, nil
	case d3dDXT4, d3dDXT5:
		return FormatBC3Unorm, nil
	default:
		return 0, fmt.Errorf("%w: D3D format 0x%08X", ErrUnsupportedDDSFormat, code)
	}
}

// FourCC codes recognized beyond the D3DFORMAT legacy set: BC4/BC5 variants
// that have no dedicated D3DFORMAT enumerant and are only ever seen as a
// raw FourCC string.
var (
	fourCCBC4U = ddsfmt.MakeFourCC('B', 'C', '4', 'U')
	fourCCBC4S = ddsfmt.MakeFourCC('B', 'C', '4', 'S')
	fourCCATI2 = ddsfmt.MakeFourCC('A', 'T', 'I', '2')
	fourCCBC5U = ddsfmt.MakeFourCC('B', 'C', '5', 'U')
	fourCCBC5S = ddsfmt.MakeFourCC('B', 'C', '5', 'S')
)

// FromFourCC resolves a raw FourCC code to a SurfaceFormat.
func FromFourCC(code uint32) (SurfaceFormat, error) {
	switch code {
	case fourCCBC4U:
		return FormatBC4Unorm, nil
	case fourCCBC4S:
		return FormatBC4Snorm, nil
	case fourCCATI2, fourCCBC5U:
		return FormatBC5Unorm, nil
	case fourCCBC5S:
		return FormatBC5Snorm, nil
	default:
		return 0, fmt.Errorf("%w: FourCC %q", ErrUnsupportedDDSFormat, ddsfmt.FourCCString(code))
	}
}

// ResolveDDSFormat determines the SurfaceFormat of a DDS file by trying, in
// order, the DX10 DXGI format, the legacy D3DFORMAT field, then the raw
// FourCC code. The first match wins; absence of all three is an error.
func ResolveDDSFormat(hdr ddsfmt.Header, dx10 *ddsfmt.HeaderDX10) (SurfaceFormat, error) {
	if dx10 != nil {
		return FromDXGIFormat(dx10.DXGIFormat)
	}

	if hdr.PixelFormat.Flags&ddsfmt.PFFourCC == 0 {
		return 0, fmt.Errorf("%w: no DX10 header and no FourCC pixel format", ErrUnsupportedDDSFormat)
	}

	if f, err := FromD3DFormat(hdr.PixelFormat.FourCC); err == nil {
		return f, nil
	}
	return FromFourCC(hdr.PixelFormat.FourCC)
}
