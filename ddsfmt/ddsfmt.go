// Package ddsfmt implements the on-disk Microsoft DDS container: the
// classic 124-byte DDS_HEADER plus an optional DX10 extension header, and
// full-file read/write. It knows nothing about BNTX or SurfaceFormat — the
// bridge between the two lives in the root bntx package.
//
// Field names and flag/cap constants follow the layout also used by
// github.com/woozymasta/bcn's DDS support (see that module's DDSHeader and
// DDSPF*/DDSFlag*/DDSCaps* constants, exercised in the sibling
// github.com/woozymasta/edds repository) so callers already familiar with
// that surface feel at home here; ddsfmt adds the DX10 extension and
// full-file framing that bcn's DDS helpers don't provide.
package ddsfmt

// Magic is the 4-byte file signature at the start of every DDS file.
const Magic = "DDS "

// HeaderSize is the byte size of the DDS_HEADER structure (excludes magic).
const HeaderSize = 124

// PixelFormatSize is the byte size of the embedded DDS_PIXELFORMAT structure.
const PixelFormatSize = 32

// HeaderDX10Size is the byte size of the DX10 extension header.
const HeaderDX10Size = 20

// Header flags (dwFlags).
const (
	FlagCaps        = 0x1
	FlagHeight      = 0x2
	FlagWidth       = 0x4
	FlagPitch       = 0x8
	FlagPixelFormat = 0x1000
	FlagMipmapCount = 0x20000
	FlagLinearSize  = 0x80000
	FlagDepth       = 0x800000
)

// Pixel format flags (DDS_PIXELFORMAT.dwFlags).
const (
	PFAlphaPixels = 0x1
	PFFourCC      = 0x4
	PFRGB         = 0x40
	PFLuminance   = 0x20000
)

// Caps (dwCaps).
const (
	CapsComplex = 0x8
	CapsMipmap  = 0x400000
	CapsTexture = 0x1000
)

// Caps2 (dwCaps2).
const (
	Caps2Cubemap = 0x200
	Caps2Volume  = 0x200000
)

// D3D10_RESOURCE_DIMENSION values used by the DX10 header.
const (
	ResourceDimensionTexture2D = 3
	ResourceDimensionTexture3D = 4
)

// MiscFlag bit for a cubemap resource in the DX10 header.
const MiscFlagTextureCube = 0x4

// AlphaMode values for the DX10 header; BNTX never records alpha intent, so
// the bridge always writes AlphaModeUnknown (see spec Open Questions).
const AlphaModeUnknown = 0

// PixelFormat mirrors DDS_PIXELFORMAT.
type PixelFormat struct {
	Size        uint32
	Flags       uint32
	FourCC      uint32
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

// Header mirrors DDS_HEADER.
type Header struct {
	Size              uint32
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [11]uint32
	PixelFormat       PixelFormat
	Caps              uint32
	Caps2             uint32
	Caps3             uint32
	Caps4             uint32
	Reserved2         uint32
}

// HeaderDX10 mirrors the DDS DX10 extension header, present when
// Header.PixelFormat.FourCC == FourCCDX10.
type HeaderDX10 struct {
	DXGIFormat        uint32
	ResourceDimension uint32
	MiscFlag          uint32
	ArraySize         uint32
	MiscFlags2        uint32
}

// FourCCDX10 is the pixel format FourCC code signaling a DX10 extension header.
var FourCCDX10 = MakeFourCC('D', 'X', '1', '0')

// MakeFourCC packs four ASCII bytes into the little-endian uint32 FourCC
// code used throughout DDS and legacy D3DFORMAT values.
func MakeFourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// FourCCString renders a FourCC code back into its 4-character form.
func FourCCString(code uint32) string {
	return string([]byte{byte(code), byte(code >> 8), byte(code >> 16), byte(code >> 24)})
}

// Container is a full in-memory DDS file: header, optional DX10 extension,
// and the raw pixel payload (all mips/layers concatenated, as DDS stores them).
type Container struct {
	Header     Header
	HeaderDX10 *HeaderDX10
	Data       []byte
}
