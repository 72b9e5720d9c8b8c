package bntx

import "github.com/switchtex/bntx/swizzle"

// ByteOrder is the BNTX byte-order marker: 0xFFFE selects little-endian,
// 0xFEFF selects big-endian. Only little-endian is supported: the Writer
// always emits it and the Reader rejects any other marker.
type ByteOrder uint16

// Byte-order marker values.
const (
	ByteOrderLittleEndian ByteOrder = 0xFFFE
	ByteOrderBigEndian    ByteOrder = 0xFEFF
)

// TextureDimension is the BRTI `dim` field.
type TextureDimension uint8

// Texture dimension values.
const (
	TextureDimension1D TextureDimension = 1
	TextureDimension2D TextureDimension = 2
	TextureDimension3D TextureDimension = 3
)

// TextureViewDimension is the BRTI `texture_view_dimension` field.
type TextureViewDimension uint32

// Texture view dimension values.
const (
	TextureViewDimension1D   TextureViewDimension = 0
	TextureViewDimension2D   TextureViewDimension = 1
	TextureViewDimension3D   TextureViewDimension = 2
	TextureViewDimensionCube TextureViewDimension = 3
)

// BntxFile is the root of the in-memory Binary Model: one BntxHeader and
// one NxHeader, owning their own string and byte buffers. It is treated as
// read-only by the Writer and DDS Bridge; construct one via Read,
// FromImageData, or NewFromImage.
type BntxFile struct {
	Header   BntxHeader
	NxHeader NxHeader
}

// BntxHeader is the outermost BNTX section: magic "BNTX", a version pair, a
// byte-order marker, and the inner header fields that depend on it.
type BntxHeader struct {
	VersionMajor uint16
	VersionMinor uint16
	BOM          ByteOrder
	Inner        HeaderInner
}

// HeaderInner holds the fields that follow the byte-order marker: revision,
// file name (stored both as a pooled string and this copy), the string
// pool, and the relocation table.
type HeaderInner struct {
	Revision    uint16
	FileName    string
	StrSection  StrSection
	RelocTable  RelocationTable
}

// NxHeader is the "NX  " section: a texture count (always 1 for a single
// BntxFile), the per-texture BRTI record, and the dictionary section.
type NxHeader struct {
	Count     uint32
	Info      BrtiSection
	DictSect  DictSection
	DictSize  uint64
}

// BrtiSection is the per-texture information record.
type BrtiSection struct {
	Size                 uint32
	Size2                uint64
	Flags                uint8
	Dim                  TextureDimension
	TileMode             uint16
	Swizzle              uint16
	MipCount             uint16
	MultiSampleCount     uint32
	Format               SurfaceFormat
	Unk2                 uint32
	Width                uint32
	Height               uint32
	Depth                uint32
	LayerCount           uint32
	BlockHeightLog2      uint32
	Unk4                 [6]uint32
	ImageSize            uint32
	Align                uint32
	CompSel              uint32
	ViewDimension        TextureViewDimension
	Name                 string
	ParentAddr           uint64
	Texture              Texture

	// texturePtr is the resolved absolute address of the mipmap offset
	// table, set by the Reader while parsing the tail-pointer block and
	// consumed immediately afterward; it carries no meaning once Texture
	// is populated.
	texturePtr int64
}

// BlockHeight returns the swizzle.BlockHeight this BRTI's block_height_log2
// field encodes.
func (b *BrtiSection) BlockHeight() (swizzle.BlockHeight, error) {
	return swizzle.BlockHeightFromLog2(b.BlockHeightLog2)
}

// Texture holds one texture's mipmap offset table and raw swizzled bytes.
type Texture struct {
	// MipmapOffsets are absolute file offsets to each mip level, length ==
	// mipmap count.
	MipmapOffsets []uint64
	// ImageData is the swizzled image bytes for all mips and layers,
	// starting at MipmapOffsets[0].
	ImageData []byte
}

// Name returns the texture's pooled name.
func (f *BntxFile) Name() string { return f.NxHeader.Info.Name }

// Width, Height, Depth, LayerCount, and MipmapCount return the
// corresponding BRTI scalar fields.
func (f *BntxFile) Width() uint32       { return f.NxHeader.Info.Width }
func (f *BntxFile) Height() uint32      { return f.NxHeader.Info.Height }
func (f *BntxFile) Depth() uint32       { return f.NxHeader.Info.Depth }
func (f *BntxFile) LayerCount() uint32  { return f.NxHeader.Info.LayerCount }
func (f *BntxFile) MipmapCount() uint16 { return f.NxHeader.Info.MipCount }

// Format returns the texture's SurfaceFormat.
func (f *BntxFile) Format() SurfaceFormat { return f.NxHeader.Info.Format }

// ImageData returns the raw swizzled bytes for all mips and layers.
func (f *BntxFile) ImageData() []byte { return f.NxHeader.Info.Texture.ImageData }

// IsCubemap reports whether the texture is a 6-layer cubemap (spec §3.2).
func (f *BntxFile) IsCubemap() bool { return f.LayerCount() == 6 }
