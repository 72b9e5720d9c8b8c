package bntx

import (
	"image"
	"image/color"

	"github.com/woozymasta/bcn"
	"golang.org/x/image/draw"

	"github.com/switchtex/bntx/swizzle"
)

// FromImageData builds a BntxFile from already-swizzle-ready linear pixel
// bytes, following the construction procedure in §4.5.2. layerCount and
// mipmapCount must already account for cubemaps (layerCount==6) and the
// caller's desired mip chain; linear must hold exactly one layer's worth of
// mip 0 data concatenated with the rest of the mip chain, repeated per
// layer.
func FromImageData(name string, width, height, depth, mipmapCount, layerCount int, format SurfaceFormat, linear []byte) (*BntxFile, error) {
	if !format.Valid() {
		return nil, ErrUnsupportedFormat
	}
	if mipmapCount < 1 {
		mipmapCount = 1
	}
	if layerCount < 1 {
		layerCount = 1
	}

	blockDim := format.BlockDim()
	bpp := format.BytesPerPixel()

	heightBlocks := (height + blockDim.H - 1) / blockDim.H
	blockHeight := swizzle.BlockHeightMip0(heightBlocks)

	swizzled, err := swizzle.Swizzle(width, height, depth, linear, blockDim, blockHeight, bpp, mipmapCount, layerCount)
	if err != nil {
		return nil, err
	}

	dim := TextureDimension2D
	viewDim := TextureViewDimension2D
	if depth > 1 {
		dim = TextureDimension3D
		viewDim = TextureViewDimension3D
	}
	if layerCount == 6 {
		viewDim = TextureViewDimensionCube
	}

	f := &BntxFile{
		Header: BntxHeader{
			VersionMajor: 0,
			VersionMinor: 4,
			BOM:          ByteOrderLittleEndian,
			Inner: HeaderInner{
				Revision: 0x400c,
				FileName: name,
				StrSection: StrSection{
					BlockOffset: uint32(StartOfStrSection),
					Strings:     []string{name},
				},
			},
		},
		NxHeader: NxHeader{
			Count:    1,
			DictSect: DictSection{NodeCount: 1, Nodes: []DictNode{{RefBit: -1}}},
			DictSize: 0x58,
		},
	}

	mipOffsets := mipmapOffsets(width, height, depth, blockDim, blockHeight, bpp, mipmapCount)
	imageSize := 0
	for level := 0; level < mipmapCount; level++ {
		mw, mh, md := swizzle.MipDims(width, height, depth, blockDim, level)
		mbh := swizzle.MipBlockHeight(mh, blockHeight)
		imageSize += swizzle.MipSize(mw, mh, md, mbh, bpp) * layerCount
	}

	f.NxHeader.Info = BrtiSection{
		Size:             SizeOfBrti,
		Size2:            uint64(SizeOfBrti),
		Flags:            1,
		Dim:              dim,
		TileMode:         0,
		Swizzle:          0,
		MipCount:         uint16(mipmapCount),
		MultiSampleCount: 1,
		Format:           format,
		Unk2:             32,
		Width:            uint32(width),
		Height:           uint32(height),
		Depth:            uint32(depth),
		LayerCount:       uint32(layerCount),
		BlockHeightLog2:  blockHeight.Log2(),
		Unk4:             [6]uint32{65543, 0, 0, 0, 0, 0},
		ImageSize:        uint32(imageSize),
		Align:            512,
		CompSel:          84148994,
		ViewDimension:    viewDim,
		Name:             name,
		ParentAddr:       uint64(BntxHeaderSize),
		Texture: Texture{
			MipmapOffsets: mipOffsets,
			ImageData:     swizzled,
		},
	}

	f.Header.Inner.RelocTable = buildRelocationTable(f, imageSize)

	return f, nil
}

// buildRelocationTable assembles the two-section, five-entry relocation
// table the canonical writer emits (§4.5.2 step 5): one section covering
// the header/BRTI region's fixed pointers, one covering the pixel-data
// region's mip-table pointer.
func buildRelocationTable(f *BntxFile, imageSize int) RelocationTable {
	str := &f.Header.Inner.StrSection
	strSize := str.GetSize()
	dictSize := f.NxHeader.DictSect.GetSize()
	brtiStart := StartOfStrSection + strSize + dictSize
	brtiEnd := brtiStart + SizeOfBrti
	mipTableStart := brtiEnd + 0x200

	headerEntries := []RelocationEntry{
		{Position: uint32(HeaderSize + MemPoolSize), StructCount: 1, OffsetCount: 1, PaddingCount: 0},
		{Position: uint32(BntxHeaderSize + 0x0C), StructCount: 1, OffsetCount: 1, PaddingCount: 0},
		{Position: uint32(StartOfStrSection + strSize), StructCount: 1, OffsetCount: 1, PaddingCount: 0},
		{Position: uint32(brtiStart + SizeOfBrti - 0x40), StructCount: 1, OffsetCount: 1, PaddingCount: 0},
	}
	pixelEntries := []RelocationEntry{
		{Position: uint32(mipTableStart), StructCount: 1, OffsetCount: 1, PaddingCount: 0},
	}

	entries := append(append([]RelocationEntry{}, headerEntries...), pixelEntries...)

	return RelocationTable{
		Sections: []RelocationSection{
			{Pointer: 0, Position: 0, Size: uint32(brtiEnd), EntryIndex: 0, EntryCount: uint32(len(headerEntries))},
			{Pointer: uint64(mipTableStart), Position: uint32(mipTableStart), Size: uint32(StartOfTextureData + imageSize - mipTableStart), EntryIndex: uint32(len(headerEntries)), EntryCount: uint32(len(pixelEntries))},
		},
		Entries: entries,
	}
}

// mipmapOffsets computes each mip level's absolute file offset, starting at
// START_OF_TEXTURE_DATA and incrementing by the previous mip's swizzled
// size (§4.1, §4.5 step 8). The geometry mirrors swizzle.transferSurface's
// internal per-mip accounting but operates on byte counts only.
func mipmapOffsets(width, height, depth int, blockDim swizzle.BlockDim, surfaceBH swizzle.BlockHeight, bpp, mipCount int) []uint64 {
	offsets := make([]uint64, mipCount)
	offset := uint64(StartOfTextureData)
	for level := 0; level < mipCount; level++ {
		offsets[level] = offset
		mw, mh, md := swizzle.MipDims(width, height, depth, blockDim, level)
		mbh := swizzle.MipBlockHeight(mh, surfaceBH)
		offset += uint64(swizzle.MipSize(mw, mh, md, mbh, bpp))
	}
	return offsets
}

// NewFromImage builds a BntxFile from a decoded Go image, generating
// mipmapCount levels with golang.org/x/image/draw and encoding each level to
// the requested SurfaceFormat: BC1, BC2 and BC3 through
// github.com/woozymasta/bcn, the uncompressed formats by channel packing.
// Other BCn formats (BC4 to BC7) fail with ErrUnsupportedFormat. This is the
// ergonomic counterpart to FromImageData for callers that start from an
// image.Image rather than raw linear pixel bytes.
func NewFromImage(name string, img image.Image, format SurfaceFormat, mipmapCount int) (*BntxFile, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, ErrUnsupportedFormat
	}
	if mipmapCount < 1 {
		mipmapCount = 1
	}

	levels := generateMipChain(img, mipmapCount)

	var linear []byte
	for _, lvl := range levels {
		enc, err := encodeLevel(lvl, format)
		if err != nil {
			return nil, err
		}
		linear = append(linear, enc...)
	}

	return FromImageData(name, width, height, 1, mipmapCount, 1, format, linear)
}

// generateMipChain downsamples img into count progressively halved levels
// (each dimension at least 1) with the draw.CatmullRom resampler, each level
// scaled from the previous one.
func generateMipChain(img image.Image, count int) []image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	levels := make([]image.Image, 0, count)
	levels = append(levels, img)
	for i := 1; i < count; i++ {
		w = max(1, w/2)
		h = max(1, h/2)
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), levels[i-1], levels[i-1].Bounds(), draw.Over, nil)
		levels = append(levels, dst)
	}
	return levels
}

// encodeLevel converts one mip level into the format's linear byte
// encoding: BCn compression via bcn.EncodeImageWithOptions for
// block-compressed formats, manual channel packing otherwise.
func encodeLevel(img image.Image, format SurfaceFormat) ([]byte, error) {
	if bf, ok := bcnFormat(format); ok {
		data, _, _, err := bcn.EncodeImageWithOptions(img, bf, nil)
		return data, err
	}
	return encodeUncompressed(img, format)
}

func encodeUncompressed(img image.Image, format SurfaceFormat) ([]byte, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	raw := make([]byte, 0, w*h*format.BytesPerPixel())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			switch format {
			case FormatR8Unorm:
				raw = append(raw, c.R)
			case FormatR8G8B8A8Unorm, FormatR8G8B8A8Srgb:
				raw = append(raw, c.R, c.G, c.B, c.A)
			case FormatB8G8R8A8Unorm, FormatB8G8R8A8Srgb:
				raw = append(raw, c.B, c.G, c.R, c.A)
			default:
				return nil, ErrUnsupportedFormat
			}
		}
	}
	return raw, nil
}

// bcnFormat maps a SurfaceFormat to the bcn package's own format
// enumeration, for the subset this package compresses.
func bcnFormat(f SurfaceFormat) (bcn.Format, bool) {
	switch f {
	case FormatBC1Unorm, FormatBC1Srgb:
		return bcn.FormatDXT1, true
	case FormatBC2Unorm, FormatBC2Srgb:
		return bcn.FormatDXT3, true
	case FormatBC3Unorm, FormatBC3Srgb:
		return bcn.FormatDXT5, true
	default:
		return bcn.FormatUnknown, false
	}
}
