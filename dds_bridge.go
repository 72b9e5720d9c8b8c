package bntx

import (
	"github.com/switchtex/bntx/ddsfmt"
	"github.com/switchtex/bntx/swizzle"
)

// ToDDS converts a BntxFile into a DDS container with a DX10 (DXGI) header,
// per §4.6. The pixel payload is deswizzled so DDS's contiguous per-mip
// layout is satisfied.
func ToDDS(f *BntxFile) (*ddsfmt.Container, error) {
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

	isCubemap := f.IsCubemap()
	isVolume := brti.Depth > 1

	flags := uint32(ddsfmt.FlagCaps | ddsfmt.FlagHeight | ddsfmt.FlagWidth | ddsfmt.FlagPixelFormat)
	if brti.MipCount > 1 {
		flags |= ddsfmt.FlagMipmapCount
	}
	if isVolume {
		flags |= ddsfmt.FlagDepth
	}

	caps := uint32(ddsfmt.CapsTexture)
	if brti.MipCount > 1 || isCubemap {
		caps |= ddsfmt.CapsComplex | ddsfmt.CapsMipmap
	}

	caps2 := uint32(0)
	if isVolume {
		caps2 |= ddsfmt.Caps2Volume
	}
	if isCubemap {
		caps2 |= ddsfmt.Caps2Cubemap
	}

	resourceDim := ddsfmt.ResourceDimensionTexture2D
	if isVolume {
		resourceDim = ddsfmt.ResourceDimensionTexture3D
	}

	arraySize := brti.LayerCount
	miscFlags := uint32(0)
	if isCubemap {
		arraySize = brti.LayerCount / 6
		miscFlags = ddsfmt.MiscFlagTextureCube
	}

	hdr := ddsfmt.Header{
		Size:        ddsfmt.HeaderSize,
		Flags:       flags,
		Height:      brti.Height,
		Width:       brti.Width,
		Depth:       brti.Depth,
		MipMapCount: uint32(brti.MipCount),
		Caps:        caps,
		Caps2:       caps2,
	}
	hdr.PixelFormat.Size = ddsfmt.PixelFormatSize
	hdr.PixelFormat.Flags = ddsfmt.PFFourCC
	hdr.PixelFormat.FourCC = ddsfmt.FourCCDX10

	dx10 := &ddsfmt.HeaderDX10{
		DXGIFormat:        brti.Format.DXGIFormat(),
		ResourceDimension: uint32(resourceDim),
		MiscFlag:          miscFlags,
		ArraySize:         arraySize,
		MiscFlags2:        ddsfmt.AlphaModeUnknown,
	}

	return &ddsfmt.Container{Header: hdr, HeaderDX10: dx10, Data: linear}, nil
}

// FromDDS builds a BntxFile from a decoded DDS container, per §4.6. The
// SurfaceFormat is resolved by the DXGI -> D3D -> FourCC precedence chain;
// the DDS pixel payload (linear) is handed to FromImageData.
func FromDDS(name string, dds *ddsfmt.Container) (*BntxFile, error) {
	format, err := ResolveDDSFormat(dds.Header, dds.HeaderDX10)
	if err != nil {
		return nil, err
	}

	width := int(dds.Header.Width)
	height := int(dds.Header.Height)
	depth := 1
	if dds.Header.Flags&ddsfmt.FlagDepth != 0 && dds.Header.Depth > 0 {
		depth = int(dds.Header.Depth)
	}

	mipCount := 1
	if dds.Header.Flags&ddsfmt.FlagMipmapCount != 0 && dds.Header.MipMapCount > 0 {
		mipCount = int(dds.Header.MipMapCount)
	}

	layerCount := 1
	isCubemap := dds.Header.Caps2&ddsfmt.Caps2Cubemap != 0
	if dds.HeaderDX10 != nil {
		layerCount = int(dds.HeaderDX10.ArraySize)
		if layerCount < 1 {
			layerCount = 1
		}
	}
	if isCubemap {
		layerCount *= 6
	}

	return FromImageData(name, width, height, depth, mipCount, layerCount, format, dds.Data)
}
