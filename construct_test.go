package bntx

import (
	"image"
	"image/color"
	"testing"

	"github.com/switchtex/bntx/swizzle"
)

func TestFromImageDataInvalidFormat(t *testing.T) {
	_, err := FromImageData("bad", 4, 4, 1, 1, 1, SurfaceFormat(0xFFFF), []byte{1, 2, 3, 4})
	if err == nil {
		t.Fatal("expected an error for an unrecognized SurfaceFormat")
	}
}

func TestFromImageDataDefaultsMipAndLayerCounts(t *testing.T) {
	format := FormatR8Unorm
	linear := make([]byte, 4*4)
	f, err := FromImageData("defaults", 4, 4, 1, 0, 0, format, linear)
	if err != nil {
		t.Fatalf("FromImageData: %v", err)
	}
	if f.MipmapCount() != 1 {
		t.Errorf("MipmapCount() = %d, want 1", f.MipmapCount())
	}
	if f.LayerCount() != 1 {
		t.Errorf("LayerCount() = %d, want 1", f.LayerCount())
	}
}

func TestFromImageDataViewDimension(t *testing.T) {
	format := FormatR8Unorm

	flat, err := FromImageData("flat", 4, 4, 1, 1, 1, format, make([]byte, 16))
	if err != nil {
		t.Fatalf("FromImageData (2D): %v", err)
	}
	if flat.NxHeader.Info.ViewDimension != TextureViewDimension2D {
		t.Errorf("2D ViewDimension = %v, want %v", flat.NxHeader.Info.ViewDimension, TextureViewDimension2D)
	}

	volume, err := FromImageData("volume", 4, 4, 2, 1, 1, format, make([]byte, 32))
	if err != nil {
		t.Fatalf("FromImageData (3D): %v", err)
	}
	if volume.NxHeader.Info.Dim != TextureDimension3D {
		t.Errorf("3D Dim = %v, want %v", volume.NxHeader.Info.Dim, TextureDimension3D)
	}
	if volume.NxHeader.Info.ViewDimension != TextureViewDimension3D {
		t.Errorf("3D ViewDimension = %v, want %v", volume.NxHeader.Info.ViewDimension, TextureViewDimension3D)
	}

	cube, err := FromImageData("cube", 4, 4, 1, 1, 6, format, make([]byte, 16*6))
	if err != nil {
		t.Fatalf("FromImageData (cube): %v", err)
	}
	if cube.NxHeader.Info.ViewDimension != TextureViewDimensionCube {
		t.Errorf("cube ViewDimension = %v, want %v", cube.NxHeader.Info.ViewDimension, TextureViewDimensionCube)
	}
}

func TestBcnFormatMapping(t *testing.T) {
	cases := []struct {
		format SurfaceFormat
		ok     bool
	}{
		{FormatBC1Unorm, true},
		{FormatBC2Srgb, true},
		{FormatBC3Unorm, true},
		{FormatR8Unorm, false},
		{FormatBC7Unorm, false}, // not in this package's encode subset
	}
	for _, c := range cases {
		_, ok := bcnFormat(c.format)
		if ok != c.ok {
			t.Errorf("bcnFormat(%v) ok = %v, want %v", c.format, ok, c.ok)
		}
	}
}

// TestNewFromImageUncompressed exercises the image.Image convenience
// constructor with an uncompressed format, avoiding the BCn encode path so
// this test doesn't depend on a third-party codec's exact output bytes.
func TestNewFromImageUncompressed(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 5, A: 255})
		}
	}

	f, err := NewFromImage("mip_tex", img, FormatR8G8B8A8Unorm, 3)
	if err != nil {
		t.Fatalf("NewFromImage: %v", err)
	}
	if f.Width() != 8 || f.Height() != 8 {
		t.Errorf("dims = %dx%d, want 8x8", f.Width(), f.Height())
	}
	if f.MipmapCount() != 3 {
		t.Errorf("MipmapCount() = %d, want 3", f.MipmapCount())
	}
	if len(f.NxHeader.Info.Texture.MipmapOffsets) != 3 {
		t.Errorf("len(MipmapOffsets) = %d, want 3", len(f.NxHeader.Info.Texture.MipmapOffsets))
	}
}

func TestMipmapOffsetsMonotonic(t *testing.T) {
	format := FormatBC7Unorm
	blockDim := format.BlockDim()
	bh := swizzle.BlockHeightMip0(16)

	offsets := mipmapOffsets(64, 64, 1, blockDim, bh, format.BytesPerPixel(), 4)
	if len(offsets) != 4 {
		t.Fatalf("len(offsets) = %d, want 4", len(offsets))
	}
	if offsets[0] != uint64(StartOfTextureData) {
		t.Errorf("offsets[0] = %d, want %d", offsets[0], StartOfTextureData)
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] <= offsets[i-1] {
			t.Errorf("offsets not strictly increasing at %d: %d <= %d", i, offsets[i], offsets[i-1])
		}
	}
}
