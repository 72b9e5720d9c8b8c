package bntx

import (
	"bytes"
	"errors"
	"testing"
)

// TestRoundTrip builds a texture via FromImageData, serializes it with
// Write, and parses the bytes back with Read, checking that every field the
// Reader is responsible for recovering survives unchanged (§8.1).
func TestRoundTrip(t *testing.T) {
	const width, height = 256, 256
	format := FormatBC7Unorm
	blockDim := format.BlockDim()
	bpp := format.BytesPerPixel()
	mw := (width + blockDim.W - 1) / blockDim.W
	mh := (height + blockDim.H - 1) / blockDim.H
	linear := make([]byte, mw*mh*bpp)
	for i := range linear {
		linear[i] = byte(i)
	}

	f, err := FromImageData("example_tex", width, height, 1, 1, 1, format, linear)
	if err != nil {
		t.Fatalf("FromImageData: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, f); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := ReadBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}

	if got.Name() != "example_tex" {
		t.Errorf("Name() = %q, want %q", got.Name(), "example_tex")
	}
	if got.Width() != width || got.Height() != height {
		t.Errorf("dims = %dx%d, want %dx%d", got.Width(), got.Height(), width, height)
	}
	if got.Format() != format {
		t.Errorf("Format() = %v, want %v", got.Format(), format)
	}
	if got.MipmapCount() != 1 {
		t.Errorf("MipmapCount() = %d, want 1", got.MipmapCount())
	}
	if got.LayerCount() != 1 {
		t.Errorf("LayerCount() = %d, want 1", got.LayerCount())
	}
	if !bytes.Equal(got.ImageData(), f.ImageData()) {
		t.Errorf("ImageData mismatch: got %d bytes, want %d bytes", len(got.ImageData()), len(f.ImageData()))
	}
}

// TestRoundTripCubemap checks that a 6-layer cubemap round-trips with its
// layer count and cubemap classification intact.
func TestRoundTripCubemap(t *testing.T) {
	const width, height = 64, 64
	format := FormatBC7Srgb
	blockDim := format.BlockDim()
	bpp := format.BytesPerPixel()
	mw := (width + blockDim.W - 1) / blockDim.W
	mh := (height + blockDim.H - 1) / blockDim.H
	linear := make([]byte, mw*mh*bpp*6)

	f, err := FromImageData("cube_tex", width, height, 1, 1, 6, format, linear)
	if err != nil {
		t.Fatalf("FromImageData: %v", err)
	}
	if !f.IsCubemap() {
		t.Fatal("expected cubemap classification before round-trip")
	}

	var buf bytes.Buffer
	if err := Write(&buf, f); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := ReadBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if got.LayerCount() != 6 {
		t.Errorf("LayerCount() = %d, want 6", got.LayerCount())
	}
	if !got.IsCubemap() {
		t.Error("expected round-tripped texture to report as a cubemap")
	}
}

func TestReadBadMagic(t *testing.T) {
	data := make([]byte, 64)
	copy(data, "XXXX")

	_, err := ReadBytes(data)
	if err == nil {
		t.Fatal("expected an error for invalid magic")
	}
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %T: %v", err, err)
	}
	if fe.Field != "magic" {
		t.Errorf("Field = %q, want %q", fe.Field, "magic")
	}
	if fe.Offset != 0 {
		t.Errorf("Offset = %d, want 0", fe.Offset)
	}
}

func TestReadTruncated(t *testing.T) {
	data := []byte("BNTX")
	if _, err := ReadBytes(data); err == nil {
		t.Fatal("expected an error for truncated stream")
	}
}
