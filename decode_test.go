package bntx

import (
	"bytes"
	"image/color"
	"testing"
)

// TestDecodeUncompressed builds a small RGBA8 texture, serializes it, and
// checks that Decode recovers the first mip's pixels via the standard
// image.Image interface.
func TestDecodeUncompressed(t *testing.T) {
	const width, height = 2, 2
	format := FormatR8G8B8A8Unorm
	linear := []byte{
		10, 20, 30, 255, 40, 50, 60, 255,
		70, 80, 90, 255, 100, 110, 120, 255,
	}

	f, err := FromImageData("rgba_tex", width, height, 1, 1, 1, format, linear)
	if err != nil {
		t.Fatalf("FromImageData: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, f); err != nil {
		t.Fatalf("Write: %v", err)
	}

	img, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		t.Fatalf("decoded bounds = %dx%d, want %dx%d", b.Dx(), b.Dy(), width, height)
	}

	got := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	want := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	if got != want {
		t.Errorf("pixel(0,0) = %+v, want %+v", got, want)
	}
}

func TestDecodeConfig(t *testing.T) {
	const width, height = 4, 4
	format := FormatR8Unorm
	linear := make([]byte, width*height)

	f, err := FromImageData("r8_tex", width, height, 1, 1, 1, format, linear)
	if err != nil {
		t.Fatalf("FromImageData: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, f); err != nil {
		t.Fatalf("Write: %v", err)
	}

	cfg, err := DecodeConfig(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != width || cfg.Height != height {
		t.Fatalf("config dims = %dx%d, want %dx%d", cfg.Width, cfg.Height, width, height)
	}
}
