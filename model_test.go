package bntx

import "testing"

func TestBrtiSectionBlockHeight(t *testing.T) {
	b := &BrtiSection{BlockHeightLog2: 3}
	bh, err := b.BlockHeight()
	if err != nil {
		t.Fatalf("BlockHeight: %v", err)
	}
	if bh != 8 {
		t.Fatalf("got %d, want 8", bh)
	}
}

func TestBrtiSectionBlockHeightOutOfRange(t *testing.T) {
	b := &BrtiSection{BlockHeightLog2: 9}
	if _, err := b.BlockHeight(); err == nil {
		t.Fatal("expected error for out-of-range block_height_log2")
	}
}

func TestBntxFileQueries(t *testing.T) {
	f := &BntxFile{}
	f.NxHeader.Info = BrtiSection{
		Name:       "example",
		Width:      256,
		Height:     256,
		Depth:      1,
		LayerCount: 1,
		MipCount:   1,
		Format:     FormatBC7Unorm,
		Texture:    Texture{ImageData: []byte{1, 2, 3, 4}},
	}

	if f.Name() != "example" {
		t.Fatalf("Name() = %q", f.Name())
	}
	if f.Width() != 256 || f.Height() != 256 {
		t.Fatalf("Width/Height = %d/%d", f.Width(), f.Height())
	}
	if f.Format() != FormatBC7Unorm {
		t.Fatalf("Format() = %v", f.Format())
	}
	if len(f.ImageData()) != 4 {
		t.Fatalf("ImageData() len = %d", len(f.ImageData()))
	}
	if f.IsCubemap() {
		t.Fatal("single-layer texture should not be a cubemap")
	}

	f.NxHeader.Info.LayerCount = 6
	if !f.IsCubemap() {
		t.Fatal("6-layer texture should be a cubemap")
	}
}
