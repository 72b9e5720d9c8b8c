package bntx

import "testing"

func TestDictSectionGetSize(t *testing.T) {
	d := &DictSection{NodeCount: 1, Nodes: []DictNode{{RefBit: -1}}}
	if got := d.GetSize(); got != 0x28 {
		t.Fatalf("GetSize() = 0x%X, want 0x28", got)
	}

	// GetSize is fixed regardless of node count (§9: canonical writer
	// never regenerates the radix tree).
	empty := &DictSection{}
	if got := empty.GetSize(); got != 0x28 {
		t.Fatalf("GetSize() on empty dict = 0x%X, want 0x28", got)
	}
}
