package bntx

import "testing"

// TestStartOfStrSectionInvariant locks in the resolved arithmetic ambiguity
// documented in DESIGN.md: HeaderSize + MemPoolSize + DataPtrSize must equal
// StartOfStrSection (0x1A0), honestly computed from the 0x150-byte memory
// pool confirmed by original_source/src/lib.rs, not the 0x170 spec.md's own
// derived invariant claims but contradicts with its own stated constants.
func TestStartOfStrSectionInvariant(t *testing.T) {
	if got := HeaderSize + MemPoolSize + DataPtrSize; got != StartOfStrSection {
		t.Fatalf("HeaderSize+MemPoolSize+DataPtrSize = 0x%X, want StartOfStrSection 0x%X", got, StartOfStrSection)
	}
	if StartOfStrSection != 0x1A0 {
		t.Fatalf("StartOfStrSection = 0x%X, want 0x1A0", StartOfStrSection)
	}
}

func TestStartOfTextureDataInvariant(t *testing.T) {
	if got := BrtdSectionStart + SizeOfBrtd; got != StartOfTextureData {
		t.Fatalf("BrtdSectionStart+SizeOfBrtd = 0x%X, want StartOfTextureData 0x%X", got, StartOfTextureData)
	}
	if StartOfTextureData != 0x1000 {
		t.Fatalf("StartOfTextureData = 0x%X, want 0x1000", StartOfTextureData)
	}
}
