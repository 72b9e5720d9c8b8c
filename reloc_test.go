package bntx

import "testing"

func TestRelocationTableGetSize(t *testing.T) {
	rt := &RelocationTable{
		Sections: []RelocationSection{{}, {}},
		Entries:  []RelocationEntry{{}, {}, {}},
	}
	want := 4 + 4 + 4 + 4 + 2*sizeOfRelocSection + 3*sizeOfRelocEntry
	if got := rt.GetSize(); got != want {
		t.Fatalf("GetSize() = %d, want %d", got, want)
	}
}

func TestEntryCountMatchesSections(t *testing.T) {
	rt := &RelocationTable{
		Sections: []RelocationSection{
			{EntryIndex: 0, EntryCount: 4},
			{EntryIndex: 4, EntryCount: 1},
		},
		Entries: make([]RelocationEntry, 5),
	}
	if !rt.EntryCountMatchesSections() {
		t.Fatal("expected entry counts to match")
	}

	rt.Entries = make([]RelocationEntry, 4)
	if rt.EntryCountMatchesSections() {
		t.Fatal("expected mismatch to be detected")
	}
}
