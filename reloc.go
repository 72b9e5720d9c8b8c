package bntx

// RelocationTable is the BNTX relocation table: magic "_RLT", its own
// absolute position, and two parallel vectors describing fix-ups a loader
// would apply to convert stored absolute file offsets into runtime
// pointers.
type RelocationTable struct {
	// Position is the table's own absolute file offset.
	Position uint32
	Sections []RelocationSection
	Entries  []RelocationEntry
}

// RelocationSection is one major region's relocation record: headers or
// pixel data.
type RelocationSection struct {
	Pointer    uint64
	Position   uint32
	Size       uint32
	EntryIndex uint32
	EntryCount uint32
}

// RelocationEntry is one fix-up descriptor.
type RelocationEntry struct {
	Position     uint32
	StructCount  uint16
	OffsetCount  uint8
	PaddingCount uint8
}

// GetSize returns the RelocationTable's total on-disk size: magic,
// self-position, section count, padding (4 u32 fields), plus each
// section's fixed 0x18 bytes and each entry's fixed 8 bytes.
func (t *RelocationTable) GetSize() int {
	return 4 + 4 + 4 + 4 + len(t.Sections)*sizeOfRelocSection + len(t.Entries)*sizeOfRelocEntry
}

// EntryCountMatchesSections reports whether the sum of each section's
// EntryCount equals the number of entries — the relocation count equality
// invariant.
func (t *RelocationTable) EntryCountMatchesSections() bool {
	sum := 0
	for _, s := range t.Sections {
		sum += int(s.EntryCount)
	}
	return sum == len(t.Entries)
}
