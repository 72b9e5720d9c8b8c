package bntx

// Fixed byte-layout constants for the BNTX container. These are file-format
// constants, not process state, so they live in one table rather than being
// threaded through the Reader/Writer as parameters.
const (
	BntxHeaderSize = 0x20
	NxHeaderSize   = 0x28
	HeaderSize     = BntxHeaderSize + NxHeaderSize
	// MemPoolSize is the reserved zero-filled region between the NxHeader
	// and the BRTI data pointer slot: 0x150 bytes, per the explicit write
	// instruction and original_source/src/lib.rs's MEM_POOL_SIZE constant
	// (see DESIGN.md — spec.md's own derived START_OF_STR invariant
	// disagrees with this value, but the literal write-step text and the
	// ground-truth source agree, so they win).
	MemPoolSize = 0x150
	DataPtrSize = 8

	StartOfStrSection = HeaderSize + MemPoolSize + DataPtrSize // 0x1A0

	StrHeaderSize = 0x14
	EmptyStrSize  = 4

	FilenameStrOffset = StartOfStrSection + StrHeaderSize + EmptyStrSize

	BrtdSectionStart   = 0xFF0
	SizeOfBrtd         = 0x10
	StartOfTextureData = BrtdSectionStart + SizeOfBrtd // 0x1000

	SizeOfBrti = 0xA0

	sizeOfRelocSection = 8 + 4*4 // pointer(u64) + position,size,index,count (u32)
	sizeOfRelocEntry   = 4 + 2 + 1 + 1
)
