package bntx

import (
	"encoding/binary"
	"io"
)

// binWriter accumulates the first error from a sequence of binary writes so
// callers can chain field-by-field writes without checking err after each
// one.
type binWriter struct {
	w   io.Writer
	err error
}

func (bw *binWriter) u16(v uint16) {
	if bw.err != nil {
		return
	}
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	_, bw.err = bw.w.Write(b[:])
}

func (bw *binWriter) u32(v uint32) {
	if bw.err != nil {
		return
	}
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, bw.err = bw.w.Write(b[:])
}

func (bw *binWriter) u64(v uint64) {
	if bw.err != nil {
		return
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, bw.err = bw.w.Write(b[:])
}

func (bw *binWriter) raw(b []byte) {
	if bw.err != nil {
		return
	}
	_, bw.err = bw.w.Write(b)
}

func (bw *binWriter) zeros(n int) {
	if n <= 0 {
		return
	}
	bw.raw(make([]byte, n))
}

func (bw *binWriter) magic(s string) { bw.raw([]byte(s)) }

// Write serializes f to w, always in little-endian byte order. Every
// section offset is computed up front from the section sizes, so the whole
// file is produced in a single sequential pass (§4.5); no seeking is
// required because nothing is patched after the fact.
func Write(w io.Writer, f *BntxFile) error {
	str := &f.Header.Inner.StrSection
	dict := &f.NxHeader.DictSect
	brti := &f.NxHeader.Info
	reloc := &f.Header.Inner.RelocTable

	strSize := str.GetSize()
	dictSize := dict.GetSize()

	brtiStart := StartOfStrSection + strSize + dictSize
	brtiEnd := brtiStart + SizeOfBrti
	mipTableStart := brtiEnd + 0x200

	mipCount := len(brti.Texture.MipmapOffsets)
	if mipCount == 0 {
		mipCount = 1
	}
	mipTableSize := mipCount * 8

	imageSize := len(brti.Texture.ImageData)
	relocStart := StartOfTextureData + imageSize
	relocSize := reloc.GetSize()
	fileSize := relocStart + relocSize

	bw := &binWriter{w: w}

	// 1. BntxHeader (0x20 bytes).
	bw.magic("BNTX")
	bw.zeros(4)
	bw.u16(f.Header.VersionMinor)
	bw.u16(f.Header.VersionMajor)
	bw.u16(uint16(f.Header.BOM))
	bw.u16(f.Header.Inner.Revision)
	bw.u32(uint32(FilenameStrOffset))
	bw.u16(0)
	bw.u16(uint16(StartOfStrSection))
	bw.u32(uint32(relocStart))
	bw.u32(uint32(fileSize))

	// 2. NxHeader (0x28 bytes).
	bw.magic("NX  ")
	bw.u32(f.NxHeader.Count)
	bw.u64(uint64(HeaderSize + MemPoolSize)) // double-indirect pointer to the BRTI data-ptr slot
	bw.u64(uint64(BrtdSectionStart))
	bw.u64(uint64(StartOfStrSection + strSize))
	bw.u64(f.NxHeader.DictSize)

	// 3. Memory pool.
	bw.zeros(MemPoolSize)

	// 4. Data pointer: absolute offset to BrtiSection start.
	bw.u64(uint64(brtiStart))

	// 5. StrSection then DictSection.
	writeStrSection(bw, str)
	writeDictSection(bw, dict)

	// 6. BrtiSection body plus tail pointers.
	writeBrtiSection(bw, brti, brtiStart, brtiEnd)

	// 7. Reserved gap before the mipmap offset table.
	bw.zeros(0x200)

	// 8. Mipmap offset table, then pad to BRTD_START.
	writeMipTable(bw, brti)
	bw.zeros(BrtdSectionStart - (mipTableStart + mipTableSize))

	// 9-10. BRTD header, then image bytes.
	bw.magic("BRTD")
	bw.u32(0)
	bw.u64(uint64(imageSize + SizeOfBrtd))
	bw.raw(brti.Texture.ImageData)

	// 11. RelocationTable.
	writeRelocationTable(bw, reloc, relocStart)

	return bw.err
}

func writeStrSection(bw *binWriter, s *StrSection) {
	size := s.GetSize()
	bw.magic("_STR")
	bw.u32(uint32(size))
	bw.u32(s.BlockOffset)
	bw.u32(uint32(len(s.Strings)))
	bw.u32(0)

	bw.u16(0)
	bw.zeros(EmptyStrSize - 2)
	for _, str := range s.Strings {
		bw.u16(uint16(len(str)))
		bw.raw([]byte(str))
		bw.raw([]byte{0})
		pad := stringPaddedSize(str) - (2 + len(str) + 1)
		bw.zeros(pad)
	}

	written := 5*4 + EmptyStrSize
	for _, str := range s.Strings {
		written += stringPaddedSize(str)
	}
	bw.zeros(align(written, 8) - written)
}

func writeDictSection(bw *binWriter, d *DictSection) {
	bw.magic("_DIC")
	bw.u32(d.NodeCount)
	// The canonical writer emits a fixed single-root-node payload rather
	// than regenerating the radix tree (§9): ref_bit=-1, both child
	// indices pointing at the root, name pointer zero.
	bw.u32(0xFFFFFFFF)
	bw.u16(0)
	bw.u16(0)
	bw.u64(0)
	bw.zeros(d.GetSize() - 8 - 16)
}

func writeBrtiSection(bw *binWriter, b *BrtiSection, brtiStart, brtiEnd int) {
	bw.magic("BRTI")
	bw.u32(uint32(SizeOfBrti))
	bw.u64(b.Size2)
	bw.u32(uint32(b.Flags) | uint32(b.Dim)<<8 | uint32(b.TileMode)<<16)
	bw.u16(b.Swizzle)
	bw.u16(b.MipCount)
	bw.u32(b.MultiSampleCount)
	bw.u32(uint32(b.Format))
	bw.u32(b.Unk2)
	bw.u32(b.Width)
	bw.u32(b.Height)
	bw.u32(b.Depth)
	bw.u32(b.LayerCount)
	bw.u32(b.BlockHeightLog2)
	for _, v := range b.Unk4 {
		bw.u32(v)
	}
	bw.u32(b.ImageSize)
	bw.u32(b.Align)
	bw.u32(b.CompSel)
	bw.u32(uint32(b.ViewDimension))

	// Tail pointer block (§4.5.1). The Writer's canonical choice for the
	// pixel-pointer indirection depth is double-indirect: slot 3 is
	// authoritative and slot 5 is kept only for bit-compatibility with
	// readers that expect the legacy single-indirect layout (see
	// DESIGN.md).
	bw.u64(uint64(FilenameStrOffset))
	bw.u64(uint64(BntxHeaderSize))
	bw.u64(uint64(brtiEnd + 0x200))
	bw.u64(0)
	bw.u64(uint64(brtiEnd))
	bw.u64(uint64(brtiEnd + 0x100))
	bw.u64(0)
	bw.u64(0)
}

func writeMipTable(bw *binWriter, b *BrtiSection) {
	offsets := b.Texture.MipmapOffsets
	if len(offsets) == 0 {
		offsets = []uint64{uint64(StartOfTextureData)}
	}
	for _, off := range offsets {
		bw.u64(off)
	}
}

func writeRelocationTable(bw *binWriter, t *RelocationTable, pos int) {
	bw.magic("_RLT")
	bw.u32(uint32(pos))
	bw.u32(uint32(len(t.Sections)))
	bw.u32(0)

	for _, s := range t.Sections {
		bw.u64(s.Pointer)
		bw.u32(s.Position)
		bw.u32(s.Size)
		bw.u32(s.EntryIndex)
		bw.u32(s.EntryCount)
	}
	for _, e := range t.Entries {
		bw.u32(e.Position)
		bw.u16(e.StructCount)
		bw.raw([]byte{e.OffsetCount, e.PaddingCount})
	}
}
