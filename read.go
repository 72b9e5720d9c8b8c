package bntx

import (
	"bytes"
	"encoding/binary"
	"io"
)

// binReader wraps a seekable byte stream and accumulates the first error
// from a sequence of reads, mirroring binWriter's chaining style.
type binReader struct {
	r   io.ReadSeeker
	err error
}

func (br *binReader) pos() int64 {
	if br.err != nil {
		return 0
	}
	p, err := br.r.Seek(0, io.SeekCurrent)
	if err != nil {
		br.err = err
	}
	return p
}

func (br *binReader) seekTo(off int64) {
	if br.err != nil {
		return
	}
	end, err := br.r.Seek(0, io.SeekEnd)
	if err != nil {
		br.err = err
		return
	}
	if off < 0 || off > end {
		br.err = fieldErr("pointer", off, ErrPointerOutOfRange)
		return
	}
	_, br.err = br.r.Seek(off, io.SeekStart)
}

func (br *binReader) raw(n int) []byte {
	if br.err != nil {
		return nil
	}
	if n <= 0 {
		return nil
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(br.r, b); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = ErrTruncated
		}
		br.err = err
		return nil
	}
	return b
}

func (br *binReader) u16() uint16 {
	b := br.raw(2)
	if br.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (br *binReader) u32() uint32 {
	b := br.raw(4)
	if br.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (br *binReader) u64() uint64 {
	b := br.raw(8)
	if br.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (br *binReader) checkMagic(want string, field string) {
	if br.err != nil {
		return
	}
	offset := br.pos()
	got := br.raw(len(want))
	if br.err != nil {
		return
	}
	if string(got) != want {
		br.err = fieldErr(field, offset, ErrInvalidMagic)
	}
}

// Read parses a BNTX container from a seekable byte stream into a BntxFile,
// following the pointer indirections described in §4.4. Only little-endian
// input is accepted: a stream whose byte-order marker is not
// ByteOrderLittleEndian fails with a FormatError on field "bom".
func Read(r io.ReadSeeker) (*BntxFile, error) {
	br := &binReader{r: r}

	// 1. Magic, version, BOM.
	br.checkMagic("BNTX", "magic")
	br.raw(4) // reserved
	f := &BntxFile{}
	f.Header.VersionMinor = br.u16()
	f.Header.VersionMajor = br.u16()
	bomOffset := br.pos()
	f.Header.BOM = ByteOrder(br.u16())
	if br.err == nil && f.Header.BOM != ByteOrderLittleEndian {
		br.err = fieldErr("bom", bomOffset, ErrUnsupportedFormat)
	}

	// 2. HeaderInner: revision, name pointer, str-section pointer
	// (redundant with StartOfStrSection), reloc-table start (redundant
	// with the table's own recorded Position), file size.
	f.Header.Inner.Revision = br.u16()
	namePtr := br.u32()
	br.u16()
	br.u16()
	br.u32()
	br.u32()

	// 3. NxHeader: magic, count, double-indirect BRTI pointer, BRTD
	// pointer (unused for parse), dict pointer, dict size.
	br.checkMagic("NX  ", "nx_header.magic")
	f.NxHeader.Count = br.u32()
	brtiIndirectPtr := br.u64()
	br.u64() // BRTD pointer, unused for parse
	br.u64() // dict pointer, recomputed on write from str size
	f.NxHeader.DictSize = br.u64()

	if br.err != nil {
		return nil, br.err
	}

	br.seekTo(int64(brtiIndirectPtr))
	brtiStart := br.u64()

	readStrSection(br, &f.Header.Inner.StrSection)
	readDictSection(br, &f.NxHeader.DictSect)

	br.seekTo(int64(brtiStart))
	readBrtiSection(br, &f.NxHeader.Info)

	if br.err != nil {
		return nil, br.err
	}

	if namePtr != 0 && f.NxHeader.Info.Name == "" {
		f.Header.Inner.FileName = readPooledString(br, int64(namePtr))
	} else {
		f.Header.Inner.FileName = f.NxHeader.Info.Name
	}

	readTexture(br, &f.NxHeader.Info)

	return f, br.err
}

func readStrSection(br *binReader, s *StrSection) {
	start := br.pos()
	br.checkMagic("_STR", "str_section.magic")
	size := br.u32()
	s.BlockOffset = br.u32()
	count := br.u32()
	br.u32() // reserved

	br.raw(EmptyStrSize) // mandatory empty entry

	s.Strings = make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		if br.err != nil {
			break
		}
		strLen := br.u16()
		data := br.raw(int(strLen))
		br.raw(1) // null terminator
		pad := stringPaddedSize(string(data)) - (2 + int(strLen) + 1)
		br.raw(pad)
		if br.err == nil {
			s.Strings = append(s.Strings, string(data))
		}
	}

	br.seekTo(start + int64(size))
}

func readDictSection(br *binReader, d *DictSection) {
	start := br.pos()
	br.checkMagic("_DIC", "dict_section.magic")
	d.NodeCount = br.u32()
	br.seekTo(start + 0x28)
}

func readBrtiSection(br *binReader, b *BrtiSection) {
	br.checkMagic("BRTI", "brti_section.magic")
	b.Size = br.u32()
	b.Size2 = br.u64()
	packed := br.u32()
	b.Flags = uint8(packed)
	b.Dim = TextureDimension(uint8(packed >> 8))
	b.TileMode = uint16(packed >> 16)
	b.Swizzle = br.u16()
	b.MipCount = br.u16()
	b.MultiSampleCount = br.u32()
	b.Format = SurfaceFormat(br.u32())
	b.Unk2 = br.u32()
	b.Width = br.u32()
	b.Height = br.u32()
	b.Depth = br.u32()
	b.LayerCount = br.u32()
	b.BlockHeightLog2 = br.u32()
	for i := range b.Unk4 {
		b.Unk4[i] = br.u32()
	}
	b.ImageSize = br.u32()
	b.Align = br.u32()
	b.CompSel = br.u32()
	b.ViewDimension = TextureViewDimension(br.u32())

	nameAddr := br.u64()
	b.ParentAddr = br.u64()
	textureAnchor := br.u64() // double-indirect texture/mip-table anchor
	br.u64()                 // reserved
	mipTablePtr := br.u64()   // legacy single-indirect mip-table pointer
	br.u64()                 // reserved (brtiEnd + 0x100)
	br.u64()                 // reserved
	br.u64()                 // reserved

	if br.err != nil {
		return
	}

	if nameAddr != 0 {
		b.Name = readPooledString(br, int64(nameAddr))
	}

	b.texturePtr = resolveTexturePointer(br, textureAnchor, mipTablePtr)
}

// resolveTexturePointer implements the dual single-/double-indirect pixel
// pointer acceptance required by §4.4 step 4 and the Open Question in §9:
// this port's canonical write-side choice is double-indirect (the anchor
// slot), so that is tried first; the legacy single-indirect slot is the
// fallback for files produced by the other encoding (see DESIGN.md).
func resolveTexturePointer(br *binReader, anchor, legacy uint64) int64 {
	if anchor != 0 {
		saved := br.pos()
		br.seekTo(int64(anchor))
		v := br.u64()
		br.seekTo(saved)
		if br.err == nil && v != 0 {
			return int64(anchor)
		}
		br.err = nil
	}
	return int64(legacy)
}

func readTexture(br *binReader, b *BrtiSection) {
	mipCount := int(b.MipCount)
	if mipCount < 1 {
		mipCount = 1
	}

	br.seekTo(b.texturePtr)
	offsets := make([]uint64, mipCount)
	for i := range offsets {
		offsets[i] = br.u64()
	}

	if br.err != nil || len(offsets) == 0 {
		return
	}

	br.seekTo(int64(offsets[0]))
	data := br.raw(int(b.ImageSize))
	if br.err != nil {
		return
	}

	b.Texture = Texture{MipmapOffsets: offsets, ImageData: data}
}

// readPooledString reads a length-prefixed string from the string pool at
// absolute offset off, restoring the reader's position afterward.
func readPooledString(br *binReader, off int64) string {
	saved := br.pos()
	br.seekTo(off)
	n := br.u16()
	data := br.raw(int(n))
	br.seekTo(saved)
	if br.err != nil {
		return ""
	}
	return string(data)
}

// ReadBytes is a convenience wrapper around Read for already-buffered data.
func ReadBytes(data []byte) (*BntxFile, error) {
	return Read(bytes.NewReader(data))
}
