package swizzle

// gobAddress returns the byte offset, within a single depth slice's
// block-linear surface, of the pixel at block-row/column (x, y), given the
// slice's width in GOBs and the GOB-block height (GOBs stacked vertically).
//
// This decomposes the 512-byte GOB into the 64x8 byte tiling the Tegra X1
// texture unit expects: a GOB is addressed by splitting the byte offset
// within a 64-byte row into 32/16-byte halves and the row index within an
// 8-row GOB into even/odd pairs, matching the hardware's bit-interleaved
// addressing (see the widely-ported `getAddrBlockLinear` used by Switch
// texture tooling).
func gobAddress(x, y, widthInGobs int, blockHeight BlockHeight, bpp int) int {
	xByte := x * bpp

	gobAddr := (y/(gobHeight*int(blockHeight)))*gobSize*int(blockHeight)*widthInGobs +
		(xByte/gobWidth)*gobSize*int(blockHeight) +
		((y%(gobHeight*int(blockHeight)))/gobHeight)*gobSize

	addr := gobAddr +
		((xByte%gobWidth)/32)*256 +
		((y%gobHeight)/2)*64 +
		((xByte%32)/16)*32 +
		(y%2)*16 +
		(xByte % 16)

	return addr
}

// transferMipSlice copies one mip level's worth of bpp-sized units between a
// linear buffer and a block-linear (swizzled) buffer for a single depth
// slice. toSwizzled selects the direction.
func transferMipSlice(linear, swizzled []byte, mw, mh int, blockHeight BlockHeight, bpp int, toSwizzled bool) {
	widthInGobs := divRoundUp(mw*bpp, gobWidth)
	for y := 0; y < mh; y++ {
		for x := 0; x < mw; x++ {
			linOff := (y*mw + x) * bpp
			swzOff := gobAddress(x, y, widthInGobs, blockHeight, bpp)
			var src, dst []byte
			if toSwizzled {
				src, dst = linear[linOff:linOff+bpp], swizzled[swzOff:swzOff+bpp]
			} else {
				src, dst = swizzled[swzOff:swzOff+bpp], linear[linOff:linOff+bpp]
			}
			copy(dst, src)
		}
	}
}
