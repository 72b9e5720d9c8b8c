package swizzle

// gobWidth and gobHeight are the dimensions, in bytes and rows, of one GOB
// ("group of bytes") — the atomic tile of the block-linear layout.
const (
	gobWidth  = 64
	gobHeight = 8
	gobSize   = gobWidth * gobHeight // 512 bytes
)

// divRoundUp divides and rounds up: (x + n - 1) / n. n must be non-zero.
func divRoundUp(x, n int) int {
	return (x + n - 1) / n
}

// roundUpPow2 returns the smallest power of two >= x, or 1 if x <= 1.
func roundUpPow2(x int) int {
	if x <= 1 {
		return 1
	}
	p := 1
	for p < x {
		p <<= 1
	}
	return p
}

// BlockHeightMip0 derives the block height hardware would auto-select for a
// mip-0 surface of the given block-row height: the smallest power of two
// >= Ceil(heightBlocks/8), capped at 16 (BlockHeight32 is never selected).
func BlockHeightMip0(heightBlocks int) BlockHeight {
	bh := roundUpPow2(divRoundUp(heightBlocks, gobHeight))
	if bh > 16 {
		bh = 16
	}
	if bh < 1 {
		bh = 1
	}
	return BlockHeight(bh)
}

// mipBlockHeight returns the block height used for a specific mip level:
// it shrinks as the mip's block-row height shrinks, but never below 1, and
// never exceeds the surface's overall (mip 0) block height.
func mipBlockHeight(heightBlocks int, surfaceBlockHeight BlockHeight) BlockHeight {
	bh := roundUpPow2(divRoundUp(heightBlocks, gobHeight))
	if bh > int(surfaceBlockHeight) {
		bh = int(surfaceBlockHeight)
	}
	if bh < 1 {
		bh = 1
	}
	return BlockHeight(bh)
}

// mipDims returns the block-row/column/slice dimensions (mw, mh, md) of mip
// level `level` of a width x height x depth surface with the given block
// dimensions, each clamped to a minimum of 1.
func mipDims(width, height, depth int, blockDim BlockDim, level int) (mw, mh, md int) {
	w := width >> uint(level)
	h := height >> uint(level)
	d := depth >> uint(level)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if d < 1 {
		d = 1
	}
	mw = divRoundUp(w, blockDim.W)
	mh = divRoundUp(h, blockDim.H)
	md = divRoundUp(d, blockDim.D)
	return
}

// MipDims returns the block-row/column/slice dimensions (mw, mh, md) of mip
// level `level` of a width x height x depth surface with the given block
// dimensions. Exported for callers (e.g. construction from raw pixel data)
// that need per-mip geometry without re-deriving it.
func MipDims(width, height, depth int, blockDim BlockDim, level int) (mw, mh, md int) {
	return mipDims(width, height, depth, blockDim, level)
}

// MipBlockHeight returns the block height used for a specific mip level,
// given the overall surface block height. Exported alongside MipDims.
func MipBlockHeight(heightBlocks int, surfaceBlockHeight BlockHeight) BlockHeight {
	return mipBlockHeight(heightBlocks, surfaceBlockHeight)
}

// MipSize returns the swizzled byte size of a single mip level given its
// block-row dimensions (mw, mh, md), the block height selected for that mip,
// and bytes-per-block (bpp). Each depth slice is independently paved to
// whole GOB-blocks; the surface is paved with blockHeight GOBs stacked
// vertically per GOB-block.
func MipSize(mw, mh, md int, blockHeight BlockHeight, bpp int) int {
	widthInGobs := divRoundUp(mw*bpp, gobWidth)
	heightInGobBlocks := divRoundUp(mh, gobHeight*int(blockHeight))
	gobBlockSize := gobSize * int(blockHeight)
	return widthInGobs * heightInGobBlocks * gobBlockSize * md
}
