package swizzle

import "fmt"

const (
	errZeroDimension = "zero width, height, or depth"
	errZeroBpp       = "zero bytes-per-pixel"
)

// Deswizzle converts a block-linear (swizzled) surface into a linear byte
// buffer. src must hold exactly the swizzled bytes for all mips and layers,
// concatenated with each layer's full mip chain in sequence, matching how
// BNTX stores a texture's single contiguous image region.
func Deswizzle(width, height, depth int, src []byte, blockDim BlockDim, blockHeight BlockHeight, bpp, mipCount, layerCount int) ([]byte, error) {
	return transferSurface(width, height, depth, src, blockDim, blockHeight, bpp, mipCount, layerCount, false)
}

// Swizzle converts a linear surface into the block-linear layout the
// hardware expects. src must hold exactly the linear bytes for all mips and
// layers, concatenated with each layer's full mip chain in sequence.
func Swizzle(width, height, depth int, src []byte, blockDim BlockDim, blockHeight BlockHeight, bpp, mipCount, layerCount int) ([]byte, error) {
	return transferSurface(width, height, depth, src, blockDim, blockHeight, bpp, mipCount, layerCount, true)
}

func transferSurface(width, height, depth int, src []byte, blockDim BlockDim, blockHeight BlockHeight, bpp, mipCount, layerCount int, toSwizzled bool) ([]byte, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, &Error{Reason: errZeroDimension}
	}
	if bpp <= 0 {
		return nil, &Error{Reason: errZeroBpp}
	}
	if mipCount < 1 {
		mipCount = 1
	}
	if layerCount < 1 {
		layerCount = 1
	}

	type mipGeom struct {
		mw, mh, md int
		bh         BlockHeight
		size       int
	}
	geoms := make([]mipGeom, mipCount)
	perLayerSize := 0
	for level := 0; level < mipCount; level++ {
		mw, mh, md := mipDims(width, height, depth, blockDim, level)
		bh := mipBlockHeight(mh, blockHeight)
		size := MipSize(mw, mh, md, bh, bpp)
		geoms[level] = mipGeom{mw, mh, md, bh, size}
		perLayerSize += size
	}
	swizzledSize := perLayerSize * layerCount

	perLayerLinearSize := 0
	for _, g := range geoms {
		perLayerLinearSize += g.mw * g.mh * g.md * bpp
	}
	linearSize := perLayerLinearSize * layerCount

	if toSwizzled {
		if len(src) != linearSize {
			return nil, &Error{Reason: fmt.Sprintf("linear buffer length %d does not match expected %d", len(src), linearSize)}
		}
	} else {
		if len(src) != swizzledSize {
			return nil, &Error{Reason: fmt.Sprintf("swizzled buffer length %d does not match expected %d", len(src), swizzledSize)}
		}
	}

	linear := make([]byte, linearSize)
	swizzled := make([]byte, swizzledSize)
	if toSwizzled {
		copy(linear, src)
	} else {
		copy(swizzled, src)
	}

	linOff, swzOff := 0, 0
	for layer := 0; layer < layerCount; layer++ {
		for level := 0; level < mipCount; level++ {
			g := geoms[level]
			linMipSize := g.mw * g.mh * g.md * bpp
			for z := 0; z < g.md; z++ {
				sliceLinOff := linOff + z*g.mw*g.mh*bpp
				sliceSwzSize := MipSize(g.mw, g.mh, 1, g.bh, bpp)
				sliceSwzOff := swzOff + z*sliceSwzSize
				transferMipSlice(
					linear[sliceLinOff:sliceLinOff+g.mw*g.mh*bpp],
					swizzled[sliceSwzOff:sliceSwzOff+sliceSwzSize],
					g.mw, g.mh, g.bh, bpp, toSwizzled,
				)
			}
			linOff += linMipSize
			swzOff += g.size
		}
	}

	if toSwizzled {
		return swizzled, nil
	}
	return linear, nil
}
