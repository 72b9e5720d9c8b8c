package bntx

// DictSection is the BNTX dictionary: magic "_DIC", a node count, and
// node-count+1 DictNodes forming a radix tree (a root node is always
// present). The source's canonical writer emits a fixed 0x28-byte opaque
// blob here rather than regenerating the tree; this port does the same —
// see DESIGN.md for why the tree is not reconstructed on write.
type DictSection struct {
	NodeCount uint32
	Nodes     []DictNode
}

// DictNode is one radix-tree node: a reference bit position, left/right
// child indices, and a pointer to the pooled name string.
type DictNode struct {
	RefBit   int32
	LeftIdx  uint16
	RightIdx uint16
	NameAddr uint64
}

// GetSize returns the DictSection's fixed on-disk size. Per spec, this is
// the constant 0x28 regardless of node count: the canonical writer always
// emits the single-entry root blob.
func (d *DictSection) GetSize() int {
	return 0x28
}
