package ddsfmt

import (
	"encoding/binary"
	"io"
)

// Encode writes a full DDS file to w: magic, header, optional DX10
// extension, then the pixel payload verbatim.
func (c *Container) Encode(w io.Writer) error {
	if _, err := w.Write([]byte(Magic)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, &c.Header); err != nil {
		return err
	}
	if c.HeaderDX10 != nil {
		if err := binary.Write(w, binary.LittleEndian, c.HeaderDX10); err != nil {
			return err
		}
	}
	_, err := w.Write(c.Data)
	return err
}
