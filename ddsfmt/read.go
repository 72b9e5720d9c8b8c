package ddsfmt

import (
	"encoding/binary"
	"errors"
	"io"
)

// ErrInvalidMagic is returned when the stream doesn't start with "DDS ".
var ErrInvalidMagic = errors.New("ddsfmt: invalid magic")

// Decode reads a full DDS file from r: magic, header, optional DX10
// extension, then the remaining bytes as pixel data.
func Decode(r io.Reader) (*Container, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, err
	}
	if string(magic[:]) != Magic {
		return nil, ErrInvalidMagic
	}

	c := &Container{}
	if err := binary.Read(r, binary.LittleEndian, &c.Header); err != nil {
		return nil, err
	}

	if (c.Header.PixelFormat.Flags&PFFourCC) != 0 && c.Header.PixelFormat.FourCC == FourCCDX10 {
		dx10 := &HeaderDX10{}
		if err := binary.Read(r, binary.LittleEndian, dx10); err != nil {
			return nil, err
		}
		c.HeaderDX10 = dx10
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	c.Data = data

	return c, nil
}
