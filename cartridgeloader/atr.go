// This file is part of atari800core.
//
// atari800core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// atari800core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with atari800core.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import "github.com/atari800core/emu/curated"

const (
	atrHeaderSize    = 16
	atrSignatureLo   = 0x96
	atrSignatureHi   = 0x02
	atrBootSectors   = 3
	atrBootSectorLen = 128
)

// ATRImage is a mounted Atari disk image: a fixed 16-byte header followed by
// sector data. The first three sectors are always 128 bytes regardless of
// the image's nominal sector size, since the OS boot loader reads them
// before it knows any better.
type ATRImage struct {
	sectorSize int
	totalSize  int
	data       []byte
}

// MountATR parses an ATR header (`96 02` signature, little-endian sector
// size, 24-bit paragraph count giving the image's total size in bytes) and
// returns a disk ready for sector access. It validates the header fields
// against the length of data but does not copy it.
func MountATR(data []byte) (*ATRImage, error) {
	if len(data) < atrHeaderSize {
		return nil, curated.Errorf("%v: header shorter than 16 bytes", ErrFileFormat)
	}
	if data[0] != atrSignatureLo || data[1] != atrSignatureHi {
		return nil, curated.Errorf("%v: bad ATR signature", ErrFileFormat)
	}

	sectorSize := int(data[2]) | int(data[3])<<8
	if sectorSize == 0 {
		return nil, curated.Errorf("%v: zero sector size", ErrFileFormat)
	}

	paragraphs := int(data[4]) | int(data[5])<<8 | int(data[6])<<16
	totalSize := paragraphs * 16

	if atrHeaderSize+totalSize > len(data) {
		return nil, curated.Errorf("%v: declared size runs past end of file", ErrFileFormat)
	}

	return &ATRImage{
		sectorSize: sectorSize,
		totalSize:  totalSize,
		data:       data,
	}, nil
}

// sectorOffset returns the byte offset and length, within the image's sector
// data (i.e. excluding the 16-byte header), of the given 1-based sector.
func (a *ATRImage) sectorOffset(sector int) (offset, length int, err error) {
	if sector < 1 {
		return 0, 0, curated.Errorf("%v: sector numbers start at 1", ErrFileFormat)
	}

	if sector <= atrBootSectors {
		offset = (sector - 1) * atrBootSectorLen
		length = atrBootSectorLen
		return offset, length, nil
	}

	offset = atrBootSectors*atrBootSectorLen + (sector-1-atrBootSectors)*a.sectorSize
	length = a.sectorSize
	return offset, length, nil
}

// ReadSector returns the raw bytes of the given 1-based sector.
func (a *ATRImage) ReadSector(sector int) ([]byte, error) {
	offset, length, err := a.sectorOffset(sector)
	if err != nil {
		return nil, err
	}
	if atrHeaderSize+offset+length > len(a.data) {
		return nil, curated.Errorf("%v: sector %d out of range", ErrFileFormat, sector)
	}

	start := atrHeaderSize + offset
	return a.data[start : start+length], nil
}

// WriteSector overwrites the given 1-based sector in place. data must be
// exactly the sector's length.
func (a *ATRImage) WriteSector(sector int, data []byte) error {
	offset, length, err := a.sectorOffset(sector)
	if err != nil {
		return err
	}
	if len(data) != length {
		return curated.Errorf("%v: sector %d takes %d bytes, got %d", ErrFileFormat, sector, length, len(data))
	}
	if atrHeaderSize+offset+length > len(a.data) {
		return curated.Errorf("%v: sector %d out of range", ErrFileFormat, sector)
	}

	start := atrHeaderSize + offset
	copy(a.data[start:start+length], data)
	return nil
}

// SectorSize returns the nominal sector size declared in the header.
func (a *ATRImage) SectorSize() int { return a.sectorSize }
