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

package test

import "fmt"

// CappedWriter is an io.Writer that accepts writes only up to a fixed total
// size. Bytes beyond the cap are silently discarded.
type CappedWriter struct {
	buf  []byte
	size int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type. size must be greater than zero.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: capped writer size must be greater than zero")
	}
	return &CappedWriter{
		buf:  make([]byte, 0, size),
		size: size,
	}, nil
}

// Write implements io.Writer. Bytes beyond the configured cap are dropped
// without error.
func (c *CappedWriter) Write(p []byte) (int, error) {
	room := c.size - len(c.buf)
	if room <= 0 {
		return len(p), nil
	}
	if room > len(p) {
		room = len(p)
	}
	c.buf = append(c.buf, p[:room]...)
	return len(p), nil
}

// String returns the contents written so far, up to the cap.
func (c *CappedWriter) String() string {
	return string(c.buf)
}

// Reset empties the buffer.
func (c *CappedWriter) Reset() {
	c.buf = c.buf[:0]
}
