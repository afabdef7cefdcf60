// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package id3

import (
	"encoding/binary"
	"fmt"
)

// Window is a read-only, bounds-checked view over a byte buffer.
// Origin is the file offset the first byte was read from and is only
// used to produce meaningful error messages.
type Window struct {
	buf    []byte
	origin int64
}

func NewWindow(buf []byte, origin int64) Window {
	return Window{buf: buf, origin: origin}
}

func (w Window) Len() int {
	return len(w.buf)
}

func (w Window) Origin() int64 {
	return w.origin
}

// Slice returns the n bytes starting at start. The returned slice aliases
// the window buffer and must not be modified.
func (w Window) Slice(start, n int) ([]byte, error) {
	if start < 0 || n < 0 || start > len(w.buf)-n {
		return nil, fmt.Errorf("%w: [%d, %d) of %d bytes at file offset %d",
			ErrOutOfRange, start, start+n, len(w.buf), w.origin)
	}
	return w.buf[start : start+n], nil
}

func (w Window) U8(off int) (uint8, error) {
	b, err := w.Slice(off, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U32BE decodes a raw big-endian unsigned 32-bit integer.
func (w Window) U32BE(off int) (uint32, error) {
	b, err := w.Slice(off, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Synchsafe decodes a 4-byte synchsafe integer: only the low 7 bits
// of each byte are significant.
func (w Window) Synchsafe(off int) (uint32, error) {
	b, err := w.Slice(off, 4)
	if err != nil {
		return 0, err
	}
	return synchsafe(b), nil
}

func synchsafe(b []byte) uint32 {
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}
