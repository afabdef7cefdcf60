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
	"bytes"
	"fmt"
)

const HeaderSize = 10

// MaxTagSize is the largest tag body a synchsafe size can describe.
const MaxTagSize = 1<<28 - 1

// ID3v2 header flags (byte 5).
const (
	flagUnsynchronisation = 0x80
	flagExtendedHeader    = 0x40
	flagExperimental      = 0x20
)

var v2Marker = []byte("ID3")

// Header is the 10-byte ID3v2 header.
//
//	offset  size  field
//	0       3     "ID3"
//	3       1     major version
//	4       1     minor version (revision)
//	5       1     flags %abc00000
//	6       4     tag size, synchsafe, excluding this header
type Header struct {
	MajorVersion      uint8  `json:"major_version" yaml:"major_version"`
	MinorVersion      uint8  `json:"minor_version" yaml:"minor_version"`
	Unsynchronised    bool   `json:"unsynchronised" yaml:"unsynchronised"`
	HasExtendedHeader bool   `json:"has_extended_header" yaml:"has_extended_header"`
	Experimental      bool   `json:"experimental" yaml:"experimental"`
	Size              uint32 `json:"tag_size" yaml:"tag_size"`
}

// ParseHeader decodes an ID3v2 header. It returns nil when the buffer does
// not start with the "ID3" marker.
func ParseHeader(b []byte) (*Header, error) {
	w := NewWindow(b, 0)

	marker, err := w.Slice(0, len(v2Marker))
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(marker, v2Marker) {
		return nil, nil
	}

	hdr, err := w.Slice(0, HeaderSize)
	if err != nil {
		return nil, err
	}

	size, err := w.Synchsafe(6)
	if err != nil {
		return nil, err
	}

	flags := hdr[5]
	return &Header{
		MajorVersion:      hdr[3],
		MinorVersion:      hdr[4],
		Unsynchronised:    flags&flagUnsynchronisation != 0,
		HasExtendedHeader: flags&flagExtendedHeader != 0,
		Experimental:      flags&flagExperimental != 0,
		Size:              size,
	}, nil
}

// Version formats the header version as "{major}.{minor}".
func (h *Header) Version() string {
	return fmt.Sprintf("%d.%d", h.MajorVersion, h.MinorVersion)
}

// Supported reports whether the frame area of this tag can be decoded.
// Only ID3v2.3 tags without extended header and unsynchronisation are.
func (h *Header) Supported() error {
	switch {
	case h.MajorVersion != 3:
		return fmt.Errorf("%w: ID3v2.%d", ErrUnsupportedFeature, h.MajorVersion)
	case h.HasExtendedHeader:
		return fmt.Errorf("%w: extended header", ErrUnsupportedFeature)
	case h.Unsynchronised:
		return fmt.Errorf("%w: unsynchronisation", ErrUnsupportedFeature)
	}
	return nil
}
