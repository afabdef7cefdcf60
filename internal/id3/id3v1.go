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
	"errors"
	"fmt"
	"io"
	"unicode"
)

const (
	V1TagSize         = 128
	V1ExtendedTagSize = 227

	// V1RegionSize is the number of trailing bytes read to look for both tags.
	V1RegionSize = V1TagSize + V1ExtendedTagSize
)

var (
	v1Marker         = []byte("TAG")
	v1ExtendedMarker = []byte("TAG+")
)

// V1Tag is the trailing 128-byte legacy tag.
//
//	offset  size  field
//	0       3     "TAG"
//	3       30    title
//	33      30    artist
//	63      30    album
//	93      4     year
//	97      30    comment (28 when byte 125 is zero)
//	126     1     track (ID3v1.1, only when byte 125 is zero)
//	127     1     genre
type V1Tag struct {
	Title   string `json:"title" yaml:"title"`
	Artist  string `json:"artist" yaml:"artist"`
	Album   string `json:"album" yaml:"album"`
	Year    string `json:"year" yaml:"year"`
	Comment string `json:"comment" yaml:"comment"`
	Track   uint8  `json:"track,omitempty" yaml:"track,omitempty"` // 0 when absent
	Genre   uint8  `json:"genre" yaml:"genre"`
}

func (t *V1Tag) HasTrack() bool {
	return t.Track != 0
}

// Version returns "1.1" when the tag carries a track number.
func (t *V1Tag) Version() string {
	if t.HasTrack() {
		return "1.1"
	}
	return "1.0"
}

// V1ExtendedTag is the 227-byte "TAG+" block stored right before a V1Tag.
type V1ExtendedTag struct {
	Title  string `json:"title" yaml:"title"`
	Artist string `json:"artist" yaml:"artist"`
	Album  string `json:"album" yaml:"album"`
	Speed  uint8  `json:"speed" yaml:"speed"`
	Genre  string `json:"genre" yaml:"genre"`
	Start  string `json:"start" yaml:"start"`
	End    string `json:"end" yaml:"end"`
}

// DecodeTail reads the last V1RegionSize bytes of r and decodes the legacy
// and extended tags found there. A missing tag is reported as nil, not as
// an error. Files shorter than V1RegionSize fail with ErrFileTooSmall
// without reading anything.
func DecodeTail(r io.ReaderAt, size int64, cs Charset) (*V1Tag, *V1ExtendedTag, error) {
	if size < V1RegionSize {
		return nil, nil, fmt.Errorf("%w: %d bytes, need at least %d for ID3v1", ErrFileTooSmall, size, V1RegionSize)
	}

	off := size - V1RegionSize

	var buf [V1RegionSize]byte
	if err := readFullAt(r, buf[:], off); err != nil {
		return nil, nil, fmt.Errorf("%w: reading ID3v1 region at offset %d: %w", ErrIO, off, err)
	}

	ext, err := ParseV1Extended(NewWindow(buf[:V1ExtendedTagSize], off), cs)
	if err != nil {
		return nil, nil, err
	}

	tag, err := ParseV1(NewWindow(buf[V1ExtendedTagSize:], off+V1ExtendedTagSize), cs)
	if err != nil {
		return nil, ext, err
	}
	return tag, ext, nil
}

// ParseV1 decodes a 128-byte legacy tag. It returns nil when the window
// does not start with the "TAG" marker.
func ParseV1(w Window, cs Charset) (*V1Tag, error) {
	if !hasMarker(w, v1Marker) {
		return nil, nil
	}

	f := fieldReader{w: w, cs: cs}

	tag := &V1Tag{
		Title:  f.text(3, 30),
		Artist: f.text(33, 30),
		Album:  f.text(63, 30),
		Year:   f.text(93, 4),
		Genre:  f.u8(127),
	}

	if f.u8(125) == 0 {
		tag.Comment = f.text(97, 28)
		tag.Track = f.u8(126)
	} else {
		tag.Comment = f.text(97, 30)
	}

	if f.err != nil {
		return nil, f.err
	}
	return tag, nil
}

// ParseV1Extended decodes a 227-byte extended tag. It returns nil when the
// window does not start with the "TAG+" marker.
func ParseV1Extended(w Window, cs Charset) (*V1ExtendedTag, error) {
	if !hasMarker(w, v1ExtendedMarker) {
		return nil, nil
	}

	f := fieldReader{w: w, cs: cs}

	tag := &V1ExtendedTag{
		Title:  f.text(4, 60),
		Artist: f.text(64, 60),
		Album:  f.text(124, 60),
		Speed:  f.u8(184),
		Genre:  f.text(185, 30),
		Start:  f.text(215, 6),
		End:    f.text(221, 6),
	}

	if f.err != nil {
		return nil, f.err
	}
	return tag, nil
}

func hasMarker(w Window, marker []byte) bool {
	b, err := w.Slice(0, len(marker))
	return err == nil && bytes.Equal(b, marker)
}

// fieldReader extracts fixed-offset fields, keeping the first error.
type fieldReader struct {
	w   Window
	cs  Charset
	err error
}

func (f *fieldReader) text(off, n int) string {
	if f.err != nil {
		return ""
	}

	b, err := f.w.Slice(off, n)
	if err != nil {
		f.err = err
		return ""
	}
	return f.cs.decode(stripPadding(b))
}

func (f *fieldReader) u8(off int) uint8 {
	if f.err != nil {
		return 0
	}

	v, err := f.w.U8(off)
	if err != nil {
		f.err = err
	}
	return v
}

// stripPadding removes trailing NUL padding and surrounding whitespace.
func stripPadding(b []byte) []byte {
	b = bytes.TrimRightFunc(b, func(r rune) bool {
		return r == 0 || unicode.IsSpace(r)
	})
	return bytes.TrimLeftFunc(b, unicode.IsSpace)
}

// readFullAt fills buf from r at off. A short read is an error even
// when the reader reports io.EOF.
func readFullAt(r io.ReaderAt, buf []byte, off int64) error {
	n, err := r.ReadAt(buf, off)
	if n == len(buf) {
		return nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return err
}
