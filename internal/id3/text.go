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
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Text encodings of ID3v2 text frames. 2.3 only defines the first two;
// the others come from 2.4 and are accepted since writers mix them up.
const (
	encodingISO8859_1 = 0x00
	encodingUTF16     = 0x01
	encodingUTF16BE   = 0x02
	encodingUTF8      = 0x03
)

var (
	ErrNotTextFrame = errors.New("not a text frame")
	errEmptyBody    = errors.New("empty frame body")
)

// IsTextFrame reports whether the frame is a text information frame.
func (f *Frame) IsTextFrame() bool {
	return strings.HasPrefix(f.ID, "T")
}

// Text decodes the body of a text information frame. For TXXX frames the
// description is dropped and only the value is returned.
func (f *Frame) Text() (string, error) {
	if !f.IsTextFrame() {
		return "", fmt.Errorf("%w: %s", ErrNotTextFrame, f.ID)
	}
	if f.Body == nil {
		return "", fmt.Errorf("%w: frame %s body not decoded", ErrUnsupportedFeature, f.ID)
	}
	if len(f.Body) == 0 {
		return "", errEmptyBody
	}

	text, err := decodeText(f.Body[0], f.Body[1:])
	if err != nil {
		return "", fmt.Errorf("frame %s: %w", f.ID, err)
	}

	if f.ID == "TXXX" {
		if _, value, ok := strings.Cut(text, "\x00"); ok {
			text = value
		}
	}
	return strings.TrimRight(text, "\x00"), nil
}

func decodeText(enc byte, b []byte) (string, error) {
	var e encoding.Encoding
	switch enc {
	case encodingISO8859_1:
		e = charmap.ISO8859_1
	case encodingUTF16:
		e = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case encodingUTF16BE:
		e = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case encodingUTF8:
		return string(bytes.TrimRight(b, "\x00")), nil
	default:
		return "", fmt.Errorf("unknown text encoding 0x%02x", enc)
	}

	out, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
