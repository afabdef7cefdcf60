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

import "errors"

var (
	// ErrOutOfRange is returned when a read exceeds the bytes held by a Window.
	ErrOutOfRange = errors.New("read out of range")

	// ErrFileTooSmall is returned when a file cannot hold the ID3v1 regions.
	ErrFileTooSmall = errors.New("file too small")

	ErrFileNotFound = errors.New("file not found")
	ErrIO           = errors.New("i/o error")

	// ErrUnsupportedFeature is returned for ID3v2 features this package does
	// not decode: extended headers and unsynchronisation.
	ErrUnsupportedFeature = errors.New("unsupported feature")
)
