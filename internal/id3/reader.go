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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ostafen/tagscan/internal/fs"
)

// Tags is the combined outcome of reading one file. V1Err and V2Err hold
// the reason a pass produced no data; a failed pass never hides the
// result of the other one.
type Tags struct {
	Path string `json:"path" yaml:"path"`

	V1         *V1Tag         `json:"v1,omitempty" yaml:"v1,omitempty"`
	V1Extended *V1ExtendedTag `json:"v1_extended,omitempty" yaml:"v1_extended,omitempty"`
	V1Err      error          `json:"-" yaml:"-"`

	V2     *Header `json:"v2,omitempty" yaml:"v2,omitempty"`
	Frames []Frame `json:"frames,omitempty" yaml:"frames,omitempty"`
	V2Err  error   `json:"-" yaml:"-"`
}

func (t *Tags) HasV1() bool {
	return t.V1 != nil || t.V1Extended != nil
}

func (t *Tags) HasV2() bool {
	return t.V2 != nil
}

type Opener func(path string) (fs.File, error)

type Option func(*Reader)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}

func WithCharset(cs Charset) Option {
	return func(r *Reader) {
		r.charset = cs
	}
}

func WithOpener(open Opener) Option {
	return func(r *Reader) {
		r.open = open
	}
}

// Reader reads ID3 tags from files on disk. It holds no per-file state and
// is safe for concurrent use.
type Reader struct {
	logger  *slog.Logger
	charset Charset
	open    Opener
}

func NewReader(opts ...Option) *Reader {
	r := &Reader{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		charset: CharsetRaw,
		open:    fs.Open,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadTags decodes the ID3v1 and ID3v2 tags of the file at path. Each pass
// opens the file on its own and closes it before returning. Only a missing
// file is returned as an error, any other failure is recorded on Tags.
func (r *Reader) ReadTags(path string) (*Tags, error) {
	tags := &Tags{Path: path}

	tags.V1, tags.V1Extended, tags.V1Err = r.ReadV1(path)
	if errors.Is(tags.V1Err, ErrFileNotFound) {
		return nil, tags.V1Err
	}
	if tags.V1Err != nil {
		r.logger.Debug("no ID3v1 data", "path", path, "err", tags.V1Err)
	}

	tags.V2, tags.Frames, tags.V2Err = r.ReadV2(path)
	if errors.Is(tags.V2Err, ErrFileNotFound) {
		return nil, tags.V2Err
	}
	if tags.V2Err != nil {
		r.logger.Debug("ID3v2 frames not decoded", "path", path, "err", tags.V2Err)
	}
	return tags, nil
}

// ReadV1 decodes the trailing ID3v1 and extended tags of the file at path.
func (r *Reader) ReadV1(path string) (*V1Tag, *V1ExtendedTag, error) {
	f, size, err := r.openFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return DecodeTail(f, size, r.charset)
}

// ReadV2 decodes the ID3v2 header at the start of the file at path and the
// frames that follow it. A file without the "ID3" marker yields a nil header
// and no error. Frames decoded before a malformed frame are returned.
func (r *Reader) ReadV2(path string) (*Header, []Frame, error) {
	f, size, err := r.openFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return DecodeHead(f, size, r.logger.With("path", path))
}

// DecodeHead reads the ID3v2 tag stored at the start of r.
func DecodeHead(r io.ReaderAt, size int64, logger *slog.Logger) (*Header, []Frame, error) {
	if size < HeaderSize {
		return nil, nil, nil
	}

	var buf [HeaderSize]byte
	if err := readFullAt(r, buf[:], 0); err != nil {
		return nil, nil, fmt.Errorf("%w: reading ID3v2 header: %w", ErrIO, err)
	}

	hdr, err := ParseHeader(buf[:])
	if err != nil || hdr == nil {
		return nil, nil, err
	}

	if err := hdr.Supported(); err != nil {
		return hdr, nil, err
	}

	// a tag declaring more bytes than the file holds is read up to EOF,
	// the frame stream stops where the data ends.
	body := make([]byte, min(int64(hdr.Size), size-HeaderSize))
	if err := readFullAt(r, body, HeaderSize); err != nil {
		return hdr, nil, fmt.Errorf("%w: reading ID3v2 body: %w", ErrIO, err)
	}

	var frames []Frame

	stream := NewFrameStream(hdr, body)
	for {
		step := stream.Next()
		if step.Kind == StepFrame {
			frames = append(frames, step.Frame)
			continue
		}
		if step.Kind == StepMalformed {
			logger.Debug("frame stream stopped", "offset", step.Offset, "reason", step.Reason)
		}
		break
	}
	return hdr, frames, stream.Err()
}

func (r *Reader) openFile(path string) (fs.File, int64, error) {
	f, err := r.open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, 0, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("%w: opening %s: %w", ErrIO, path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("%w: stat %s: %w", ErrIO, path, err)
	}
	return f, info.Size(), nil
}
