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
)

const FrameHeaderSize = 10

// Frame status flags (first flag byte).
const (
	flagTagAlterPreserve  = 0x80
	flagFileAlterPreserve = 0x40
	flagReadOnly          = 0x20
)

// Frame format flags (second flag byte).
const (
	flagCompressed = 0x80
	flagEncrypted  = 0x40
	flagGrouped    = 0x20
)

var errInvalidFrameID = errors.New("invalid frame id")

type FrameStatus struct {
	TagAlterPreserve  bool `json:"tag_alter_preserve" yaml:"tag_alter_preserve"`
	FileAlterPreserve bool `json:"file_alter_preserve" yaml:"file_alter_preserve"`
	ReadOnly          bool `json:"read_only" yaml:"read_only"`
}

type FrameFormat struct {
	Compressed bool `json:"compressed" yaml:"compressed"`
	Encrypted  bool `json:"encrypted" yaml:"encrypted"`
	Grouped    bool `json:"grouped" yaml:"grouped"`
}

// Frame is a single ID3v2.3 frame.
//
//	offset  size  field
//	0       4     frame id [0-9A-Z]{4}
//	4       4     body size, plain big-endian (not synchsafe in 2.3)
//	8       1     status flags %abc00000
//	9       1     format flags %ijk00000
//	10      size  body
type Frame struct {
	ID     string      `json:"id" yaml:"id"`
	Size   uint32      `json:"size" yaml:"size"`
	Status FrameStatus `json:"status" yaml:"status"`
	Format FrameFormat `json:"format" yaml:"format"`

	// Body is nil when Unsupported reports true.
	Body []byte `json:"-" yaml:"-"`
}

// Unsupported reports whether the body uses compression, encryption or
// grouping, in which case it is not materialised.
func (f *Frame) Unsupported() bool {
	return f.Format.Compressed || f.Format.Encrypted || f.Format.Grouped
}

func validFrameID(id []byte) bool {
	if len(id) != 4 {
		return false
	}
	for _, c := range id {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

type StepKind int

const (
	// StepFrame carries a decoded frame.
	StepFrame StepKind = iota
	// StepEnd means the frame area is exhausted: the tag end was reached,
	// the remaining bytes cannot hold a frame header, or padding started.
	StepEnd
	// StepMalformed means the stream stopped on bytes that are not a frame.
	// Frames yielded before remain valid.
	StepMalformed
)

func (k StepKind) String() string {
	switch k {
	case StepFrame:
		return "frame"
	case StepEnd:
		return "end"
	case StepMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Step is the outcome of a single FrameStream.Next call.
type Step struct {
	Kind   StepKind
	Frame  Frame
	Offset int   // offset of the frame header within the tag body
	Reason error // set for StepMalformed
}

// FrameStream iterates the frames of an ID3v2.3 tag body. It is finite and
// cannot be restarted: once Next returns StepEnd or StepMalformed, every
// further call returns the same step.
type FrameStream struct {
	w    Window
	off  int
	end  int
	last *Step
	err  error
}

// NewFrameStream returns a stream over body, the bytes that follow the
// header. Only the first hdr.Size bytes of body are considered.
func NewFrameStream(hdr *Header, body []byte) *FrameStream {
	s := &FrameStream{
		w:   NewWindow(body, HeaderSize),
		end: min(int(hdr.Size), len(body)),
	}

	if err := hdr.Supported(); err != nil {
		s.err = err
		s.stop(Step{Kind: StepMalformed, Reason: err})
	}
	return s
}

// Err returns the tag-level error that prevented decoding any frame.
// Malformed frames inside a supported tag are not errors.
func (s *FrameStream) Err() error {
	return s.err
}

func (s *FrameStream) Next() Step {
	if s.last != nil {
		return *s.last
	}

	if s.end-s.off < FrameHeaderSize {
		return s.stop(Step{Kind: StepEnd, Offset: s.off})
	}

	hdr, err := s.w.Slice(s.off, FrameHeaderSize)
	if err != nil {
		return s.stop(Step{Kind: StepMalformed, Offset: s.off, Reason: err})
	}

	id := hdr[0:4]
	if id[0] == 0 {
		return s.stop(Step{Kind: StepEnd, Offset: s.off})
	}
	if !validFrameID(id) {
		return s.stop(Step{
			Kind:   StepMalformed,
			Offset: s.off,
			Reason: fmt.Errorf("%w %q at offset %d", errInvalidFrameID, id, s.off),
		})
	}

	size, err := s.w.U32BE(s.off + 4)
	if err != nil {
		return s.stop(Step{Kind: StepMalformed, Offset: s.off, Reason: err})
	}

	if int64(size) > int64(s.end-s.off-FrameHeaderSize) {
		return s.stop(Step{
			Kind:   StepMalformed,
			Offset: s.off,
			Reason: fmt.Errorf("%w: frame %s declares %d bytes, %d left in tag",
				ErrOutOfRange, id, size, s.end-s.off-FrameHeaderSize),
		})
	}

	status, format := hdr[8], hdr[9]
	frame := Frame{
		ID:   string(id),
		Size: size,
		Status: FrameStatus{
			TagAlterPreserve:  status&flagTagAlterPreserve != 0,
			FileAlterPreserve: status&flagFileAlterPreserve != 0,
			ReadOnly:          status&flagReadOnly != 0,
		},
		Format: FrameFormat{
			Compressed: format&flagCompressed != 0,
			Encrypted:  format&flagEncrypted != 0,
			Grouped:    format&flagGrouped != 0,
		},
	}

	if !frame.Unsupported() {
		body, err := s.w.Slice(s.off+FrameHeaderSize, int(size))
		if err != nil {
			return s.stop(Step{Kind: StepMalformed, Offset: s.off, Reason: err})
		}
		frame.Body = bytes.Clone(body)
	}

	step := Step{Kind: StepFrame, Frame: frame, Offset: s.off}
	s.off += FrameHeaderSize + int(size)
	return step
}

func (s *FrameStream) stop(step Step) Step {
	s.last = &step
	return step
}

// Frames returns an iterator over the remaining frames. Iteration ends on
// the first StepEnd or StepMalformed.
func (s *FrameStream) Frames() func(yield func(Frame) bool) {
	return func(yield func(Frame) bool) {
		for {
			step := s.Next()
			if step.Kind != StepFrame {
				return
			}
			if !yield(step.Frame) {
				return
			}
		}
	}
}
