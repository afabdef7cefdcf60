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
package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ostafen/tagscan/internal/id3"
	"github.com/ostafen/tagscan/internal/scan"
)

// WriteText prints the tags of a file in a human readable form.
func WriteText(w io.Writer, tags *id3.Tags) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "File:\t%s\n", tags.Path)

	switch {
	case tags.V1 != nil:
		v1 := tags.V1
		fmt.Fprintf(tw, "ID3v1:\t%s\n", v1.Version())
		fmt.Fprintf(tw, "  Title:\t%s\n", v1.Title)
		fmt.Fprintf(tw, "  Artist:\t%s\n", v1.Artist)
		fmt.Fprintf(tw, "  Album:\t%s\n", v1.Album)
		fmt.Fprintf(tw, "  Year:\t%s\n", v1.Year)
		fmt.Fprintf(tw, "  Comment:\t%s\n", v1.Comment)
		if v1.HasTrack() {
			fmt.Fprintf(tw, "  Track:\t%d\n", v1.Track)
		}
		fmt.Fprintf(tw, "  Genre:\t%d (%s)\n", v1.Genre, id3.GenreName(v1.Genre))
	case tags.V1Err != nil:
		fmt.Fprintf(tw, "ID3v1:\tnone (%s)\n", tags.V1Err)
	default:
		fmt.Fprintf(tw, "ID3v1:\tnone\n")
	}

	if ext := tags.V1Extended; ext != nil {
		fmt.Fprintf(tw, "ID3v1 Extended:\t\n")
		fmt.Fprintf(tw, "  Title:\t%s\n", ext.Title)
		fmt.Fprintf(tw, "  Artist:\t%s\n", ext.Artist)
		fmt.Fprintf(tw, "  Album:\t%s\n", ext.Album)
		fmt.Fprintf(tw, "  Speed:\t%d\n", ext.Speed)
		fmt.Fprintf(tw, "  Genre:\t%s\n", ext.Genre)
		fmt.Fprintf(tw, "  Start:\t%s\n", ext.Start)
		fmt.Fprintf(tw, "  End:\t%s\n", ext.End)
	}

	if hdr := tags.V2; hdr != nil {
		fmt.Fprintf(tw, "ID3v2:\t%s\n", hdr.Version())
		fmt.Fprintf(tw, "  Flags:\t%s\n", HeaderFlags(hdr))
		fmt.Fprintf(tw, "  Size:\t%d\n", hdr.Size)
		if tags.V2Err != nil {
			fmt.Fprintf(tw, "  Error:\t%s\n", tags.V2Err)
		}
		for _, f := range tags.Frames {
			fmt.Fprintf(tw, "  %s:\t%s\n", f.ID, frameValue(f))
		}
	} else {
		fmt.Fprintf(tw, "ID3v2:\tnone\n")
	}
	fmt.Fprintln(tw)

	return tw.Flush()
}

// HeaderFlags summarises the ID3v2 header flags.
func HeaderFlags(hdr *id3.Header) string {
	return fmt.Sprintf("unsynchronised=%t extended_header=%t experimental=%t",
		hdr.Unsynchronised, hdr.HasExtendedHeader, hdr.Experimental)
}

func frameValue(f id3.Frame) string {
	if f.Unsupported() {
		return fmt.Sprintf("<%d bytes, %s>", f.Size, strings.Join(scan.FrameFlags(f), ","))
	}
	if f.IsTextFrame() {
		if text, err := f.Text(); err == nil {
			return text
		}
	}
	return fmt.Sprintf("<%d bytes>", f.Size)
}
