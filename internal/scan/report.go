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
package scan

import (
	"strings"

	"github.com/ostafen/tagscan/internal/id3"
	"github.com/ostafen/tagscan/pkg/tagxml"
)

// FileObject converts a scan result into its report entry.
func FileObject(res Result) tagxml.FileObject {
	obj := tagxml.FileObject{
		Filename: res.Path,
		FileSize: res.Size,
	}
	if res.Err != nil {
		obj.Error = res.Err.Error()
		return obj
	}

	tags := res.Tags
	if v1 := tags.V1; v1 != nil {
		obj.V1 = &tagxml.V1{
			Version:   v1.Version(),
			Title:     v1.Title,
			Artist:    v1.Artist,
			Album:     v1.Album,
			Year:      v1.Year,
			Comment:   v1.Comment,
			Track:     v1.Track,
			Genre:     v1.Genre,
			GenreName: id3.GenreName(v1.Genre),
		}
	}

	if ext := tags.V1Extended; ext != nil {
		obj.V1Ext = &tagxml.V1Extended{
			Title:  ext.Title,
			Artist: ext.Artist,
			Album:  ext.Album,
			Speed:  ext.Speed,
			Genre:  ext.Genre,
			Start:  ext.Start,
			End:    ext.End,
		}
	}

	if hdr := tags.V2; hdr != nil {
		v2 := &tagxml.V2{
			Version:           hdr.Version(),
			Size:              hdr.Size,
			Unsynchronised:    hdr.Unsynchronised,
			HasExtendedHeader: hdr.HasExtendedHeader,
			Experimental:      hdr.Experimental,
		}
		if tags.V2Err != nil {
			v2.Error = tags.V2Err.Error()
		}

		for _, f := range tags.Frames {
			frame := tagxml.Frame{
				ID:    f.ID,
				Size:  f.Size,
				Flags: strings.Join(FrameFlags(f), ","),
			}
			if f.IsTextFrame() {
				frame.Text, _ = f.Text()
			}
			v2.Frames = append(v2.Frames, frame)
		}
		obj.V2 = v2
	}
	return obj
}

// FrameFlags returns the names of the flags set on a frame.
func FrameFlags(f id3.Frame) []string {
	var flags []string
	for _, flag := range []struct {
		set  bool
		name string
	}{
		{f.Status.TagAlterPreserve, "tag_alter_preserve"},
		{f.Status.FileAlterPreserve, "file_alter_preserve"},
		{f.Status.ReadOnly, "read_only"},
		{f.Format.Compressed, "compressed"},
		{f.Format.Encrypted, "encrypted"},
		{f.Format.Grouped, "grouped"},
	} {
		if flag.set {
			flags = append(flags, flag.name)
		}
	}
	return flags
}
