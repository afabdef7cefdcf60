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
	"strings"
	"text/tabwriter"

	"github.com/ostafen/tagscan/internal/id3"
	"github.com/ostafen/tagscan/internal/scan"
	"github.com/spf13/cobra"
)

func DefineFramesCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "frames <file>",
		Short:        "List the ID3v2 frames of a file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunFrames,
	}
}

func RunFrames(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	reader, err := newReader(cfg)
	if err != nil {
		return err
	}

	hdr, frames, err := reader.ReadV2(args[0])
	if hdr == nil {
		if err != nil {
			return err
		}
		return fmt.Errorf("%s: no ID3v2 tag", args[0])
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID3v2 %s, %d bytes, %s\n\n", hdr.Version(), hdr.Size, HeaderFlags(hdr))
	fmt.Fprintln(w, "ID\tSIZE\tFLAGS\tDESCRIPTION\tVALUE")
	fmt.Fprintln(w, "--\t----\t-----\t-----------\t-----")

	for _, f := range frames {
		flags := strings.Join(scan.FrameFlags(f), ",")
		if flags == "" {
			flags = "-"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", f.ID, f.Size, flags, id3.FrameDescription(f.ID), frameValue(f))
	}
	if flushErr := w.Flush(); flushErr != nil {
		return flushErr
	}
	return err
}
